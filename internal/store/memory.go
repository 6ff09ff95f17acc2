package store

import (
    "context"
    "sort"
    "sync"
    "time"

    "github.com/romhuset/rehearsal-booking/internal/booking"
    "github.com/romhuset/rehearsal-booking/internal/model"
)

// Memory is the local fallback store used when no database is
// configured. It implements every store interface over the pure
// copy-on-write snapshot and plain voucher slices from the booking
// package, guarded by one mutex. Readers always work against a complete
// snapshot; a writer swaps in the new value only after the transform
// succeeded, so a failed insert leaves no partial state behind.
type Memory struct {
    mu       sync.Mutex
    bookings booking.Snapshot
    vouchers []model.Voucher
    rooms    []model.Room
    grants   []model.AccessGrant
    users    []model.User
    tokens   []model.RefreshToken
    nextID   uint64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
    return &Memory{bookings: booking.Snapshot{}}
}

func (m *Memory) nextSeq() uint64 {
    m.nextID++
    return m.nextID
}

// ---- BookingStore ----

func (m *Memory) Create(_ context.Context, b *model.Booking) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    b.ID = m.nextID + 1
    if b.InsertedAt.IsZero() {
        b.InsertedAt = time.Now().UTC()
    }
    next, ok := m.bookings.Insert(*b)
    if !ok {
        return ErrSlotTaken
    }
    m.nextID++
    m.bookings = next
    return nil
}

func (m *Memory) Remove(_ context.Context, date, roomID string, hour int) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    key := booking.Slot{Date: date, RoomID: roomID, Hour: hour}
    if m.bookings.Get(key) == nil {
        return ErrNotFound
    }
    m.bookings = m.bookings.Remove(key)
    return nil
}

func (m *Memory) Get(_ context.Context, date, roomID string, hour int) (*model.Booking, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    b := m.bookings.Get(booking.Slot{Date: date, RoomID: roomID, Hour: hour})
    if b == nil {
        return nil, ErrNotFound
    }
    return b, nil
}

func (m *Memory) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
    return m.ListRange(ctx, date, date)
}

func (m *Memory) ListRange(_ context.Context, from, to string) ([]model.Booking, error) {
    m.mu.Lock()
    snap := m.bookings
    m.mu.Unlock()
    out := make([]model.Booking, 0)
    for _, b := range snap {
        if booking.InRange(b.Date, from, to) {
            out = append(out, b)
        }
    }
    sortBookings(out)
    return out, nil
}

func (m *Memory) ListByCreator(_ context.Context, creator string) ([]model.Booking, error) {
    m.mu.Lock()
    snap := m.bookings
    m.mu.Unlock()
    out := make([]model.Booking, 0)
    for _, b := range snap {
        if b.CreatedBy == creator {
            out = append(out, b)
        }
    }
    sortBookings(out)
    return out, nil
}

// sortBookings orders by date, room and hour so listings are
// deterministic regardless of map iteration order.
func sortBookings(bs []model.Booking) {
    sort.Slice(bs, func(i, j int) bool {
        if bs[i].Date != bs[j].Date {
            return bs[i].Date < bs[j].Date
        }
        if bs[i].RoomID != bs[j].RoomID {
            return bs[i].RoomID < bs[j].RoomID
        }
        return bs[i].Hour < bs[j].Hour
    })
}

// ---- VoucherStore ----

func (m *Memory) List(_ context.Context) ([]model.Voucher, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    out := make([]model.Voucher, len(m.vouchers))
    copy(out, m.vouchers)
    return out, nil
}

func (m *Memory) GetVoucher(_ context.Context, id uint64) (*model.Voucher, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    for _, v := range m.vouchers {
        if v.ID == id {
            v := v
            return &v, nil
        }
    }
    return nil, ErrNotFound
}

func (m *Memory) CreateVoucher(_ context.Context, v *model.Voucher) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    v.ID = m.nextSeq()
    if v.CreatedAt.IsZero() {
        v.CreatedAt = time.Now().UTC()
    }
    m.vouchers = append(m.vouchers, *v)
    return nil
}

func (m *Memory) DeleteVoucher(_ context.Context, id uint64) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    for i, v := range m.vouchers {
        if v.ID == id {
            m.vouchers = append(m.vouchers[:i:i], m.vouchers[i+1:]...)
            return nil
        }
    }
    return ErrNotFound
}

func (m *Memory) Adjust(_ context.Context, id uint64, delta int) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.vouchers = booking.Adjust(m.vouchers, id, delta)
    return nil
}

// ---- GrantStore ----

func (m *Memory) ActiveByBooking(_ context.Context, bookingID uint64, now time.Time) (*model.AccessGrant, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    for _, g := range m.grants {
        if g.BookingID == bookingID && g.Active(now) {
            g := g
            return &g, nil
        }
    }
    return nil, ErrNotFound
}

func (m *Memory) Insert(_ context.Context, g *model.AccessGrant) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    g.ID = m.nextSeq()
    if g.CreatedAt.IsZero() {
        g.CreatedAt = time.Now().UTC()
    }
    m.grants = append(m.grants, *g)
    return nil
}

func (m *Memory) RevokeByBooking(_ context.Context, bookingID uint64) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    for i := range m.grants {
        if m.grants[i].BookingID == bookingID && m.grants[i].Status == model.GrantIssued {
            m.grants[i].Status = model.GrantRevoked
        }
    }
    return nil
}

// ---- RoomStore ----

func (m *Memory) ListRooms(_ context.Context) ([]model.Room, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    out := make([]model.Room, len(m.rooms))
    copy(out, m.rooms)
    return out, nil
}

func (m *Memory) GetRoom(_ context.Context, id string) (*model.Room, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    for _, r := range m.rooms {
        if r.ID == id {
            r := r
            return &r, nil
        }
    }
    return nil, ErrNotFound
}

func (m *Memory) CreateRoom(_ context.Context, r *model.Room) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    for _, existing := range m.rooms {
        if existing.ID == r.ID {
            return ErrSlotTaken
        }
    }
    if r.CreatedAt.IsZero() {
        r.CreatedAt = time.Now().UTC()
    }
    m.rooms = append(m.rooms, *r)
    return nil
}

func (m *Memory) DeleteRoom(_ context.Context, id string) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    for i, r := range m.rooms {
        if r.ID == id {
            m.rooms = append(m.rooms[:i:i], m.rooms[i+1:]...)
            return nil
        }
    }
    return ErrNotFound
}

// ---- interface views ----
//
// VoucherStore and RoomStore both declare Get/Create/Delete with
// different key types, so Memory exposes them through thin views rather
// than implementing the interfaces directly. BookingStore and GrantStore
// are implemented on Memory itself.

// Vouchers returns this store viewed through the VoucherStore interface.
func (m *Memory) Vouchers() VoucherStore { return memoryVouchers{m} }

type memoryVouchers struct{ m *Memory }

func (s memoryVouchers) List(ctx context.Context) ([]model.Voucher, error) { return s.m.List(ctx) }
func (s memoryVouchers) Get(ctx context.Context, id uint64) (*model.Voucher, error) {
    return s.m.GetVoucher(ctx, id)
}
func (s memoryVouchers) Create(ctx context.Context, v *model.Voucher) error {
    return s.m.CreateVoucher(ctx, v)
}
func (s memoryVouchers) Delete(ctx context.Context, id uint64) error {
    return s.m.DeleteVoucher(ctx, id)
}
func (s memoryVouchers) Adjust(ctx context.Context, id uint64, delta int) error {
    return s.m.Adjust(ctx, id, delta)
}

// Rooms returns this store viewed through the RoomStore interface.
func (m *Memory) Rooms() RoomStore { return memoryRooms{m} }

type memoryRooms struct{ m *Memory }

func (s memoryRooms) List(ctx context.Context) ([]model.Room, error) { return s.m.ListRooms(ctx) }
func (s memoryRooms) Get(ctx context.Context, id string) (*model.Room, error) {
    return s.m.GetRoom(ctx, id)
}
func (s memoryRooms) Create(ctx context.Context, r *model.Room) error { return s.m.CreateRoom(ctx, r) }
func (s memoryRooms) Delete(ctx context.Context, id string) error    { return s.m.DeleteRoom(ctx, id) }

var (
    _ BookingStore = (*Memory)(nil)
    _ GrantStore   = (*Memory)(nil)
    _ VoucherStore = memoryVouchers{}
    _ RoomStore    = memoryRooms{}
)
