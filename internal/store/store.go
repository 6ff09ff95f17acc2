// Package store defines the persistence interfaces the booking service
// orchestrates against, together with the shared sentinel errors and the
// in-memory implementation used in local fallback mode. The MySQL-backed
// implementations live in internal/repository; both sides honor the same
// semantics so the two modes are interchangeable from the caller's point
// of view.
package store

import (
    "context"
    "time"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

// BookingStore persists bookings keyed by (date, room, hour). Create
// must reject a slot collision with ErrSlotTaken regardless of backend:
// the in-memory store checks its snapshot, the MySQL store relies on the
// unique key over (date, room_id, hour).
type BookingStore interface {
    // Create inserts the booking and fills in its generated ID.
    Create(ctx context.Context, b *model.Booking) error
    // Remove deletes the booking at the slot; ErrNotFound when the slot is free.
    Remove(ctx context.Context, date, roomID string, hour int) error
    // Get returns the booking at the slot; ErrNotFound when the slot is free.
    Get(ctx context.Context, date, roomID string, hour int) (*model.Booking, error)
    // ListByDate returns all bookings on one calendar date.
    ListByDate(ctx context.Context, date string) ([]model.Booking, error)
    // ListRange returns all bookings in the closed date range [from, to].
    ListRange(ctx context.Context, from, to string) ([]model.Booking, error)
    // ListByCreator returns all bookings made by one creator identity.
    ListByCreator(ctx context.Context, creator string) ([]model.Booking, error)
}

// VoucherStore persists partner voucher balances. Adjust applies a
// signed delta clamped at zero and is a silent no-op for unknown ids.
type VoucherStore interface {
    List(ctx context.Context) ([]model.Voucher, error)
    Get(ctx context.Context, id uint64) (*model.Voucher, error)
    Create(ctx context.Context, v *model.Voucher) error
    Delete(ctx context.Context, id uint64) error
    Adjust(ctx context.Context, id uint64, delta int) error
}

// GrantStore persists access credentials tied to bookings.
type GrantStore interface {
    // ActiveByBooking returns the unexpired issued grant for a booking,
    // or ErrNotFound when none exists.
    ActiveByBooking(ctx context.Context, bookingID uint64, now time.Time) (*model.AccessGrant, error)
    // Insert stores a new grant and fills in its generated ID.
    Insert(ctx context.Context, g *model.AccessGrant) error
    // RevokeByBooking marks every issued grant of the booking revoked.
    RevokeByBooking(ctx context.Context, bookingID uint64) error
}

// RoomStore persists the room catalogue. Deleting a room never touches
// bookings that reference it.
type RoomStore interface {
    List(ctx context.Context) ([]model.Room, error)
    Get(ctx context.Context, id string) (*model.Room, error)
    Create(ctx context.Context, r *model.Room) error
    Delete(ctx context.Context, id string) error
}

// UserStore persists member accounts. Create hashes the password with
// the given bcrypt cost and returns ErrEmailExists on a duplicate email;
// the lookup methods return ErrNotFound for unknown users.
type UserStore interface {
    Create(ctx context.Context, email, password, role string, bcryptCost int) (uint64, error)
    GetByEmail(ctx context.Context, email string) (model.User, error)
    GetByID(ctx context.Context, id uint64) (model.User, error)
}

// TokenStore persists refresh tokens by their SHA-256 hash.
type TokenStore interface {
    StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
    // ValidateRefresh returns the owning user when the hash matches a
    // non-revoked, non-expired token; ErrNotFound otherwise.
    ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
    RevokeByHash(ctx context.Context, tokenHash string) error
    RevokeAllForUser(ctx context.Context, userID uint64) error
}
