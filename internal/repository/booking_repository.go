// Package repository contains the MySQL-backed implementations of the
// store interfaces. The uniqueness invariant on (date, room_id, hour)
// is carried by a unique key on the bookings table, so concurrent
// check-then-create races are resolved by the database rather than by
// in-process discipline. Duplicate-key failures are mapped to the
// shared store sentinels so handlers never see driver error codes.
package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"
    "time"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// BookingRepo provides CRUD operations over the `bookings` table. All
// timestamp columns are stored in UTC; the date column is a DATE and is
// rendered back to the date-only string format the core works with.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for callers that need transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingCols = `id, date, room_id, hour, type, room_name, mode,
                     voucher_partner, booked_for, group_code, price, created_by, inserted_at`

// Create inserts a booking row and fills in the generated ID and
// insertion timestamp. A collision on the slot unique key is returned
// as store.ErrSlotTaken.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    const q = `INSERT INTO bookings
               (date, room_id, hour, type, room_name, mode, voucher_partner, booked_for, group_code, price, created_by)
               VALUES (?,?,?,?,?,?,?,?,?,?,?)`
    res, err := r.db.ExecContext(ctx, q,
        b.Date, b.RoomID, b.Hour, b.RoomType, b.RoomName, b.Mode,
        b.VoucherPartner, b.BookedFor, b.GroupCode, b.Price, b.CreatedBy)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return store.ErrSlotTaken
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    // Query back the row to populate the server-side insertion timestamp.
    return r.db.QueryRowContext(ctx,
        "SELECT inserted_at FROM bookings WHERE id=?", b.ID).Scan(&b.InsertedAt)
}

// Get returns the booking occupying the slot, or store.ErrNotFound when
// the slot is free.
func (r *BookingRepo) Get(ctx context.Context, date, roomID string, hour int) (*model.Booking, error) {
    row := r.db.QueryRowContext(ctx,
        `SELECT `+bookingCols+` FROM bookings WHERE date=? AND room_id=? AND hour=? LIMIT 1`,
        date, roomID, hour)
    b, err := scanBooking(row)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return b, nil
}

// Remove deletes the booking at the slot. store.ErrNotFound is returned
// when no booking occupied it, so callers can distinguish a no-op delete
// from a successful one.
func (r *BookingRepo) Remove(ctx context.Context, date, roomID string, hour int) error {
    res, err := r.db.ExecContext(ctx,
        "DELETE FROM bookings WHERE date=? AND room_id=? AND hour=?",
        date, roomID, hour)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return store.ErrNotFound
    }
    return nil
}

// ListByDate returns all bookings on one calendar date.
func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
    return r.ListRange(ctx, date, date)
}

// ListRange returns all bookings whose date falls in the closed range
// [from, to], ordered by date, room and hour for deterministic output.
func (r *BookingRepo) ListRange(ctx context.Context, from, to string) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT `+bookingCols+` FROM bookings
         WHERE date BETWEEN ? AND ?
         ORDER BY date, room_id, hour`, from, to)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectBookings(rows)
}

// ListByCreator returns all bookings made by one creator identity,
// newest date first.
func (r *BookingRepo) ListByCreator(ctx context.Context, creator string) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT `+bookingCols+` FROM bookings
         WHERE created_by=?
         ORDER BY date DESC, room_id, hour`, creator)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    return collectBookings(rows)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
    Scan(dest ...interface{}) error
}

// scanBooking scans one bookings row. The DATE column arrives as a
// time.Time because the DSN sets parseTime=true; it is rendered back to
// the date-only string the core compares on.
func scanBooking(s rowScanner) (*model.Booking, error) {
    var (
        b       model.Booking
        date    time.Time
        partner sql.NullString
        forWhom sql.NullString
    )
    err := s.Scan(&b.ID, &date, &b.RoomID, &b.Hour, &b.RoomType, &b.RoomName, &b.Mode,
        &partner, &forWhom, &b.GroupCode, &b.Price, &b.CreatedBy, &b.InsertedAt)
    if err != nil {
        return nil, err
    }
    b.Date = date.UTC().Format("2006-01-02")
    if partner.Valid {
        p := partner.String
        b.VoucherPartner = &p
    }
    if forWhom.Valid {
        f := forWhom.String
        b.BookedFor = &f
    }
    return &b, nil
}

func collectBookings(rows *sql.Rows) ([]model.Booking, error) {
    out := make([]model.Booking, 0)
    for rows.Next() {
        b, err := scanBooking(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

var _ store.BookingStore = (*BookingRepo)(nil)
