package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// RoomRepo persists the room catalogue in the `rooms` table. Rooms are
// configuration; bookings snapshot the room's name and type, so room
// deletion never touches the booking ledger.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// List returns every room ordered by id.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id, name, type, created_at FROM rooms ORDER BY id")
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Room, 0)
    for rows.Next() {
        var rm model.Room
        if err := rows.Scan(&rm.ID, &rm.Name, &rm.Type, &rm.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, rm)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Get returns one room by id, or store.ErrNotFound.
func (r *RoomRepo) Get(ctx context.Context, id string) (*model.Room, error) {
    var rm model.Room
    err := r.db.QueryRowContext(ctx,
        "SELECT id, name, type, created_at FROM rooms WHERE id=? LIMIT 1", id).
        Scan(&rm.ID, &rm.Name, &rm.Type, &rm.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &rm, nil
}

// Create inserts a room. A duplicate id is surfaced as
// store.ErrSlotTaken so the handler can answer 409.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
    _, err := r.db.ExecContext(ctx,
        "INSERT INTO rooms (id, name, type) VALUES (?,?,?)", rm.ID, rm.Name, rm.Type)
    if err != nil && strings.Contains(strings.ToLower(err.Error()), "1062") {
        return store.ErrSlotTaken
    }
    return err
}

// Delete removes a room from the catalogue.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
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

var _ store.RoomStore = (*RoomRepo)(nil)
