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

// GrantRepo persists access credentials in the `access_grants` table.
// Door identifiers are stored as a comma-separated list in one column;
// the set is small and never queried individually.
type GrantRepo struct {
    db *sql.DB
}

// NewGrantRepo returns a new GrantRepo bound to the given database.
func NewGrantRepo(db *sql.DB) *GrantRepo { return &GrantRepo{db: db} }

// ActiveByBooking returns the newest issued grant for the booking whose
// validity window has not yet closed, or store.ErrNotFound.
func (r *GrantRepo) ActiveByBooking(ctx context.Context, bookingID uint64, now time.Time) (*model.AccessGrant, error) {
    var (
        g        model.AccessGrant
        doors    string
        secret   sql.NullString
        deepLink sql.NullString
    )
    err := r.db.QueryRowContext(ctx,
        `SELECT id, booking_id, provider, door_ids, secret, deep_link, start_at, end_at, status, created_at
         FROM access_grants
         WHERE booking_id=? AND status=? AND end_at > ?
         ORDER BY id DESC LIMIT 1`,
        bookingID, model.GrantIssued, now.UTC()).
        Scan(&g.ID, &g.BookingID, &g.Provider, &doors, &secret, &deepLink,
            &g.StartAt, &g.EndAt, &g.Status, &g.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    if doors != "" {
        g.DoorIDs = strings.Split(doors, ",")
    }
    if secret.Valid {
        s := secret.String
        g.Secret = &s
    }
    if deepLink.Valid {
        d := deepLink.String
        g.DeepLink = &d
    }
    return &g, nil
}

// Insert stores a new grant and fills in its generated ID.
func (r *GrantRepo) Insert(ctx context.Context, g *model.AccessGrant) error {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO access_grants
         (booking_id, provider, door_ids, secret, deep_link, start_at, end_at, status)
         VALUES (?,?,?,?,?,?,?,?)`,
        g.BookingID, g.Provider, strings.Join(g.DoorIDs, ","),
        g.Secret, g.DeepLink, g.StartAt.UTC(), g.EndAt.UTC(), g.Status)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    g.ID = uint64(id)
    return nil
}

// RevokeByBooking marks every issued grant of the booking revoked.
// Revoking a booking without grants affects zero rows and is not an
// error.
func (r *GrantRepo) RevokeByBooking(ctx context.Context, bookingID uint64) error {
    _, err := r.db.ExecContext(ctx,
        "UPDATE access_grants SET status=? WHERE booking_id=? AND status=?",
        model.GrantRevoked, bookingID, model.GrantIssued)
    return err
}

var _ store.GrantStore = (*GrantRepo)(nil)
