package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// VoucherRepo provides CRUD and balance adjustment over the `vouchers`
// table. The zero floor on slots_left is enforced in SQL so a racing
// debit can never push a balance negative.
type VoucherRepo struct {
    db *sql.DB
}

// NewVoucherRepo returns a new VoucherRepo bound to the given database.
func NewVoucherRepo(db *sql.DB) *VoucherRepo { return &VoucherRepo{db: db} }

// List returns every voucher ordered by partner name.
func (r *VoucherRepo) List(ctx context.Context) ([]model.Voucher, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id, partner, slots_left, created_at FROM vouchers ORDER BY partner")
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Voucher, 0)
    for rows.Next() {
        var v model.Voucher
        if err := rows.Scan(&v.ID, &v.Partner, &v.SlotsLeft, &v.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Get returns one voucher by id, or store.ErrNotFound.
func (r *VoucherRepo) Get(ctx context.Context, id uint64) (*model.Voucher, error) {
    var v model.Voucher
    err := r.db.QueryRowContext(ctx,
        "SELECT id, partner, slots_left, created_at FROM vouchers WHERE id=? LIMIT 1", id).
        Scan(&v.ID, &v.Partner, &v.SlotsLeft, &v.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, store.ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &v, nil
}

// Create inserts a voucher and fills in its generated ID. A negative
// initial balance is stored as zero.
func (r *VoucherRepo) Create(ctx context.Context, v *model.Voucher) error {
    if v.SlotsLeft < 0 {
        v.SlotsLeft = 0
    }
    res, err := r.db.ExecContext(ctx,
        "INSERT INTO vouchers (partner, slots_left) VALUES (?,?)", v.Partner, v.SlotsLeft)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    v.ID = uint64(id)
    return nil
}

// Delete removes a voucher. Historic bookings keep their partner
// reference; nothing cascades.
func (r *VoucherRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM vouchers WHERE id=?", id)
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

// Adjust applies a signed delta to the voucher's balance, clamped at
// zero in a single statement. An unknown id affects zero rows and is
// treated as a no-op, matching the ledger semantics: the caller may
// race with a deletion.
func (r *VoucherRepo) Adjust(ctx context.Context, id uint64, delta int) error {
    _, err := r.db.ExecContext(ctx,
        "UPDATE vouchers SET slots_left = GREATEST(0, slots_left + ?) WHERE id=?", delta, id)
    return err
}

var _ store.VoucherStore = (*VoucherRepo)(nil)
