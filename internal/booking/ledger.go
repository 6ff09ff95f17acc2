package booking

import "github.com/romhuset/rehearsal-booking/internal/model"

// Voucher ledger transforms. These operate on plain voucher slices and
// never mutate their input; callers receive a fresh slice from Adjust.
// Persistence is the store layer's concern.

// IsAvailable reports whether a voucher with the given id exists and
// still has prepaid slots left.
func IsAvailable(vouchers []model.Voucher, id uint64) bool {
    for _, v := range vouchers {
        if v.ID == id {
            return v.SlotsLeft > 0
        }
    }
    return false
}

// Adjust returns a new ledger where the matching voucher's slot count is
// changed by delta, clamped at zero. An unknown id leaves the ledger
// unchanged; the caller may race with a voucher deletion, so this is a
// no-op rather than a failure.
func Adjust(vouchers []model.Voucher, id uint64, delta int) []model.Voucher {
    out := make([]model.Voucher, len(vouchers))
    copy(out, vouchers)
    for i := range out {
        if out[i].ID == id {
            n := out[i].SlotsLeft + delta
            if n < 0 {
                n = 0
            }
            out[i].SlotsLeft = n
            break
        }
    }
    return out
}

// FindByPartner returns the first voucher registered for the given
// partner name, or nil when none exists. Partner names are unique per
// partner in practice but not enforced structurally.
func FindByPartner(vouchers []model.Voucher, partner string) *model.Voucher {
    for i := range vouchers {
        if vouchers[i].Partner == partner {
            v := vouchers[i]
            return &v
        }
    }
    return nil
}
