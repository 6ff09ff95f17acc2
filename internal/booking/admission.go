package booking

import (
    "errors"
    "strings"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

// ErrMissingVoucherSelection is returned when a voucher-mode booking is
// attempted without selecting a voucher. Handlers should translate this
// into an HTTP 400 response.
var ErrMissingVoucherSelection = errors.New("no voucher selected")

// ErrVoucherExhausted is returned when the selected voucher has no
// prepaid slots left at admission time. Handlers should translate this
// into an HTTP 409 response.
var ErrVoucherExhausted = errors.New("voucher exhausted")

// AdmissionRequest carries the caller-supplied booking intent into the
// admission policy. The core never reads ambient state; everything it
// decides on is in this struct.
type AdmissionRequest struct {
    BookForOthers   bool   // book on behalf of a third party
    VoucherRequired bool   // charge against a prepaid voucher
    VoucherID       uint64 // selected voucher (voucher mode)
    BookedFor       string // third-party label (external mode)
}

// Admission is the policy's decision: the resolved mode plus the
// side-effect inputs the orchestrator needs (which voucher to debit,
// which partner and label to snapshot onto the booking).
type Admission struct {
    Mode           string
    VoucherID      uint64  // voucher to debit by 1 after a durable insert
    VoucherPartner *string // partner reference stored on the booking
    BookedFor      *string // trimmed third-party label, nil when absent
}

// DetermineMode resolves the admission mode from the two independent
// request flags. External takes priority over voucher; with neither flag
// set the booking is open. The modes are mutually exclusive.
func DetermineMode(bookForOthers, voucherRequired bool) string {
    switch {
    case bookForOthers:
        return model.ModeExternal
    case voucherRequired:
        return model.ModeVoucher
    default:
        return model.ModeOpen
    }
}

// Admit validates the mode-specific preconditions of a booking attempt
// against the current voucher ledger. Voucher availability is checked
// here, at admission time, regardless of any earlier check at selection
// time; that closes the race window between selecting a voucher and
// submitting the booking. Admit has no side effects: the actual debit
// happens in the orchestrator only after the insert is durable.
func Admit(req AdmissionRequest, vouchers []model.Voucher) (Admission, error) {
    adm := Admission{Mode: DetermineMode(req.BookForOthers, req.VoucherRequired)}
    switch adm.Mode {
    case model.ModeExternal:
        // Third-party bookings never debit a voucher even when one is
        // selected; group pricing still applies for charging.
        if label := strings.TrimSpace(req.BookedFor); label != "" {
            adm.BookedFor = &label
        }
    case model.ModeVoucher:
        if req.VoucherID == 0 {
            return Admission{}, ErrMissingVoucherSelection
        }
        if !IsAvailable(vouchers, req.VoucherID) {
            return Admission{}, ErrVoucherExhausted
        }
        adm.VoucherID = req.VoucherID
        for _, v := range vouchers {
            if v.ID == req.VoucherID {
                partner := v.Partner
                adm.VoucherPartner = &partner
                break
            }
        }
    }
    return adm, nil
}
