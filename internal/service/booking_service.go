// Package service contains the orchestration layer: the booking
// lifecycle (admission, pricing, insert, ledger side effects), the
// access-credential issuer and the event publisher. The pure decisions
// live in internal/booking; this package sequences them against the
// stores so that a failed or duplicate insert never debits a voucher
// and a confirmed delete always restores one.
package service

import (
    "context"
    "errors"
    "log"
    "time"

    "github.com/romhuset/rehearsal-booking/internal/booking"
    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/queue"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// ErrAuthenticationRequired is returned when a create or delete is
// attempted without a verified creator identity. Handlers should
// translate this into an HTTP 401 response.
var ErrAuthenticationRequired = errors.New("authentication required")

// ErrOutsideOperatingHours is returned when the requested hour falls
// outside the bookable window.
var ErrOutsideOperatingHours = errors.New("hour outside operating hours")

// ErrInvalidDate is returned when the requested date is not a
// well-formed date-only string.
var ErrInvalidDate = errors.New("invalid date")

// BookingService sequences booking creation and deletion. Publishing
// events and revoking access grants are compensating actions dispatched
// after the authoritative store operation succeeds; their failure is
// logged and never rolls back the primary operation.
type BookingService struct {
    Bookings store.BookingStore
    Vouchers store.VoucherStore
    Rooms    store.RoomStore
    Grants   store.GrantStore
    Rates    booking.RateCard
    OpenHour int // first bookable hour of the day
    EndHour  int // first hour past the bookable window
    Publish  bool // publish booking.confirmed events to the broker
}

// CreateRequest carries one booking attempt. The creator identity comes
// from the verified session, never from the request body.
type CreateRequest struct {
    Date            string
    RoomID          string
    Hour            int
    GroupCode       string
    BookForOthers   bool
    VoucherRequired bool
    VoucherID       uint64
    BookedFor       string
    CreatedBy       string
}

// Create runs the full admission flow: validate the slot, admit against
// the voucher ledger, price the slot, insert, then apply side effects.
// The voucher debit happens only after the insert is durable, so a slot
// collision or storage failure leaves the ledger untouched.
func (s *BookingService) Create(ctx context.Context, req CreateRequest) (*model.Booking, error) {
    if req.CreatedBy == "" {
        return nil, ErrAuthenticationRequired
    }
    if !booking.ValidDate(req.Date) {
        return nil, ErrInvalidDate
    }
    if req.Hour < s.OpenHour || req.Hour >= s.EndHour {
        return nil, ErrOutsideOperatingHours
    }
    room, err := s.Rooms.Get(ctx, req.RoomID)
    if err != nil {
        return nil, err
    }

    // Admission re-validates voucher availability now, not at selection
    // time, closing the race between picking a voucher and booking.
    var vouchers []model.Voucher
    if req.VoucherRequired && !req.BookForOthers {
        if vouchers, err = s.Vouchers.List(ctx); err != nil {
            return nil, err
        }
    }
    adm, err := booking.Admit(booking.AdmissionRequest{
        BookForOthers:   req.BookForOthers,
        VoucherRequired: req.VoucherRequired,
        VoucherID:       req.VoucherID,
        BookedFor:       req.BookedFor,
    }, vouchers)
    if err != nil {
        return nil, err
    }

    group := req.GroupCode
    if group == "" {
        group = model.GroupStandard
    }
    b := &model.Booking{
        Date:           req.Date,
        RoomID:         room.ID,
        Hour:           req.Hour,
        RoomType:       room.Type,
        RoomName:       room.Name,
        Mode:           adm.Mode,
        VoucherPartner: adm.VoucherPartner,
        BookedFor:      adm.BookedFor,
        GroupCode:      group,
        Price:          booking.Price(room.Type, group, s.Rates),
        CreatedBy:      req.CreatedBy,
    }
    if err := s.Bookings.Create(ctx, b); err != nil {
        return nil, err
    }

    // Side effects only after the insert is durable.
    if adm.Mode == model.ModeVoucher {
        if err := s.Vouchers.Adjust(ctx, adm.VoucherID, -1); err != nil {
            // The booking stands; the ledger is best-effort single-writer.
            log.Printf("booking %d: voucher %d debit failed: %v", b.ID, adm.VoucherID, err)
        }
    }
    if s.Publish {
        s.publishConfirmed(ctx, b)
    }
    return b, nil
}

// Delete removes a booking. Only the creator may delete; the voucher
// credit is applied only after the delete is confirmed, and grant
// revocation is best-effort so an access-system failure never blocks
// the deletion.
func (s *BookingService) Delete(ctx context.Context, date, roomID string, hour int, requester string) error {
    if requester == "" {
        return ErrAuthenticationRequired
    }
    b, err := s.Bookings.Get(ctx, date, roomID, hour)
    if err != nil {
        return err
    }
    if b.CreatedBy != requester {
        return store.ErrForbidden
    }
    if err := s.Bookings.Remove(ctx, date, roomID, hour); err != nil {
        return err
    }

    if b.VoucherPartner != nil {
        s.creditPartner(ctx, *b.VoucherPartner, b.ID)
    }
    if err := s.Grants.RevokeByBooking(ctx, b.ID); err != nil {
        log.Printf("booking %d: grant revoke failed: %v", b.ID, err)
    }
    return nil
}

// creditPartner restores one slot to the partner's voucher. If the
// voucher was deleted in the meantime this is a silent no-op.
func (s *BookingService) creditPartner(ctx context.Context, partner string, bookingID uint64) {
    vouchers, err := s.Vouchers.List(ctx)
    if err != nil {
        log.Printf("booking %d: voucher credit lookup failed: %v", bookingID, err)
        return
    }
    v := booking.FindByPartner(vouchers, partner)
    if v == nil {
        return
    }
    if err := s.Vouchers.Adjust(ctx, v.ID, +1); err != nil {
        log.Printf("booking %d: voucher %d credit failed: %v", bookingID, v.ID, err)
    }
}

func (s *BookingService) publishConfirmed(ctx context.Context, b *model.Booking) {
    ev := queue.BookingConfirmedEvent{
        BookingID:   b.ID,
        Date:        b.Date,
        RoomID:      b.RoomID,
        RoomName:    b.RoomName,
        Hour:        b.Hour,
        Mode:        b.Mode,
        GroupCode:   b.GroupCode,
        Price:       b.Price,
        CreatedBy:   b.CreatedBy,
        ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
    }
    if b.VoucherPartner != nil {
        ev.VoucherPartner = *b.VoucherPartner
    }
    if b.BookedFor != nil {
        ev.BookedFor = *b.BookedFor
    }
    // Errors are already logged by the publisher; booking creation never
    // fails on a broker outage.
    _ = PublishBookingConfirmed(ctx, ev)
}
