package service

import (
    "context"
    "errors"
    "time"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
    "github.com/romhuset/rehearsal-booking/internal/utils"
)

// ErrCredentialIssuance is returned when a grant can be neither found
// nor created. It is non-fatal to the booking lifecycle; only the
// access endpoint surfaces it.
var ErrCredentialIssuance = errors.New("credential issuance failed")

// AccessIssuer hands out time-boxed door credentials for bookings. It
// is idempotent per booking: as long as an issued grant has not expired,
// repeated calls return that same grant instead of minting a new PIN.
type AccessIssuer struct {
    Grants   store.GrantStore
    Provider string        // door-system provider tag
    DoorIDs  []string      // doors every rehearsal booking opens
    Before   time.Duration // validity margin before slot start
    After    time.Duration // validity margin after slot end
    Now      func() time.Time
}

func (a *AccessIssuer) now() time.Time {
    if a.Now != nil {
        return a.Now()
    }
    return time.Now().UTC()
}

// GetOrIssue returns the active grant for the booking, creating one when
// none exists. The validity window is the booked hour extended by the
// configured buffers.
func (a *AccessIssuer) GetOrIssue(ctx context.Context, b *model.Booking) (*model.AccessGrant, error) {
    now := a.now()
    g, err := a.Grants.ActiveByBooking(ctx, b.ID, now)
    if err == nil {
        return g, nil
    }
    if !errors.Is(err, store.ErrNotFound) {
        return nil, errors.Join(ErrCredentialIssuance, err)
    }

    slotStart, err := time.Parse("2006-01-02", b.Date)
    if err != nil {
        return nil, errors.Join(ErrCredentialIssuance, err)
    }
    slotStart = slotStart.Add(time.Duration(b.Hour) * time.Hour)
    slotEnd := slotStart.Add(time.Hour)

    pin, err := utils.NewPIN(6)
    if err != nil {
        return nil, errors.Join(ErrCredentialIssuance, err)
    }
    g = &model.AccessGrant{
        BookingID: b.ID,
        Provider:  a.Provider,
        DoorIDs:   a.DoorIDs,
        Secret:    &pin,
        StartAt:   slotStart.Add(-a.Before),
        EndAt:     slotEnd.Add(a.After),
        Status:    model.GrantIssued,
    }
    if err := a.Grants.Insert(ctx, g); err != nil {
        return nil, errors.Join(ErrCredentialIssuance, err)
    }
    return g, nil
}

// Revoke marks any issued grant for the booking as revoked. Callers in
// the deletion path treat failures as non-fatal.
func (a *AccessIssuer) Revoke(ctx context.Context, bookingID uint64) error {
    return a.Grants.RevokeByBooking(ctx, bookingID)
}
