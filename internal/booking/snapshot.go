package booking

import "github.com/romhuset/rehearsal-booking/internal/model"

// Slot identifies one bookable room-hour: the atomic unit of booking.
// Date is a date-only string (2006-01-02) so comparisons never drift
// across timezones.
type Slot struct {
    Date   string
    RoomID string
    Hour   int
}

// SlotOf returns the slot key of a booking.
func SlotOf(b model.Booking) Slot {
    return Slot{Date: b.Date, RoomID: b.RoomID, Hour: b.Hour}
}

// Snapshot is an immutable view of the booking ledger keyed by slot.
// All operations are copy-on-write: they return a new snapshot and leave
// the receiver untouched, so concurrent readers never observe a partial
// update. The in-memory store serializes writers around it; the
// uniqueness invariant for the MySQL path is carried by the unique key
// on (date, room_id, hour) instead.
type Snapshot map[Slot]model.Booking

// Insert returns a snapshot containing the booking plus a flag telling
// whether it was inserted. On a slot collision the original snapshot is
// returned unchanged and the flag is false; the store layer maps that to
// an explicit slot-taken rejection, matching what the MySQL unique key
// produces.
func (s Snapshot) Insert(b model.Booking) (Snapshot, bool) {
    key := SlotOf(b)
    if _, taken := s[key]; taken {
        return s, false
    }
    out := make(Snapshot, len(s)+1)
    for k, v := range s {
        out[k] = v
    }
    out[key] = b
    return out, true
}

// Remove returns a snapshot without the booking at the given slot. When
// no booking exists there, the original snapshot is returned unchanged.
func (s Snapshot) Remove(key Slot) Snapshot {
    if _, ok := s[key]; !ok {
        return s
    }
    out := make(Snapshot, len(s)-1)
    for k, v := range s {
        if k != key {
            out[k] = v
        }
    }
    return out
}

// Get returns the booking at the given slot, or nil when the slot is
// free.
func (s Snapshot) Get(key Slot) *model.Booking {
    if b, ok := s[key]; ok {
        return &b
    }
    return nil
}
