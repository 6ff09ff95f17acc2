package model

import "time"

// Group codes applied when pricing a booking. Unknown codes are accepted
// and priced with a multiplier of 1.0.
const (
    GroupStandard      = "standard"
    GroupKulturskole   = "kulturskole"
    GroupKulturenheten = "kulturenheten"
)

// Admission modes recorded on a booking. Exactly one applies per booking:
// external bookings are made on behalf of a third party and never debit a
// voucher, voucher bookings consume one prepaid slot, open bookings touch
// nothing.
const (
    ModeOpen     = "open"
    ModeVoucher  = "voucher"
    ModeExternal = "external"
)

// Booking records one reserved room-hour as stored in the `bookings`
// table. The natural key is (Date, RoomID, Hour) and the table carries a
// unique constraint over it; at most one booking ever exists per slot.
// A booking is immutable after creation except for deletion.
//
// Fields:
//  ID             – primary key identifier.
//  Date           – calendar date of the slot, date-only string (2006-01-02).
//  RoomID         – room being booked.
//  Hour           – hour of day (0..23) the slot starts at.
//  RoomType       – room type snapshot taken at creation.
//  RoomName       – room display name snapshot taken at creation.
//  Mode           – admission mode outcome (open, voucher, external).
//  VoucherPartner – partner whose voucher was consumed (voucher mode only).
//  BookedFor      – third-party label (external mode only).
//  GroupCode      – discount group the price was computed under.
//  Price          – computed price in whole currency units.
//  CreatedBy      – identity of the creator; only the creator may delete.
//  InsertedAt     – creation timestamp.
type Booking struct {
    ID             uint64    // bookings.id
    Date           string    // bookings.date
    RoomID         string    // bookings.room_id
    Hour           int       // bookings.hour
    RoomType       string    // bookings.type
    RoomName       string    // bookings.room_name
    Mode           string    // bookings.mode
    VoucherPartner *string   // bookings.voucher_partner (nullable)
    BookedFor      *string   // bookings.booked_for (nullable)
    GroupCode      string    // bookings.group_code
    Price          int       // bookings.price
    CreatedBy      string    // bookings.created_by
    InsertedAt     time.Time // bookings.inserted_at
}
