// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// inserted. It contains enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
    BookingID      uint64 `json:"booking_id"`
    Date           string `json:"date"`
    RoomID         string `json:"room_id"`
    RoomName       string `json:"room_name"`
    Hour           int    `json:"hour"`
    Mode           string `json:"mode"`
    GroupCode      string `json:"group_code"`
    VoucherPartner string `json:"voucher_partner,omitempty"`
    BookedFor      string `json:"booked_for,omitempty"`
    Price          int    `json:"price"`
    CreatedBy      string `json:"created_by"`
    ConfirmedAt    string `json:"confirmed_at"`
}
