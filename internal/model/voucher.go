package model

import "time"

// Voucher holds a prepaid credit balance for a partner organization as
// stored in the `vouchers` table. One unit is consumed per voucher-mode
// booking and restored when such a booking is deleted. The balance never
// goes below zero; adjustments clamp at the floor.
//
// Bookings reference a voucher by partner name only. Deleting a voucher
// does not cascade to historic bookings.
//
// Fields:
//  ID        – primary key identifier.
//  Partner   – partner organization name.
//  SlotsLeft – remaining prepaid slots (>= 0).
//  CreatedAt – timestamp of creation.
type Voucher struct {
    ID        uint64    // vouchers.id
    Partner   string    // vouchers.partner
    SlotsLeft int       // vouchers.slots_left
    CreatedAt time.Time // vouchers.created_at
}
