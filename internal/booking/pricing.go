// Package booking contains the pure core of the reservation system:
// pricing, the voucher ledger transforms, the admission policy, the
// copy-on-write slot snapshot and the range statistics. Nothing in this
// package performs I/O or reads ambient state; every function is total
// and re-entrant so the same logic backs both the MySQL-backed and the
// in-memory store.
package booking

import "math"

// RateCard maps room types to base prices and group codes to discount
// multipliers. Both maps may be sparse: pricing degrades gracefully on
// unknown keys rather than failing.
type RateCard struct {
    Base        map[string]int     // base price per room type
    Multipliers map[string]float64 // discount multiplier per group code
}

// Price computes the charge for one slot as round(base × multiplier).
// An unknown room type contributes a base of 0 and an unknown group code
// a multiplier of 1.0, so the function never fails on bad input.
func Price(roomType, groupCode string, rc RateCard) int {
    base := rc.Base[roomType]
    mult, ok := rc.Multipliers[groupCode]
    if !ok {
        mult = 1.0
    }
    return int(math.Round(float64(base) * mult))
}
