package booking

import (
    "time"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

// dateLayout is the date-only format used throughout the booking ledger.
// Ranges are compared on these strings, never on instants, so statistics
// cannot drift across timezones.
const dateLayout = "2006-01-02"

// EnergyCoefficients maps room types to their average energy draw per
// booked hour (kWh/h).
type EnergyCoefficients map[string]float64

// UtilizationStats summarizes how heavily the rooms were booked over a
// closed date range.
type UtilizationStats struct {
    Percent       float64 `json:"utilization_pct"`
    BookedCount   int     `json:"booked_count"`
    TotalCapacity int     `json:"total_capacity"`
}

// DaysInclusive returns the number of calendar days in the closed range
// [from, to]. Invalid or reversed ranges yield 0.
func DaysInclusive(from, to string) int {
    a, err := time.Parse(dateLayout, from)
    if err != nil {
        return 0
    }
    b, err := time.Parse(dateLayout, to)
    if err != nil {
        return 0
    }
    if b.Before(a) {
        return 0
    }
    return int(b.Sub(a).Hours()/24) + 1
}

// InRange reports whether a date-only string falls inside the closed
// range [from, to]. ISO date strings order lexicographically, so plain
// string comparison is exact.
func InRange(date, from, to string) bool {
    return date >= from && date <= to
}

// Utilization computes booked hours against total bookable capacity over
// the closed range [from, to]. Capacity is roomCount × hoursPerDay ×
// days in range. Each booking counts exactly once. A zero capacity
// yields 0% rather than dividing by zero.
func Utilization(bookings []model.Booking, roomCount int, from, to string, hoursPerDay int) UtilizationStats {
    capacity := roomCount * hoursPerDay * DaysInclusive(from, to)
    booked := 0
    for _, b := range bookings {
        if InRange(b.Date, from, to) {
            booked++
        }
    }
    st := UtilizationStats{BookedCount: booked, TotalCapacity: capacity}
    if capacity > 0 {
        st.Percent = float64(booked) / float64(capacity) * 100
    }
    return st
}

// Revenue sums the stored price of every booking in the closed range
// [from, to]. A booking without a stored price (legacy or backfilled
// rows) falls back to the rate-card base for its room type, so revenue
// only reads as zero when the rate card itself is zero.
func Revenue(bookings []model.Booking, from, to string, rc RateCard) int {
    total := 0
    for _, b := range bookings {
        if !InRange(b.Date, from, to) {
            continue
        }
        if b.Price > 0 {
            total += b.Price
        } else {
            total += rc.Base[b.RoomType]
        }
    }
    return total
}

// Energy returns the average per-hour energy coefficient over the booked
// slots in the closed range [from, to], weighted by how many slots of
// each room type were booked. With zero booked slots it falls back to
// the unweighted mean of all configured room-type coefficients, keeping
// empty days well-defined.
func Energy(bookings []model.Booking, from, to string, coeffs EnergyCoefficients) float64 {
    sum := 0.0
    n := 0
    for _, b := range bookings {
        if InRange(b.Date, from, to) {
            sum += coeffs[b.RoomType]
            n++
        }
    }
    if n > 0 {
        return sum / float64(n)
    }
    if len(coeffs) == 0 {
        return 0
    }
    base := 0.0
    for _, c := range coeffs {
        base += c
    }
    return base / float64(len(coeffs))
}

// WeekRange returns the Monday and Sunday of the week containing the
// reference date. An unparseable reference yields the reference itself
// as both bounds so callers degrade to a single-day window.
func WeekRange(ref string) (string, string) {
    t, err := time.Parse(dateLayout, ref)
    if err != nil {
        return ref, ref
    }
    offset := (int(t.Weekday()) + 6) % 7 // days since Monday
    monday := t.AddDate(0, 0, -offset)
    sunday := monday.AddDate(0, 0, 6)
    return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// MonthRange returns the first and last calendar day of the month
// containing the reference date. An unparseable reference yields the
// reference itself as both bounds.
func MonthRange(ref string) (string, string) {
    t, err := time.Parse(dateLayout, ref)
    if err != nil {
        return ref, ref
    }
    first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
    last := first.AddDate(0, 1, -1)
    return first.Format(dateLayout), last.Format(dateLayout)
}

// ValidDate reports whether s is a well-formed date-only string.
func ValidDate(s string) bool {
    _, err := time.Parse(dateLayout, s)
    return err == nil
}
