package booking

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/romhuset/rehearsal-booking/internal/model"
)

const hoursPerDay = 15 // 08:00-23:00 operating window

func TestDaysInclusive(t *testing.T) {
    assert.Equal(t, 1, DaysInclusive("2025-09-15", "2025-09-15"))
    assert.Equal(t, 7, DaysInclusive("2025-09-15", "2025-09-21"))
    assert.Equal(t, 31, DaysInclusive("2025-10-01", "2025-10-31"))
    assert.Equal(t, 0, DaysInclusive("2025-09-21", "2025-09-15"), "reversed range")
    assert.Equal(t, 0, DaysInclusive("not-a-date", "2025-09-15"))
}

func TestUtilizationSingleBookingSingleDay(t *testing.T) {
    bs := []model.Booking{slotBooking("2025-09-15", "r1", 10)}
    st := Utilization(bs, 1, "2025-09-15", "2025-09-15", hoursPerDay)
    assert.Equal(t, 1, st.BookedCount)
    assert.Equal(t, hoursPerDay, st.TotalCapacity)
    assert.InDelta(t, 100.0/float64(hoursPerDay), st.Percent, 1e-9)
}

func TestUtilizationWeek(t *testing.T) {
    bs := []model.Booking{
        slotBooking("2025-09-15", "r1", 10),
        slotBooking("2025-09-16", "r1", 11),
        slotBooking("2025-09-21", "r1", 12),
        slotBooking("2025-09-30", "r1", 12), // outside the range
    }
    st := Utilization(bs, 1, "2025-09-15", "2025-09-21", hoursPerDay)
    assert.Equal(t, 3, st.BookedCount)
    assert.Equal(t, hoursPerDay*7, st.TotalCapacity)
    assert.InDelta(t, 3.0/float64(hoursPerDay*7)*100, st.Percent, 1e-9)
}

func TestUtilizationZeroCapacity(t *testing.T) {
    st := Utilization(nil, 0, "2025-09-15", "2025-09-15", hoursPerDay)
    assert.Equal(t, 0.0, st.Percent)
    assert.Equal(t, 0, st.TotalCapacity)
}

func TestRevenueSumsStoredPrices(t *testing.T) {
    rc := testRateCard()
    bs := []model.Booking{
        {Date: "2025-09-15", RoomType: "solo", Price: 139},
        {Date: "2025-09-15", RoomType: "band", Price: 349},
        {Date: "2025-09-16", RoomType: "band", Price: 349}, // outside
    }
    assert.Equal(t, 488, Revenue(bs, "2025-09-15", "2025-09-15", rc))
}

func TestRevenueFallsBackToRateCard(t *testing.T) {
    rc := testRateCard()
    bs := []model.Booking{
        {Date: "2025-09-15", RoomType: "band"}, // legacy row without price
    }
    assert.Equal(t, 349, Revenue(bs, "2025-09-15", "2025-09-15", rc))
}

func testCoeffs() EnergyCoefficients {
    return EnergyCoefficients{"solo": 1.2, "band": 3.6, "preprod": 2.4}
}

func TestEnergyWeightedMean(t *testing.T) {
    bs := []model.Booking{
        {Date: "2025-09-15", RoomType: "solo"},
        {Date: "2025-09-15", RoomType: "band"},
    }
    // one solo + one band -> arithmetic mean of the two coefficients
    assert.InDelta(t, (1.2+3.6)/2, Energy(bs, "2025-09-15", "2025-09-15", testCoeffs()), 1e-9)
}

func TestEnergyEmptyDayBaseline(t *testing.T) {
    got := Energy(nil, "2025-09-15", "2025-09-15", testCoeffs())
    assert.InDelta(t, (1.2+3.6+2.4)/3, got, 1e-9)
}

func TestEnergyNoCoefficients(t *testing.T) {
    assert.Equal(t, 0.0, Energy(nil, "2025-09-15", "2025-09-15", nil))
}

func TestWeekRange(t *testing.T) {
    // 2025-09-17 is a Wednesday
    from, to := WeekRange("2025-09-17")
    assert.Equal(t, "2025-09-15", from)
    assert.Equal(t, "2025-09-21", to)

    // Monday and Sunday map onto their own week
    from, to = WeekRange("2025-09-15")
    assert.Equal(t, "2025-09-15", from)
    assert.Equal(t, "2025-09-21", to)
    from, to = WeekRange("2025-09-21")
    assert.Equal(t, "2025-09-15", from)
    assert.Equal(t, "2025-09-21", to)
}

func TestMonthRange(t *testing.T) {
    from, to := MonthRange("2025-02-10")
    assert.Equal(t, "2025-02-01", from)
    assert.Equal(t, "2025-02-28", to)

    from, to = MonthRange("2024-02-10") // leap year
    assert.Equal(t, "2024-02-29", to)
    _ = from
}
