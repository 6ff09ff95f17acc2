package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/romhuset/rehearsal-booking/internal/booking"
    "github.com/romhuset/rehearsal-booking/internal/config"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// StatsHandler serves utilization, revenue and energy figures over
// arbitrary and calendar-aligned date ranges. All three numbers are
// computed from the same booking listing so they always describe the
// same set of slots.
type StatsHandler struct {
	Bookings store.BookingStore
	Rooms    store.RoomStore
	House    config.HouseConfig
}

func NewStatsHandler(bookings store.BookingStore, rooms store.RoomStore, house config.HouseConfig) *StatsHandler {
	return &StatsHandler{Bookings: bookings, Rooms: rooms, House: house}
}

type statsResp struct {
	From        string                   `json:"from"`
	To          string                   `json:"to"`
	Utilization booking.UtilizationStats `json:"utilization"`
	RevenueNOK  int                      `json:"revenue_nok"`
	EnergyKWhPH float64                  `json:"energy_kwh_per_hour"`
}

func (h *StatsHandler) rangeStats(c echo.Context, from, to string) error {
	if !booking.ValidDate(from) || !booking.ValidDate(to) || to < from {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid range, want from<=to as YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bs, err := h.Bookings.ListRange(ctx, from, to)
	if err != nil {
		return writeError(c, err)
	}
	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return writeError(c, err)
	}

	hoursPerDay := h.House.EndHour - h.House.OpenHour
	return c.JSON(http.StatusOK, statsResp{
		From:        from,
		To:          to,
		Utilization: booking.Utilization(bs, len(rooms), from, to, hoursPerDay),
		RevenueNOK:  booking.Revenue(bs, from, to, h.House.Rates),
		EnergyKWhPH: booking.Energy(bs, from, to, h.House.Energy),
	})
}

// Range reports stats for an arbitrary closed range given as ?from=&to=.
func (h *StatsHandler) Range(c echo.Context) error {
	return h.rangeStats(c, c.QueryParam("from"), c.QueryParam("to"))
}

// Day reports stats for a single calendar date.
func (h *StatsHandler) Day(c echo.Context) error {
	date := c.Param("date")
	return h.rangeStats(c, date, date)
}

// Week reports stats for the Monday-to-Sunday week containing the date.
func (h *StatsHandler) Week(c echo.Context) error {
	from, to := booking.WeekRange(c.Param("date"))
	return h.rangeStats(c, from, to)
}

// Month reports stats for the calendar month containing the date.
func (h *StatsHandler) Month(c echo.Context) error {
	from, to := booking.MonthRange(c.Param("date"))
	return h.rangeStats(c, from, to)
}
