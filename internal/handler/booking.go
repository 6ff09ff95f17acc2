package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/romhuset/rehearsal-booking/internal/booking"
    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/service"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// BookingHandler exposes the booking lifecycle and schedule views.
type BookingHandler struct {
	Svc      *service.BookingService
	Bookings store.BookingStore
}

func NewBookingHandler(svc *service.BookingService, bookings store.BookingStore) *BookingHandler {
	return &BookingHandler{Svc: svc, Bookings: bookings}
}

// ----- DTOs -----

type createBookingReq struct {
	Date            string `json:"date"` // YYYY-MM-DD
	RoomID          string `json:"room_id"`
	Hour            int    `json:"hour"`
	GroupCode       string `json:"group_code"`
	BookForOthers   bool   `json:"book_for_others"`
	VoucherRequired bool   `json:"voucher_required"`
	VoucherID       uint64 `json:"voucher_id"`
	BookedFor       string `json:"booked_for"`
}

type bookingResp struct {
	ID             uint64  `json:"id"`
	Date           string  `json:"date"`
	RoomID         string  `json:"room_id"`
	RoomName       string  `json:"room_name"`
	RoomType       string  `json:"room_type"`
	Hour           int     `json:"hour"`
	Mode           string  `json:"mode"`
	VoucherPartner *string `json:"voucher_partner,omitempty"`
	BookedFor      *string `json:"booked_for,omitempty"`
	GroupCode      string  `json:"group_code"`
	Price          int     `json:"price"`
	CreatedBy      string  `json:"created_by"`
}

func toBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:             b.ID,
		Date:           b.Date,
		RoomID:         b.RoomID,
		RoomName:       b.RoomName,
		RoomType:       b.RoomType,
		Hour:           b.Hour,
		Mode:           b.Mode,
		VoucherPartner: b.VoucherPartner,
		BookedFor:      b.BookedFor,
		GroupCode:      b.GroupCode,
		Price:          b.Price,
		CreatedBy:      b.CreatedBy,
	}
}

// Create books one room-hour for the authenticated member.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Svc.Create(ctx, service.CreateRequest{
		Date:            req.Date,
		RoomID:          req.RoomID,
		Hour:            req.Hour,
		GroupCode:       req.GroupCode,
		BookForOthers:   req.BookForOthers,
		VoucherRequired: req.VoucherRequired,
		VoucherID:       req.VoucherID,
		BookedFor:       req.BookedFor,
		CreatedBy:       requesterID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toBookingResp(*b))
}

// Delete cancels a booking. Only its creator may cancel it.
func (h *BookingHandler) Delete(c echo.Context) error {
	date := c.Param("date")
	roomID := c.Param("room")
	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hour"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Svc.Delete(ctx, date, roomID, hour, requesterID(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Schedule lists all bookings on one calendar date.
func (h *BookingHandler) Schedule(c echo.Context) error {
	date := c.Param("date")
	if !booking.ValidDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bs, err := h.Bookings.ListByDate(ctx, date)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]bookingResp, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingResp(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "bookings": out})
}

// Mine lists the authenticated member's own bookings.
func (h *BookingHandler) Mine(c echo.Context) error {
	uid := requesterID(c)
	if uid == "" {
		return writeError(c, service.ErrAuthenticationRequired)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bs, err := h.Bookings.ListByCreator(ctx, uid)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]bookingResp, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingResp(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}
