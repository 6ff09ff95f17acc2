package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/romhuset/rehearsal-booking/internal/service"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// AccessHandler hands out door credentials for bookings. Only the
// booking's creator may fetch the credential; repeated calls before
// expiry return the same PIN.
type AccessHandler struct {
	Bookings store.BookingStore
	Issuer   *service.AccessIssuer
}

func NewAccessHandler(bookings store.BookingStore, issuer *service.AccessIssuer) *AccessHandler {
	return &AccessHandler{Bookings: bookings, Issuer: issuer}
}

type accessResp struct {
	BookingID uint64    `json:"booking_id"`
	Provider  string    `json:"provider"`
	DoorIDs   []string  `json:"door_ids"`
	PIN       *string   `json:"pin,omitempty"`
	DeepLink  *string   `json:"deep_link,omitempty"`
	ValidFrom time.Time `json:"valid_from"`
	ValidTo   time.Time `json:"valid_to"`
}

// Get returns the door credential for a booked slot, issuing one when
// no active grant exists.
func (h *AccessHandler) Get(c echo.Context) error {
	date := c.Param("date")
	roomID := c.Param("room")
	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hour"})
	}
	uid := requesterID(c)
	if uid == "" {
		return writeError(c, service.ErrAuthenticationRequired)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.Get(ctx, date, roomID, hour)
	if err != nil {
		return writeError(c, err)
	}
	if b.CreatedBy != uid {
		return writeError(c, store.ErrForbidden)
	}

	g, err := h.Issuer.GetOrIssue(ctx, b)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, accessResp{
		BookingID: b.ID,
		Provider:  g.Provider,
		DoorIDs:   g.DoorIDs,
		PIN:       g.Secret,
		DeepLink:  g.DeepLink,
		ValidFrom: g.StartAt,
		ValidTo:   g.EndAt,
	})
}
