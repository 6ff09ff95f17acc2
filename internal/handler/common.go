package handler

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/romhuset/rehearsal-booking/internal/booking"
    "github.com/romhuset/rehearsal-booking/internal/service"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// requesterID renders the authenticated user's id as a string. The JWT
// middleware stores the raw "sub" claim, which is a float64 for numeric
// subjects; bookings snapshot the identity as text.
func requesterID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        return v
    case float64:
        return fmt.Sprintf("%.0f", v)
    case uint64:
        return fmt.Sprintf("%d", v)
    default:
        return ""
    }
}

// writeError maps domain sentinels onto HTTP statuses. Anything not in
// the taxonomy is reported as a 500 without leaking internals.
func writeError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, store.ErrSlotTaken):
        return c.JSON(http.StatusConflict, echo.Map{"error": "slot already booked"})
    case errors.Is(err, booking.ErrVoucherExhausted):
        return c.JSON(http.StatusConflict, echo.Map{"error": "voucher has no slots left"})
    case errors.Is(err, booking.ErrMissingVoucherSelection):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "voucher selection required"})
    case errors.Is(err, service.ErrInvalidDate):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
    case errors.Is(err, service.ErrOutsideOperatingHours):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "hour outside operating hours"})
    case errors.Is(err, service.ErrAuthenticationRequired):
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
    case errors.Is(err, store.ErrForbidden):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    case errors.Is(err, store.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
    case errors.Is(err, service.ErrCredentialIssuance):
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "access system unavailable"})
    default:
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
}
