package handler

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// VoucherHandler manages partner voucher balances. Listing is open to
// members so the booking form can offer a voucher selection; mutations
// are admin-only.
type VoucherHandler struct {
	Vouchers store.VoucherStore
}

func NewVoucherHandler(v store.VoucherStore) *VoucherHandler { return &VoucherHandler{Vouchers: v} }

type voucherReq struct {
	Partner   string `json:"partner"`
	SlotsLeft int    `json:"slots_left"`
}

type adjustReq struct {
	Delta int `json:"delta"`
}

type voucherResp struct {
	ID        uint64 `json:"id"`
	Partner   string `json:"partner"`
	SlotsLeft int    `json:"slots_left"`
}

// List returns every voucher with its remaining balance.
func (h *VoucherHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	vs, err := h.Vouchers.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]voucherResp, 0, len(vs))
	for _, v := range vs {
		out = append(out, voucherResp{ID: v.ID, Partner: v.Partner, SlotsLeft: v.SlotsLeft})
	}
	return c.JSON(http.StatusOK, echo.Map{"vouchers": out})
}

// Create registers a new partner voucher.
func (h *VoucherHandler) Create(c echo.Context) error {
	var req voucherReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Partner = strings.TrimSpace(req.Partner)
	if req.Partner == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "partner required"})
	}
	if req.SlotsLeft < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slots_left must not be negative"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v := &model.Voucher{Partner: req.Partner, SlotsLeft: req.SlotsLeft}
	if err := h.Vouchers.Create(ctx, v); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, voucherResp{ID: v.ID, Partner: v.Partner, SlotsLeft: v.SlotsLeft})
}

// Delete removes a voucher. Bookings that already consumed it keep the
// snapshotted partner name.
func (h *VoucherHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Vouchers.Delete(ctx, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Adjust applies a signed delta to a voucher balance, clamped at zero.
func (h *VoucherHandler) Adjust(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req adjustReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Vouchers.Adjust(ctx, id, req.Delta); err != nil {
		return writeError(c, err)
	}
	v, err := h.Vouchers.Get(ctx, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, voucherResp{ID: v.ID, Partner: v.Partner, SlotsLeft: v.SlotsLeft})
}
