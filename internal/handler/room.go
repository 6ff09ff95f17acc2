package handler

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/romhuset/rehearsal-booking/internal/model"
    "github.com/romhuset/rehearsal-booking/internal/store"
)

// RoomHandler manages the room catalogue. Mutations are admin-only;
// listing is public so members can see what they can book.
type RoomHandler struct {
	Rooms store.RoomStore
}

func NewRoomHandler(rooms store.RoomStore) *RoomHandler { return &RoomHandler{Rooms: rooms} }

type roomReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // solo | band | preprod
}

type roomResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func validRoomType(t string) bool {
	switch t {
	case model.RoomTypeSolo, model.RoomTypeBand, model.RoomTypePreprod:
		return true
	}
	return false
}

// List returns every room.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]roomResp, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomResp{ID: r.ID, Name: r.Name, Type: r.Type})
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}

// Create adds a room to the catalogue.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	if req.ID == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and name required"})
	}
	if !validRoomType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be solo, band or preprod"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room := &model.Room{ID: req.ID, Name: req.Name, Type: req.Type}
	if err := h.Rooms.Create(ctx, room); err != nil {
		if err == store.ErrSlotTaken {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room id already exists"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, roomResp{ID: room.ID, Name: room.Name, Type: room.Type})
}

// Delete removes a room from the catalogue. Existing bookings that
// reference the room keep their snapshotted name and type.
func (h *RoomHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rooms.Delete(ctx, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
