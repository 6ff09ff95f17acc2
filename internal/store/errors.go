// Sentinel errors shared by both store implementations. Higher layers
// match these with errors.Is and translate them into HTTP statuses.
package store

import "errors"

// ErrSlotTaken is returned when a booking insertion collides with an
// existing booking on the same (date, room, hour) slot. Handlers should
// translate this into an HTTP 409 response; the caller must pick a
// different slot rather than retry.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when a booking, voucher, room or grant does
// not exist. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, such as deleting another member's booking.
// Handlers should translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned when registering with an email that is
// already taken. Handlers should translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")
