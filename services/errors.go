package services

import "errors"

// Domain errors returned by the services. Controllers translate these
// into HTTP statuses; the message text is what the client sees.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not available")
	ErrBookingOverlap   = errors.New("room is already booked for those dates")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotBooked        = errors.New("can only check in a booked reservation")
	ErrNotCheckedIn     = errors.New("guest must be checked in first")
	ErrBookingCompleted = errors.New("cannot cancel a completed booking")

	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidTransition = errors.New("status change not allowed from current status")
)
