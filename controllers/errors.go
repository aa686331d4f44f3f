package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavourhaven/hotel-restaurant-app/services"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

// respondServiceError maps domain errors onto the HTTP surface:
// missing records are 404, rejected operations are 400, everything
// else is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrBookingOverlap),
		errors.Is(err, services.ErrNotBooked),
		errors.Is(err, services.ErrNotCheckedIn),
		errors.Is(err, services.ErrBookingCompleted),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidTransition):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
