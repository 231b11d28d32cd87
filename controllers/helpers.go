package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vlad3958/HotelBooking/services"
	"github.com/vlad3958/HotelBooking/utils"
)

func parseDate(value string) (time.Time, error) {
	return time.Parse(utils.DateLayout, value)
}

// parseID reads the :id path parameter; on failure it has already written the
// 400 response.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an infrastructure failure: logged, and
// surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrInvalidWindow),
		errors.Is(err, services.ErrOutsideAvailability),
		errors.Is(err, services.ErrInvalidRole):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomAlreadyBooked),
		errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
