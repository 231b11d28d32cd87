package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vlad3958/HotelBooking/middleware"
	"github.com/vlad3958/HotelBooking/services"
	"github.com/vlad3958/HotelBooking/utils"
)

type BookingController struct {
	bookings *services.BookingService
	admin    *services.AdminService
}

func NewBookingController(bookings *services.BookingService, admin *services.AdminService) *BookingController {
	return &BookingController{bookings: bookings, admin: admin}
}

type createBookingRequest struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	StartDate string `json:"startDate" binding:"required,dateonly"`
	EndDate   string `json:"endDate" binding:"required,dateonly"`
}

// CreateBooking books a room for the authenticated caller. The range
// precondition (end after start) is enforced here, before the engine runs.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload createBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking data: "+err.Error())
		return
	}

	startDate, _ := parseDate(payload.StartDate) // format guaranteed by binding
	endDate, _ := parseDate(payload.EndDate)
	if !endDate.After(startDate) {
		utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidRange.Error())
		return
	}

	booking, err := bc.bookings.Book(userID, payload.RoomID, startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the caller's own bookings.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	bookings, err := bc.bookings.BookingsForUser(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetAllBookings is the admin listing with room and hotel flattened in.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := bc.admin.AllBookings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingStats aggregates bookings intersecting the query window.
func (bc *BookingController) GetBookingStats(c *gin.Context) {
	startDate, err := parseDate(c.Query("startDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseDate(c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
		return
	}

	stats, err := bc.admin.BookingStats(startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
