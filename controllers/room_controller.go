package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vlad3958/HotelBooking/services"
	"github.com/vlad3958/HotelBooking/utils"
)

type RoomController struct {
	rooms  *services.RoomService
	client *services.ClientService
}

func NewRoomController(rooms *services.RoomService, client *services.ClientService) *RoomController {
	return &RoomController{rooms: rooms, client: client}
}

type createRoomRequest struct {
	HotelID     uint    `json:"hotelId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	WindowStart string  `json:"windowStart" binding:"omitempty,dateonly"`
	WindowEnd   string  `json:"windowEnd" binding:"omitempty,dateonly"`
}

type updateRoomRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Capacity int     `json:"capacity" binding:"required,gt=0"`
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.client.Rooms()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms filters rooms free for the whole [startDate, endDate)
// range and available per their window.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
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
	if !endDate.After(startDate) {
		utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidRange.Error())
		return
	}

	rooms, err := rc.client.RoomsByDateRange(startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByCity(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "city is required")
		return
	}

	room, err := rc.client.RoomByCity(city)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room data: "+err.Error())
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	var windowStart, windowEnd *time.Time
	if payload.WindowStart != "" {
		t, _ := parseDate(payload.WindowStart) // format guaranteed by binding
		windowStart = &t
	}
	if payload.WindowEnd != "" {
		t, _ := parseDate(payload.WindowEnd)
		windowEnd = &t
	}

	room, err := rc.rooms.Create(payload.HotelID, payload.Name, payload.Price, payload.Capacity, windowStart, windowEnd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload updateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room data: "+err.Error())
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}

	room, err := rc.rooms.Update(id, payload.Name, payload.Price, payload.Capacity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
