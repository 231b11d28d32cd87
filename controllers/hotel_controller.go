package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/vlad3958/HotelBooking/services"
	"github.com/vlad3958/HotelBooking/utils"
)

type HotelController struct {
	hotels *services.HotelService
	client *services.ClientService
}

func NewHotelController(hotels *services.HotelService, client *services.ClientService) *HotelController {
	return &HotelController{hotels: hotels, client: client}
}

type hotelRequest struct {
	Name        string          `json:"name" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amenities   json.RawMessage `json:"amenities"`
}

func (hr *hotelRequest) trim() bool {
	hr.Name = strings.TrimSpace(hr.Name)
	hr.Address = strings.TrimSpace(hr.Address)
	hr.Description = strings.TrimSpace(hr.Description)
	return hr.Name != "" && hr.Address != "" && hr.Description != ""
}

// GetHotels lists hotels with their rooms.
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.client.Hotels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (hc *HotelController) CreateHotel(c *gin.Context) {
	var payload hotelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel data: "+err.Error())
		return
	}
	if !payload.trim() {
		utils.JSONError(c, http.StatusBadRequest, "name, address and description are required")
		return
	}

	hotel, err := hc.hotels.Create(payload.Name, payload.Address, payload.Description, datatypes.JSON(payload.Amenities))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload hotelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel data: "+err.Error())
		return
	}
	if !payload.trim() {
		utils.JSONError(c, http.StatusBadRequest, "name, address and description are required")
		return
	}

	hotel, err := hc.hotels.Update(id, payload.Name, payload.Address, payload.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := hc.hotels.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
