package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vlad3958/HotelBooking/models"
)

// ClientService serves the read side of the public API: hotel and room
// listings and the availability filters.
type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

func (s *ClientService) Hotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Preload("Rooms").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	return hotels, nil
}

func (s *ClientService) Rooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// RoomsByDateRange returns rooms with no booking overlapping [startDate,
// endDate) whose availability window, where defined, contains the whole range.
func (s *ClientService) RoomsByDateRange(startDate, endDate time.Time) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.
		Where(`NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE bookings.room_id = rooms.id
			  AND bookings.deleted_at IS NULL
			  AND bookings.start_date < ?
			  AND bookings.end_date > ?
		)`, endDate, startDate).
		Where("(window_start IS NULL OR window_start <= ?)", startDate).
		Where("(window_end IS NULL OR window_end >= ?)", endDate).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter rooms by date range: %w", err)
	}
	return rooms, nil
}

// RoomByCity returns the first room whose hotel address contains city,
// case-insensitively. Order among several matches is whatever the store
// yields first.
func (s *ClientService) RoomByCity(city string) (*models.Room, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrRoomNotFound
	}

	var room models.Room
	err := s.DB.
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id AND hotels.deleted_at IS NULL").
		Where("LOWER(hotels.address) LIKE ?", "%"+strings.ToLower(city)+"%").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room by city: %w", err)
	}
	return &room, nil
}
