package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vlad3958/HotelBooking/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(hotelID uint, name string, price float64, capacity int, windowStart, windowEnd *time.Time) (*models.Room, error) {
	if windowStart != nil && windowEnd != nil && windowStart.After(*windowEnd) {
		return nil, ErrInvalidWindow
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", hotelID, err)
	}

	room := models.Room{
		HotelID:     hotelID,
		Name:        name,
		Price:       price,
		Capacity:    capacity,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, name string, price float64, capacity int) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}

	room.Name = name
	room.Price = price
	room.Capacity = capacity
	if err := s.DB.Save(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}
	return &room, nil
}

// Delete removes the room and its bookings together.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", id, err)
		}

		if err := tx.Where("room_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete bookings of room %d: %w", id, err)
		}
		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, err)
		}
		return nil
	})
}
