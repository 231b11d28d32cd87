package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vlad3958/HotelBooking/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Create(name, address, description string, amenities datatypes.JSON) (*models.Hotel, error) {
	hotel := models.Hotel{
		Name:        name,
		Address:     address,
		Description: description,
		Amenities:   amenities,
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}

func (s *HotelService) Update(id uint, name, address, description string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel %d: %w", id, err)
	}

	hotel.Name = name
	hotel.Address = address
	hotel.Description = description
	if err := s.DB.Save(&hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel %d: %w", id, err)
	}
	return &hotel, nil
}

// Delete removes the hotel together with its rooms and their bookings in one
// transaction, so a half-deleted hotel never becomes observable.
func (s *HotelService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHotelNotFound
			}
			return fmt.Errorf("failed to load hotel %d: %w", id, err)
		}

		var roomIDs []uint
		if err := tx.Model(&models.Room{}).
			Where("hotel_id = ?", id).
			Pluck("id", &roomIDs).Error; err != nil {
			return fmt.Errorf("failed to list rooms of hotel %d: %w", id, err)
		}

		if len(roomIDs) > 0 {
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&models.Booking{}).Error; err != nil {
				return fmt.Errorf("failed to delete bookings of hotel %d: %w", id, err)
			}
			if err := tx.Where("hotel_id = ?", id).Delete(&models.Room{}).Error; err != nil {
				return fmt.Errorf("failed to delete rooms of hotel %d: %w", id, err)
			}
		}

		if err := tx.Delete(&hotel).Error; err != nil {
			return fmt.Errorf("failed to delete hotel %d: %w", id, err)
		}
		return nil
	})
}
