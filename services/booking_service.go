package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vlad3958/HotelBooking/models"
)

// BookingService owns the booking engine: the availability-window and
// overlap rules that decide whether a room may be booked for a date range.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingResponse is the flattened shape returned to clients, with the room
// name resolved by lookup instead of an embedded room object.
type BookingResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	UserID    string    `json:"userId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	RoomName  string    `json:"roomName,omitempty"`
}

// Book places a booking for [startDate, endDate) on the given room. The caller
// guarantees endDate > startDate. The room fetch, window checks, overlap scan
// and insert all run in one transaction, with the room row locked so two
// concurrent requests for the same room cannot both pass the overlap check.
func (s *BookingService) Book(userID string, roomID uint, startDate, endDate time.Time) (*models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		roomQuery := tx
		if tx.Dialector.Name() == "mysql" {
			// sqlite has no row locks; its write transactions already serialize
			roomQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room models.Room
		if err := roomQuery.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		if room.WindowStart != nil && startDate.Before(*room.WindowStart) {
			return ErrOutsideAvailability
		}
		if room.WindowEnd != nil && endDate.After(*room.WindowEnd) {
			return ErrOutsideAvailability
		}

		// Half-open overlap: back-to-back ranges are allowed.
		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND start_date < ? AND end_date > ?", roomID, endDate, startDate).
			Count(&overlapping).Error; err != nil {
			return fmt.Errorf("failed to scan existing bookings for room %d: %w", roomID, err)
		}
		if overlapping > 0 {
			return ErrRoomAlreadyBooked
		}

		booking = models.Booking{
			UserID:    userID,
			RoomID:    roomID,
			StartDate: startDate,
			EndDate:   endDate,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingsForUser lists the caller's bookings with their room names resolved.
func (s *BookingService) BookingsForUser(userID string) ([]BookingResponse, error) {
	var bookings []models.Booking
	if err := s.DB.
		Where("user_id = ?", userID).
		Order("start_date").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for user: %w", err)
	}

	roomNames, err := s.roomNames(bookings)
	if err != nil {
		return nil, err
	}

	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingResponse{
			ID:        b.ID,
			RoomID:    b.RoomID,
			UserID:    b.UserID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			RoomName:  roomNames[b.RoomID],
		})
	}
	return out, nil
}

func (s *BookingService) roomNames(bookings []models.Booking) (map[uint]string, error) {
	ids := make([]uint, 0, len(bookings))
	seen := map[uint]bool{}
	for _, b := range bookings {
		if !seen[b.RoomID] {
			seen[b.RoomID] = true
			ids = append(ids, b.RoomID)
		}
	}
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rooms []models.Room
	if err := s.DB.Where("id IN ?", ids).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve rooms: %w", err)
	}
	for _, r := range rooms {
		names[r.ID] = r.Name
	}
	return names, nil
}
