package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vlad3958/HotelBooking/models"
)

// AdminService serves the reporting side: the full booking listing and the
// aggregate statistics over a query window.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// BookingStats is derived per request, never persisted.
type BookingStats struct {
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	TotalBookings   int       `json:"totalBookings"`
	DistinctRooms   int       `json:"distinctRooms"`
	DistinctUsers   int       `json:"distinctUsers"`
	TotalRoomNights int       `json:"totalRoomNights"`
}

type HotelSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type RoomSummary struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Capacity    int           `json:"capacity"`
	WindowStart *time.Time    `json:"windowStart,omitempty"`
	WindowEnd   *time.Time    `json:"windowEnd,omitempty"`
	Hotel       *HotelSummary `json:"hotel,omitempty"`
}

// AdminBooking flattens the booking graph (booking -> room -> hotel) for the
// admin listing so no cyclic references ever reach the serializer.
type AdminBooking struct {
	ID        uint         `json:"id"`
	UserID    string       `json:"userId"`
	RoomID    uint         `json:"roomId"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Room      *RoomSummary `json:"room,omitempty"`
}

// BookingStats scans every booking overlapping [startDate, endDate) and
// computes the aggregates in one pass. Each booking's room-night contribution
// is clamped to the query window and counted in whole days.
func (s *AdminService) BookingStats(startDate, endDate time.Time) (BookingStats, error) {
	if !endDate.After(startDate) {
		return BookingStats{}, ErrInvalidRange
	}

	var bookings []models.Booking
	if err := s.DB.
		Where("start_date < ? AND end_date > ?", endDate, startDate).
		Find(&bookings).Error; err != nil {
		return BookingStats{}, fmt.Errorf("failed to scan bookings for stats: %w", err)
	}

	rooms := map[uint]struct{}{}
	users := map[string]struct{}{}
	roomNights := 0
	for _, b := range bookings {
		rooms[b.RoomID] = struct{}{}
		if b.UserID != "" {
			users[b.UserID] = struct{}{}
		}

		effStart := b.StartDate
		if effStart.Before(startDate) {
			effStart = startDate
		}
		effEnd := b.EndDate
		if effEnd.After(endDate) {
			effEnd = endDate
		}
		if nights := wholeDays(effStart, effEnd); nights > 0 {
			roomNights += nights
		}
	}

	return BookingStats{
		StartDate:       startDate,
		EndDate:         endDate,
		TotalBookings:   len(bookings),
		DistinctRooms:   len(rooms),
		DistinctUsers:   len(users),
		TotalRoomNights: roomNights,
	}, nil
}

// wholeDays counts calendar days between two instants, ignoring time-of-day.
func wholeDays(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AllBookings lists every booking with its room and hotel resolved by lookup.
func (s *AdminService) AllBookings() ([]AdminBooking, error) {
	var bookings []models.Booking
	if err := s.DB.Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	roomIDs := make([]uint, 0, len(bookings))
	seen := map[uint]bool{}
	for _, b := range bookings {
		if !seen[b.RoomID] {
			seen[b.RoomID] = true
			roomIDs = append(roomIDs, b.RoomID)
		}
	}

	roomsByID := map[uint]models.Room{}
	hotelsByID := map[uint]models.Hotel{}
	if len(roomIDs) > 0 {
		var rooms []models.Room
		if err := s.DB.Where("id IN ?", roomIDs).Find(&rooms).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve rooms: %w", err)
		}
		hotelIDs := make([]uint, 0, len(rooms))
		seenHotel := map[uint]bool{}
		for _, r := range rooms {
			roomsByID[r.ID] = r
			if !seenHotel[r.HotelID] {
				seenHotel[r.HotelID] = true
				hotelIDs = append(hotelIDs, r.HotelID)
			}
		}
		if len(hotelIDs) > 0 {
			var hotels []models.Hotel
			if err := s.DB.Where("id IN ?", hotelIDs).Find(&hotels).Error; err != nil {
				return nil, fmt.Errorf("failed to resolve hotels: %w", err)
			}
			for _, h := range hotels {
				hotelsByID[h.ID] = h
			}
		}
	}

	out := make([]AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		entry := AdminBooking{
			ID:        b.ID,
			UserID:    b.UserID,
			RoomID:    b.RoomID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		}
		if room, ok := roomsByID[b.RoomID]; ok {
			summary := RoomSummary{
				ID:          room.ID,
				Name:        room.Name,
				Price:       room.Price,
				Capacity:    room.Capacity,
				WindowStart: room.WindowStart,
				WindowEnd:   room.WindowEnd,
			}
			if hotel, ok := hotelsByID[room.HotelID]; ok {
				summary.Hotel = &HotelSummary{
					ID:          hotel.ID,
					Name:        hotel.Name,
					Address:     hotel.Address,
					Description: hotel.Description,
				}
			}
			entry.Room = &summary
		}
		out = append(out, entry)
	}
	return out, nil
}
