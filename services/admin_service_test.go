package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookingStatsAggregates(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	room := seedRoom(t, db, hotel.ID, "101", nil, nil)
	bookingSvc := NewBookingService(db)
	svc := NewAdminService(db)

	_, err := bookingSvc.Book("U1", room.ID, date(t, "2025-01-05"), date(t, "2025-01-10"))
	require.NoError(t, err)
	_, err = bookingSvc.Book("U2", room.ID, date(t, "2025-01-20"), date(t, "2025-01-25"))
	require.NoError(t, err)

	stats, err := svc.BookingStats(date(t, "2025-01-01"), date(t, "2025-01-31"))
	require.NoError(t, err)

	require.Equal(t, 2, stats.TotalBookings)
	require.Equal(t, 1, stats.DistinctRooms)
	require.Equal(t, 2, stats.DistinctUsers)
	require.Equal(t, 10, stats.TotalRoomNights)
	require.Equal(t, date(t, "2025-01-01"), stats.StartDate)
	require.Equal(t, date(t, "2025-01-31"), stats.EndDate)
}

func TestBookingStatsClipsToWindow(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	room := seedRoom(t, db, hotel.ID, "101", nil, nil)
	bookingSvc := NewBookingService(db)
	svc := NewAdminService(db)

	// Six nights booked, but only the two inside the window count.
	_, err := bookingSvc.Book("U1", room.ID, date(t, "2024-12-28"), date(t, "2025-01-03"))
	require.NoError(t, err)

	stats, err := svc.BookingStats(date(t, "2025-01-01"), date(t, "2025-01-31"))
	require.NoError(t, err)

	require.Equal(t, 1, stats.TotalBookings)
	require.Equal(t, 2, stats.TotalRoomNights)
}

func TestBookingStatsExcludesNonOverlapping(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	room := seedRoom(t, db, hotel.ID, "101", nil, nil)
	bookingSvc := NewBookingService(db)
	svc := NewAdminService(db)

	_, err := bookingSvc.Book("U1", room.ID, date(t, "2024-11-01"), date(t, "2024-11-05"))
	require.NoError(t, err)
	// Ends exactly where the window starts: half-open, not counted.
	_, err = bookingSvc.Book("U1", room.ID, date(t, "2024-12-28"), date(t, "2025-01-01"))
	require.NoError(t, err)

	stats, err := svc.BookingStats(date(t, "2025-01-01"), date(t, "2025-01-31"))
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalBookings)
	require.Equal(t, 0, stats.DistinctRooms)
	require.Equal(t, 0, stats.DistinctUsers)
	require.Equal(t, 0, stats.TotalRoomNights)
}

func TestBookingStatsInvalidRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.BookingStats(date(t, "2025-01-31"), date(t, "2025-01-01"))
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.BookingStats(date(t, "2025-01-01"), date(t, "2025-01-01"))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestBookingStatsSkipsEmptyUserID(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	room := seedRoom(t, db, hotel.ID, "101", nil, nil)
	bookingSvc := NewBookingService(db)
	svc := NewAdminService(db)

	_, err := bookingSvc.Book("", room.ID, date(t, "2025-01-05"), date(t, "2025-01-08"))
	require.NoError(t, err)
	_, err = bookingSvc.Book("U1", room.ID, date(t, "2025-01-10"), date(t, "2025-01-12"))
	require.NoError(t, err)

	stats, err := svc.BookingStats(date(t, "2025-01-01"), date(t, "2025-01-31"))
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalBookings)
	require.Equal(t, 1, stats.DistinctUsers)
}

func TestAllBookingsFlattensRoomAndHotel(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	room := seedRoom(t, db, hotel.ID, "101", nil, nil)
	bookingSvc := NewBookingService(db)
	svc := NewAdminService(db)

	created, err := bookingSvc.Book("U1", room.ID, date(t, "2025-01-05"), date(t, "2025-01-10"))
	require.NoError(t, err)

	bookings, err := svc.AllBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	got := bookings[0]
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "U1", got.UserID)
	require.NotNil(t, got.Room)
	require.Equal(t, "101", got.Room.Name)
	require.NotNil(t, got.Room.Hotel)
	require.Equal(t, "Seaside", got.Room.Hotel.Name)
}
