package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomsByDateRange(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")

	free := seedRoom(t, db, hotel.ID, "free", nil, nil)
	booked := seedRoom(t, db, hotel.ID, "booked", nil, nil)
	backToBack := seedRoom(t, db, hotel.ID, "back-to-back", nil, nil)
	narrowWindow := seedRoom(t, db, hotel.ID, "narrow-window",
		datePtr(t, "2025-01-10"), datePtr(t, "2025-01-20"))
	wideWindow := seedRoom(t, db, hotel.ID, "wide-window",
		datePtr(t, "2025-01-01"), datePtr(t, "2025-12-31"))

	bookingSvc := NewBookingService(db)
	_, err := bookingSvc.Book("U1", booked.ID, date(t, "2025-02-03"), date(t, "2025-02-07"))
	require.NoError(t, err)
	// Ends exactly at the query start: does not overlap.
	_, err = bookingSvc.Book("U1", backToBack.ID, date(t, "2025-01-28"), date(t, "2025-02-01"))
	require.NoError(t, err)

	svc := NewClientService(db)
	rooms, err := svc.RoomsByDateRange(date(t, "2025-02-01"), date(t, "2025-02-05"))
	require.NoError(t, err)

	got := map[uint]bool{}
	for _, r := range rooms {
		got[r.ID] = true
	}
	require.True(t, got[free.ID])
	require.False(t, got[booked.ID], "room with overlapping booking must be excluded")
	require.True(t, got[backToBack.ID])
	require.False(t, got[narrowWindow.ID], "room whose window does not contain the range must be excluded")
	require.True(t, got[wideWindow.ID])

	rooms, err = svc.RoomsByDateRange(date(t, "2025-06-01"), date(t, "2025-06-05"))
	require.NoError(t, err)
	got = map[uint]bool{}
	for _, r := range rooms {
		got[r.ID] = true
	}
	require.True(t, got[wideWindow.ID])
	require.False(t, got[narrowWindow.ID])
}

func TestRoomByCity(t *testing.T) {
	db := newTestDB(t)
	odesa := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	seedHotel(t, db, "Alpine", "4 Summit Way, Innsbruck")
	room := seedRoom(t, db, odesa.ID, "101", nil, nil)

	svc := NewClientService(db)

	found, err := svc.RoomByCity("odesa")
	require.NoError(t, err)
	require.Equal(t, room.ID, found.ID)

	found, err = svc.RoomByCity("ODESA")
	require.NoError(t, err)
	require.Equal(t, room.ID, found.ID)

	_, err = svc.RoomByCity("Lisbon")
	require.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.RoomByCity("   ")
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestHotelsIncludeRooms(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Seaside", "12 Harbour Rd, Odesa")
	seedRoom(t, db, hotel.ID, "101", nil, nil)
	seedRoom(t, db, hotel.ID, "102", nil, nil)

	svc := NewClientService(db)
	hotels, err := svc.Hotels()
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	require.Len(t, hotels[0].Rooms, 2)
}
