package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vlad3958/HotelBooking/models"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps the
// database alive across the connections gorm pools.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	))
	return db
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := date(t, value)
	return &parsed
}

func seedHotel(t *testing.T, db *gorm.DB, name, address string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name, Address: address, Description: name + " description"}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID uint, name string, windowStart, windowEnd *time.Time) models.Room {
	t.Helper()
	room := models.Room{
		HotelID:     hotelID,
		Name:        name,
		Price:       120,
		Capacity:    2,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}
