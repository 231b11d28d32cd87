package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking references its room and user by id only. The room (and its hotel)
// are resolved with explicit lookups at the API boundary, never held as
// mutually-owning pointers.
type Booking struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	UserID    string    `json:"userId" gorm:"column:user_id;size:64;index"`
	RoomID    uint      `json:"roomId" gorm:"column:room_id;index"`
	StartDate time.Time `json:"startDate" gorm:"column:start_date;index"`
	EndDate   time.Time `json:"endDate" gorm:"column:end_date;index"`
}
