package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	HotelID  uint    `json:"hotelId" gorm:"column:hotel_id;index"`
	Name     string  `json:"name" gorm:"size:255"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`

	// Optional availability window. Either bound may be set on its own; an
	// unset bound leaves that side unconstrained.
	WindowStart *time.Time `json:"windowStart,omitempty" gorm:"column:window_start"`
	WindowEnd   *time.Time `json:"windowEnd,omitempty" gorm:"column:window_end"`
}
