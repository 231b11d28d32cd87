package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model

	Name        string `json:"name" gorm:"size:255"`
	Address     string `json:"address" gorm:"size:255;index"`
	Description string `json:"description" gorm:"type:text"`

	// Free-form amenity metadata supplied by the admin UI, stored as-is.
	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}
