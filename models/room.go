package models

import "time"

const (
	RoomTypeStandard     = "standard"
	RoomTypeDeluxe       = "deluxe"
	RoomTypeSuite        = "suite"
	RoomTypePremiumSuite = "premium-suite"
	RoomTypePenthouse    = "penthouse"
)

// Room.IsAvailable is a stored flag maintained by the booking lifecycle:
// check-in clears it, check-out and cancel restore it. Booking creation
// alone does not touch it.
type Room struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RoomNumber    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"room_number"`
	Type          string    `gorm:"type:varchar(30);not null;default:'standard'" json:"type"`
	Floor         int       `gorm:"not null;default:1" json:"floor"`
	PricePerNight float64   `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Capacity      int       `gorm:"not null;default:2" json:"capacity"`
	Amenities     []string  `gorm:"serializer:json" json:"amenities"`
	Description   string    `gorm:"type:text" json:"description"`
	IsAvailable   bool      `gorm:"not null;default:true" json:"is_available"`
	Image         string    `gorm:"type:varchar(255)" json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
