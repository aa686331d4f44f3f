package models

import "time"

const (
	BookingStatusBooked     = "booked"
	BookingStatusCheckedIn  = "checked-in"
	BookingStatusCheckedOut = "checked-out"
	BookingStatusCancelled  = "cancelled"
)

type RoomBooking struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	RoomID          uint       `gorm:"not null;index" json:"room_id"`
	Room            Room       `gorm:"foreignKey:RoomID" json:"room"`
	CustomerID      uint       `gorm:"not null;index" json:"customer_id"`
	Customer        User       `gorm:"foreignKey:CustomerID" json:"customer"`
	RoomNumber      string     `gorm:"type:varchar(20);not null" json:"room_number"`
	CheckIn         time.Time  `gorm:"not null" json:"check_in"`
	CheckOut        time.Time  `gorm:"not null" json:"check_out"`
	Guests          int        `gorm:"not null;default:1" json:"guests"`
	TotalNights     int        `gorm:"not null" json:"total_nights"`
	TotalAmount     float64    `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status          string     `gorm:"type:varchar(20);not null;default:'booked'" json:"status"`
	PaymentStatus   string     `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentMethod   string     `gorm:"type:varchar(20)" json:"payment_method"`
	SpecialRequests string     `gorm:"type:text" json:"special_requests"`
	CheckedInAt     *time.Time `json:"checked_in_at"`
	CheckedOutAt    *time.Time `json:"checked_out_at"`
	PaidAt          *time.Time `json:"paid_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
