package models

import "time"

// Menu categories form a closed set; anything else is rejected at binding.
const (
	CategoryAppetizer  = "appetizer"
	CategoryMainCourse = "main-course"
	CategoryDessert    = "dessert"
	CategoryBeverage   = "beverage"
	CategorySnack      = "snack"
	CategorySpecial    = "special"
)

type MenuItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category        string    `gorm:"type:varchar(30);not null;default:'main-course'" json:"category"`
	Image           string    `gorm:"type:varchar(255)" json:"image"`
	Available       bool      `gorm:"not null;default:true" json:"available"`
	IsVeg           bool      `gorm:"not null;default:false" json:"is_veg"`
	PreparationTime int       `gorm:"not null;default:15" json:"preparation_time"` // minutes
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
