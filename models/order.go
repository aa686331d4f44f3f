package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	CustomerID          uint        `gorm:"not null;index" json:"customer_id"`
	Customer            User        `gorm:"foreignKey:CustomerID" json:"customer"`
	Items               []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total               float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status              string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TableNumber         *int        `json:"table_number,omitempty"`
	SpecialInstructions string      `gorm:"type:text" json:"special_instructions"`
	CreatedAt           time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"not null" json:"updated_at"`
}
