package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UnitKg      = "kg"
	UnitLitre   = "litre"
	UnitPieces  = "pieces"
	UnitPackets = "packets"
	UnitDozen   = "dozen"
)

type InventoryItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ItemName      string    `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	Unit          string    `gorm:"type:varchar(20);not null;default:'kg'" json:"unit"`
	ReorderLevel  float64   `gorm:"not null;default:10" json:"reorder_level"`
	LowStock      bool      `gorm:"-" json:"is_low_stock"`
	CostPerUnit   float64   `gorm:"type:decimal(10,2);default:0" json:"cost_per_unit"`
	Supplier      string    `gorm:"type:varchar(255)" json:"supplier"`
	LastRestocked time.Time `json:"last_restocked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsLowStock reports whether the item is at or below its reorder level.
// The low_stock list filter applies the same predicate in SQL.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// AfterFind fills the derived low-stock flag on every loaded row.
func (i *InventoryItem) AfterFind(*gorm.DB) error {
	i.LowStock = i.IsLowStock()
	return nil
}

// AfterSave recomputes the flag so create/update responses carry it too.
func (i *InventoryItem) AfterSave(*gorm.DB) error {
	i.LowStock = i.IsLowStock()
	return nil
}
