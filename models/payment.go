package models

import "time"

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodUPI    = "upi"
	PaymentMethodOnline = "online"

	PaymentStatusPaid     = "paid"
	PaymentStatusPending  = "pending"
	PaymentStatusRefunded = "refunded"
)

// Payment records a settled order. Amount is always copied from the
// order total at creation, never taken from the request.
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       uint       `gorm:"not null;index" json:"order_id"`
	Order         Order      `gorm:"foreignKey:OrderID" json:"order"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method        string     `gorm:"type:varchar(20);not null;default:'cash'" json:"method"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID string     `gorm:"type:varchar(64)" json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
