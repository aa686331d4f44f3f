package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderLine struct {
	MenuItemID uint
	Name       string
	Quantity   int
	Price      float64
}

type CreateOrderInput struct {
	Items               []OrderLine
	TableNumber         *int
	SpecialInstructions string
}

// orderTransitions is the allowed-transition table: forward-only along
// pending -> confirmed -> preparing -> ready -> delivered, and any
// non-terminal status may be cancelled. Settle is the one transition
// that bypasses this table.
var orderTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusConfirmed, models.OrderStatusCancelled},
	models.OrderStatusConfirmed: {models.OrderStatusPreparing, models.OrderStatusCancelled},
	models.OrderStatusPreparing: {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:     {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to
// another under the explicit lifecycle table.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateOrder stores a new pending order. The total is computed
// server-side from the submitted line items, which carry the price
// snapshot taken by the caller.
func (s *OrderService) CreateOrder(customerID uint, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		total += float64(line.Quantity) * line.Price
		items = append(items, models.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	order := models.Order{
		CustomerID:          customerID,
		Items:               items,
		Total:               total,
		Status:              models.OrderStatusPending,
		TableNumber:         in.TableNumber,
		SpecialInstructions: in.SpecialInstructions,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus applies an explicit status change after checking the
// transition table.
func (s *OrderService) UpdateStatus(orderID uint, target string) (*models.Order, error) {
	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrOrderNotFound
			}
			return err
		}
		if !CanTransition(order.Status, target) {
			return ErrInvalidTransition
		}
		order.Status = target
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Settle records a payment against an order. The amount is always the
// order's stored total, and the order is forced to delivered no matter
// what state it was in before.
func (s *OrderService) Settle(orderID uint, method, transactionID string) (*models.Payment, error) {
	var payment models.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrOrderNotFound
			}
			return err
		}

		if method == "" {
			method = models.PaymentMethodCash
		}
		if transactionID == "" {
			transactionID = uuid.NewString()
		}
		now := time.Now()
		payment = models.Payment{
			OrderID:       order.ID,
			Amount:        order.Total,
			Method:        method,
			Status:        models.PaymentStatusPaid,
			TransactionID: transactionID,
			PaidAt:        &now,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		order.Status = models.OrderStatusDelivered
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
