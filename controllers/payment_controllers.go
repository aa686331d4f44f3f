package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
	"github.com/flavourhaven/hotel-restaurant-app/services"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

type PaymentController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Orders: services.NewOrderService(db)}
}

// GetAllPayments -> admin listing, filterable by status and method.
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	query := pc.DB.Preload("Order").Preload("Order.Customer")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if method := c.Query("method"); method != "" {
		query = query.Where("method = ?", method)
	}

	var payments []models.Payment
	if err := query.Order("created_at desc").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

// CreatePayment settles an order: the amount comes from the stored
// order total and the order is forced to delivered.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID       uint   `json:"order_id" binding:"required"`
		Method        string `json:"method" binding:"omitempty,oneof=cash card upi online"`
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Orders.Settle(req.OrderID, req.Method, req.TransactionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Payment recorded for order #%d (%s)", payment.OrderID, payment.Method)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// GetInvoicePDF streams the printable invoice for a payment.
func (pc *PaymentController) GetInvoicePDF(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("payment_id"))

	var payment models.Payment
	if err := pc.DB.Preload("Order").
		Preload("Order.Items").
		Preload("Order.Customer").
		First(&payment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename="+utils.InvoiceFilename(payment.ID))
	if err := utils.WriteInvoicePDF(c.Writer, &payment); err != nil {
		utils.ErrorLogger.Printf("Failed to render invoice for payment %d: %v", payment.ID, err)
	}
}
