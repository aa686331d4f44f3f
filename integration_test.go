package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
	"github.com/flavourhaven/hotel-restaurant-app/router"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	autoMigrate(db)

	return router.SetupRouter(db), db
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func registerUser(t *testing.T, r *gin.Engine, name, email, role string) string {
	t.Helper()
	w, env := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s failed: %d %s", email, w.Code, w.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	json.Unmarshal(env.Data, &data)
	return data.Token
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupTestServer(t)

	w, _ := doJSON(r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "OK")
}

func TestAuthFlow(t *testing.T) {
	r, _ := setupTestServer(t)

	token := registerUser(t, r, "Asha", "asha@example.com", "")

	// Duplicate registration is rejected.
	w, _ := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", env.Message)

	w, _ = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = doJSON(r, http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var profile models.User
	json.Unmarshal(env.Data, &profile)
	assert.Equal(t, "asha@example.com", profile.Email)
	assert.Equal(t, models.RoleCustomer, profile.Role)

	w, _ = doJSON(r, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRolePermissions(t *testing.T) {
	r, _ := setupTestServer(t)

	customer := registerUser(t, r, "Guest", "guest@example.com", "customer")
	staff := registerUser(t, r, "Waiter", "waiter@example.com", "staff")

	// Customers cannot write menu items.
	w, _ := doJSON(r, http.MethodPost, "/api/menu", customer, gin.H{
		"name": "Samosa", "price": 40, "category": "snack",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Staff cannot manage users or write menu either.
	w, _ = doJSON(r, http.MethodGet, "/api/users", staff, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(r, http.MethodPost, "/api/menu", staff, gin.H{
		"name": "Samosa", "price": 40, "category": "snack",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Staff cannot place orders; that is the customer surface.
	w, _ = doJSON(r, http.MethodPost, "/api/orders", staff, gin.H{
		"items": []gin.H{{"menu_item_id": 1, "name": "Samosa", "quantity": 1, "price": 40}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrderAndPaymentFlow(t *testing.T) {
	r, _ := setupTestServer(t)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")
	customer := registerUser(t, r, "Guest", "guest@example.com", "customer")

	w, env := doJSON(r, http.MethodPost, "/api/menu", admin, gin.H{
		"name":     "Masala Dosa",
		"price":    150.0,
		"category": "main-course",
		"is_veg":   true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var item models.MenuItem
	json.Unmarshal(env.Data, &item)

	w, env = doJSON(r, http.MethodPost, "/api/orders", customer, gin.H{
		"items": []gin.H{
			{"menu_item_id": item.ID, "name": item.Name, "quantity": 2, "price": item.Price},
		},
		"special_instructions": "extra chutney",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	json.Unmarshal(env.Data, &order)
	assert.Equal(t, 300.0, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// Illegal jump pending -> ready is rejected.
	w, _ = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", order.ID), admin, gin.H{
		"status": "ready",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", order.ID), admin, gin.H{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Settling records the payment from the stored total and forces the
	// order to delivered regardless of its current status.
	w, env = doJSON(r, http.MethodPost, "/api/payments", admin, gin.H{
		"order_id": order.ID,
		"method":   "card",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var payment models.Payment
	json.Unmarshal(env.Data, &payment)
	assert.Equal(t, 300.0, payment.Amount)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	assert.NotEmpty(t, payment.TransactionID)

	w, env = doJSON(r, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var settled models.Order
	json.Unmarshal(env.Data, &settled)
	assert.Equal(t, models.OrderStatusDelivered, settled.Status)

	// The invoice is served as a PDF attachment.
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/payments/%d/pdf", payment.ID), nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestBookingFlow(t *testing.T) {
	r, db := setupTestServer(t)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")
	customer := registerUser(t, r, "Guest", "guest@example.com", "customer")

	w, env := doJSON(r, http.MethodPost, "/api/rooms", admin, gin.H{
		"room_number":     "204",
		"type":            "deluxe",
		"floor":           2,
		"price_per_night": 1500.0,
		"capacity":        2,
		"amenities":       []string{"wifi", "ac"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var room models.Room
	json.Unmarshal(env.Data, &room)

	w, env = doJSON(r, http.MethodPost, "/api/rooms/bookings", customer, gin.H{
		"room_id":   room.ID,
		"check_in":  "2024-03-01",
		"check_out": "2024-03-03",
		"guests":    2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var booking models.RoomBooking
	json.Unmarshal(env.Data, &booking)
	assert.Equal(t, 2, booking.TotalNights)
	assert.Equal(t, 3000.0, booking.TotalAmount)
	assert.Equal(t, models.BookingStatusBooked, booking.Status)

	// Overlapping range on the same room is rejected.
	w, _ = doJSON(r, http.MethodPost, "/api/rooms/bookings", customer, gin.H{
		"room_id":   room.ID,
		"check_in":  "2024-03-02",
		"check_out": "2024-03-04",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Customers cannot run desk transitions.
	w, _ = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/rooms/bookings/%d/checkin", booking.ID), customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/rooms/bookings/%d/checkin", booking.ID), admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.Room
	db.First(&fresh, room.ID)
	assert.False(t, fresh.IsAvailable)

	w, env = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/rooms/bookings/%d/checkout", booking.ID), admin, gin.H{
		"payment_method": "card",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var done models.RoomBooking
	json.Unmarshal(env.Data, &done)
	assert.Equal(t, models.BookingStatusCheckedOut, done.Status)
	assert.Equal(t, models.PaymentStatusPaid, done.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCard, done.PaymentMethod)

	db.First(&fresh, room.ID)
	assert.True(t, fresh.IsAvailable)

	w, env = doJSON(r, http.MethodGet, "/api/rooms/bookings/my", customer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var mine []models.RoomBooking
	json.Unmarshal(env.Data, &mine)
	assert.Len(t, mine, 1)
}

func TestBookingCancelOwnership(t *testing.T) {
	r, _ := setupTestServer(t)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")
	owner := registerUser(t, r, "Owner", "owner@example.com", "customer")
	other := registerUser(t, r, "Other", "other@example.com", "customer")

	w, env := doJSON(r, http.MethodPost, "/api/rooms", admin, gin.H{
		"room_number": "301", "price_per_night": 2000.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var room models.Room
	json.Unmarshal(env.Data, &room)

	w, env = doJSON(r, http.MethodPost, "/api/rooms/bookings", owner, gin.H{
		"room_id":   room.ID,
		"check_in":  "2024-05-01",
		"check_out": "2024-05-02",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var booking models.RoomBooking
	json.Unmarshal(env.Data, &booking)

	// A different customer may not cancel someone else's booking.
	w, _ = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/rooms/bookings/%d/cancel", booking.ID), other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/rooms/bookings/%d/cancel", booking.ID), owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cancelled models.RoomBooking
	json.Unmarshal(env.Data, &cancelled)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestInventoryLowStockFilter(t *testing.T) {
	r, _ := setupTestServer(t)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")

	w, _ := doJSON(r, http.MethodPost, "/api/inventory", admin, gin.H{
		"item_name": "Basmati Rice", "quantity": 50.0, "unit": "kg", "reorder_level": 10.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	w, _ = doJSON(r, http.MethodPost, "/api/inventory", admin, gin.H{
		"item_name": "Paneer", "quantity": 10.0, "unit": "kg", "reorder_level": 10.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// At the reorder level counts as low.
	w, env := doJSON(r, http.MethodGet, "/api/inventory?low_stock=true", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var items []models.InventoryItem
	json.Unmarshal(env.Data, &items)
	assert.Len(t, items, 1)
	assert.Equal(t, "Paneer", items[0].ItemName)
	assert.True(t, items[0].LowStock)

	// The full listing carries the derived flag per row.
	w, env = doJSON(r, http.MethodGet, "/api/inventory", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(env.Data, &items)
	assert.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, item.Quantity <= item.ReorderLevel, item.LowStock, item.ItemName)
	}
}

func TestInventoryRestockStamp(t *testing.T) {
	r, db := setupTestServer(t)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")

	w, env := doJSON(r, http.MethodPost, "/api/inventory", admin, gin.H{
		"item_name": "Tomatoes", "quantity": 50.0, "unit": "kg",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var item models.InventoryItem
	json.Unmarshal(env.Data, &item)

	stale := time.Now().Add(-48 * time.Hour)
	db.Model(&models.InventoryItem{}).Where("id = ?", item.ID).
		Update("last_restocked", stale)

	// A quantity decrease is still a stock movement and refreshes the
	// stamp.
	w, env = doJSON(r, http.MethodPut, fmt.Sprintf("/api/inventory/%d", item.ID), admin, gin.H{
		"quantity": 20.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.InventoryItem
	json.Unmarshal(env.Data, &updated)
	assert.Equal(t, 20.0, updated.Quantity)
	assert.WithinDuration(t, time.Now(), updated.LastRestocked, time.Minute)

	db.Model(&models.InventoryItem{}).Where("id = ?", item.ID).
		Update("last_restocked", stale)

	// Edits that do not touch quantity leave the stamp alone.
	w, env = doJSON(r, http.MethodPut, fmt.Sprintf("/api/inventory/%d", item.ID), admin, gin.H{
		"supplier": "Fresh Farms",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(env.Data, &updated)
	assert.Equal(t, "Fresh Farms", updated.Supplier)
	assert.WithinDuration(t, stale, updated.LastRestocked, time.Minute)
}

func TestGlobalRateLimit(t *testing.T) {
	r, _ := setupTestServer(t)

	for i := 0; i < 50; i++ {
		w, _ := doJSON(r, http.MethodGet, "/api/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w, _ := doJSON(r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAnalyticsDashboard(t *testing.T) {
	r, _ := setupTestServer(t)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")
	customer := registerUser(t, r, "Guest", "guest@example.com", "customer")

	w, env := doJSON(r, http.MethodPost, "/api/menu", admin, gin.H{
		"name": "Thali", "price": 250.0, "category": "main-course",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var item models.MenuItem
	json.Unmarshal(env.Data, &item)

	w, env = doJSON(r, http.MethodPost, "/api/orders", customer, gin.H{
		"items": []gin.H{{"menu_item_id": item.ID, "name": item.Name, "quantity": 2, "price": item.Price}},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	json.Unmarshal(env.Data, &order)

	w, _ = doJSON(r, http.MethodPost, "/api/payments", admin, gin.H{"order_id": order.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Customers cannot read analytics.
	w, _ = doJSON(r, http.MethodGet, "/api/analytics/dashboard", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doJSON(r, http.MethodGet, "/api/analytics/dashboard", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalOrders    int64   `json:"total_orders"`
		TotalCustomers int64   `json:"total_customers"`
		TotalRevenue   float64 `json:"total_revenue"`
	}
	json.Unmarshal(env.Data, &stats)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, 500.0, stats.TotalRevenue)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/revenue-chart", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
