package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
	"github.com/flavourhaven/hotel-restaurant-app/services"
	"github.com/flavourhaven/hotel-restaurant-app/utils"
)

type RoomController struct {
	DB       *gorm.DB
	Bookings *services.BookingService
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Bookings: services.NewBookingService(db)}
}

// parseDate accepts plain dates ("2024-03-01") as well as RFC3339
// timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ---- Rooms CRUD ----

// GetAllRooms -> public listing, filterable by type, availability and
// room number search.
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	query := rc.DB.Model(&models.Room{})

	if roomType := c.Query("type"); roomType != "" {
		query = query.Where("type = ?", roomType)
	}
	if available := c.Query("available"); available != "" {
		query = query.Where("is_available = ?", available == "true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("room_number LIKE ?", "%"+search+"%")
	}

	var rooms []models.Room
	if err := query.Order("floor asc, room_number asc").Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room detail", room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req struct {
		RoomNumber    string   `json:"room_number" binding:"required"`
		Type          string   `json:"type" binding:"omitempty,oneof=standard deluxe suite premium-suite penthouse"`
		Floor         int      `json:"floor"`
		PricePerNight float64  `json:"price_per_night" binding:"required,gte=0"`
		Capacity      int      `json:"capacity"`
		Amenities     []string `json:"amenities"`
		Description   string   `json:"description"`
		Image         string   `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room := models.Room{
		RoomNumber:    req.RoomNumber,
		Type:          req.Type,
		Floor:         req.Floor,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		Description:   req.Description,
		IsAvailable:   true,
		Image:         req.Image,
	}
	if room.Type == "" {
		room.Type = models.RoomTypeStandard
	}
	if room.Floor == 0 {
		room.Floor = 1
	}
	if room.Capacity == 0 {
		room.Capacity = 2
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		RoomNumber    *string   `json:"room_number"`
		Type          *string   `json:"type" binding:"omitempty,oneof=standard deluxe suite premium-suite penthouse"`
		Floor         *int      `json:"floor"`
		PricePerNight *float64  `json:"price_per_night" binding:"omitempty,gte=0"`
		Capacity      *int      `json:"capacity"`
		Amenities     *[]string `json:"amenities"`
		Description   *string   `json:"description"`
		IsAvailable   *bool     `json:"is_available"`
		Image         *string   `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	if req.Image != nil {
		room.Image = *req.Image
	}

	if err := rc.DB.Save(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("room_id"))

	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := rc.DB.Delete(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{"room_id": id})
}

// ---- Bookings ----

// GetAllBookings -> staff listing, filterable by status and payment
// status.
func (rc *RoomController) GetAllBookings(c *gin.Context) {
	query := rc.DB.Preload("Room").Preload("Customer")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var bookings []models.RoomBooking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// GetMyBookings -> bookings belonging to the authenticated customer.
func (rc *RoomController) GetMyBookings(c *gin.Context) {
	userID := c.GetUint("user_id")

	var bookings []models.RoomBooking
	if err := rc.DB.Preload("Room").
		Where("customer_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My bookings", bookings)
}

// CreateBooking reserves a room for the authenticated customer.
func (rc *RoomController) CreateBooking(c *gin.Context) {
	var req struct {
		RoomID          uint   `json:"room_id" binding:"required"`
		CheckIn         string `json:"check_in" binding:"required"`
		CheckOut        string `json:"check_out" binding:"required"`
		Guests          int    `json:"guests"`
		SpecialRequests string `json:"special_requests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid check_in date"))
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid check_out date"))
		return
	}

	booking, err := rc.Bookings.CreateBooking(c.GetUint("user_id"), services.CreateBookingInput{
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

func (rc *RoomController) CheckIn(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	booking, err := rc.Bookings.CheckIn(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Guest checked in", booking)
}

func (rc *RoomController) CheckOut(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	var req struct {
		PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=cash card upi online"`
	}
	// Body is optional; method defaults to cash.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	booking, err := rc.Bookings.CheckOut(uint(id), req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Guest checked out", booking)
}

// CancelBooking is allowed for staff/admin, or for the customer who
// owns the booking.
func (rc *RoomController) CancelBooking(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("booking_id"))

	role := c.GetString("role")
	if role == models.RoleCustomer {
		var booking models.RoomBooking
		if err := rc.DB.First(&booking, id).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, services.ErrBookingNotFound)
			return
		}
		if booking.CustomerID != c.GetUint("user_id") {
			utils.RespondError(c, http.StatusForbidden, errors.New("access denied"))
			return
		}
	}

	booking, err := rc.Bookings.Cancel(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking cancelled", booking)
}
