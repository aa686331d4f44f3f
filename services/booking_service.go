package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/flavourhaven/hotel-restaurant-app/models"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	RoomID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

// activeStatuses are the booking states that occupy a room for the
// purposes of the overlap check.
var activeStatuses = []string{models.BookingStatusBooked, models.BookingStatusCheckedIn}

// CreateBooking reserves a room for a customer. The overlap test is
// half-open: a booking checking out on the day another checks in does
// not conflict. The whole read-validate-write sequence runs in one
// transaction so two racing requests cannot both pass the check.
func (s *BookingService) CreateBooking(customerID uint, in CreateBookingInput) (*models.RoomBooking, error) {
	var booking models.RoomBooking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRoomNotFound
			}
			return err
		}
		if !room.IsAvailable {
			return ErrRoomUnavailable
		}

		var overlapping int64
		if err := tx.Model(&models.RoomBooking{}).
			Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
				room.ID, activeStatuses, in.CheckOut, in.CheckIn).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrBookingOverlap
		}

		nights := ComputeNights(in.CheckIn, in.CheckOut)
		guests := in.Guests
		if guests < 1 {
			guests = 1
		}

		booking = models.RoomBooking{
			RoomID:          room.ID,
			CustomerID:      customerID,
			RoomNumber:      room.RoomNumber,
			CheckIn:         in.CheckIn,
			CheckOut:        in.CheckOut,
			Guests:          guests,
			TotalNights:     nights,
			TotalAmount:     float64(nights) * room.PricePerNight,
			Status:          models.BookingStatusBooked,
			PaymentStatus:   models.PaymentStatusPending,
			SpecialRequests: in.SpecialRequests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ComputeNights rounds the stay up to whole nights and floors the
// result at 1, so a same-day checkout is still billed as one night.
func ComputeNights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// CheckIn moves a booking from booked to checked-in and marks the room
// occupied.
func (s *BookingService) CheckIn(bookingID uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusBooked {
			return ErrNotBooked
		}

		now := time.Now()
		booking.Status = models.BookingStatusCheckedIn
		booking.CheckedInAt = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("is_available", false).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckOut completes a stay: the booking is settled (payment method
// defaults to cash) and the room is released.
func (s *BookingService) CheckOut(bookingID uint, paymentMethod string) (*models.RoomBooking, error) {
	var booking models.RoomBooking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusCheckedIn {
			return ErrNotCheckedIn
		}

		if paymentMethod == "" {
			paymentMethod = models.PaymentMethodCash
		}
		now := time.Now()
		booking.Status = models.BookingStatusCheckedOut
		booking.CheckedOutAt = &now
		booking.PaymentStatus = models.PaymentStatusPaid
		booking.PaymentMethod = paymentMethod
		booking.PaidAt = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("is_available", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel aborts a booking that has not completed. A paid booking is
// demoted to refunded; the room is freed either way.
func (s *BookingService) Cancel(bookingID uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.Status == models.BookingStatusCheckedOut {
			return ErrBookingCompleted
		}

		booking.Status = models.BookingStatusCancelled
		if booking.PaymentStatus == models.PaymentStatusPaid {
			booking.PaymentStatus = models.PaymentStatusRefunded
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("is_available", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
