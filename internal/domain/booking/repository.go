package booking

import (
	"context"

	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

type Repository interface {
	// -------- Customer --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// -------- Catalog --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)

	ListActiveCategories(
		ctx context.Context,
	) ([]models.Category, error)

	// -------- Address --------
	GetAddressForCustomer(
		ctx context.Context,
		addressID uint,
		customerID uint,
	) (*models.Address, error)

	CreateAddress(
		ctx context.Context,
		addr *models.Address,
	) error

	ListAddressesForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Address, error)

	// -------- Coupon --------
	GetCouponByCode(
		ctx context.Context,
		code string,
	) (*models.Coupon, error)

	GetCouponByID(
		ctx context.Context,
		id uint,
	) (*models.Coupon, error)

	IncrementCouponUsage(
		ctx context.Context,
		couponID uint,
	) error

	// -------- Admin slots --------
	ListOpenSlots(
		ctx context.Context,
		serviceID uint,
		date string,
	) ([]models.AdminSlot, error)

	// ReserveSlot atomically checks capacity and bumps current_bookings.
	ReserveSlot(
		ctx context.Context,
		slotID uint,
	) (*models.AdminSlot, error)

	ReleaseSlot(
		ctx context.Context,
		slotID uint,
	) error

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingForCustomer(
		ctx context.Context,
		bookingID uint,
		customerID uint,
	) (*models.Booking, error)

	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
		status string,
		date string,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Reschedule history --------
	CreateRescheduleHistory(
		ctx context.Context,
		h *models.BookingRescheduleHistory,
	) error

	ListRescheduleHistory(
		ctx context.Context,
		bookingID uint,
	) ([]models.BookingRescheduleHistory, error)

	// -------- Reminders --------
	ListBookingsDueReminder(
		ctx context.Context,
		fromDate string,
		toDate string,
	) ([]models.Booking, error)

	MarkReminderSent(
		ctx context.Context,
		bookingID uint,
	) error
}
