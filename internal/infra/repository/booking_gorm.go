package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = true", serviceID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = true").
		Order(`"order" ASC, name ASC`).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListActiveCategories(
	ctx context.Context,
) ([]models.Category, error) {

	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order(`"order" ASC, name ASC`).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// --------------------------------------------------
// Address
// --------------------------------------------------

func (r *BookingGormRepository) GetAddressForCustomer(
	ctx context.Context,
	addressID uint,
	customerID uint,
) (*models.Address, error) {

	var addr models.Address
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", addressID, customerID).
		First(&addr).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *BookingGormRepository) CreateAddress(
	ctx context.Context,
	addr *models.Address,
) error {
	return r.db.WithContext(ctx).Create(addr).Error
}

func (r *BookingGormRepository) ListAddressesForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Address, error) {

	var addrs []models.Address
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_default DESC, created_at DESC").
		Find(&addrs).Error; err != nil {
		return nil, err
	}
	return addrs, nil
}

// --------------------------------------------------
// Coupon
// --------------------------------------------------

func (r *BookingGormRepository) GetCouponByCode(
	ctx context.Context,
	code string,
) (*models.Coupon, error) {

	var c models.Coupon
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *BookingGormRepository) GetCouponByID(
	ctx context.Context,
	id uint,
) (*models.Coupon, error) {

	var c models.Coupon
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementCouponUsage counts one application. The guard in the WHERE
// keeps concurrent submissions from pushing used_count past usage_limit;
// losing the race surfaces as usage_limit_reached.
func (r *BookingGormRepository) IncrementCouponUsage(
	ctx context.Context,
	couponID uint,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Coupon{}).
		Where(
			"id = ? AND (usage_limit IS NULL OR used_count < usage_limit)",
			couponID,
		).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("usage_limit_reached")
	}
	return nil
}

// --------------------------------------------------
// Admin slots
// --------------------------------------------------

func (r *BookingGormRepository) ListOpenSlots(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]models.AdminSlot, error) {

	var slots []models.AdminSlot
	if err := r.db.WithContext(ctx).
		Preload("Staff").
		Where(
			"service_id = ? AND date = ? AND is_available = true AND current_bookings < max_bookings",
			serviceID, date,
		).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) ReserveSlot(
	ctx context.Context,
	slotID uint,
) (*models.AdminSlot, error) {

	var reserved models.AdminSlot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.AdminSlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, slotID).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		if !slot.HasCapacity() {
			return httperr.ErrBusiness("slot_full")
		}

		slot.CurrentBookings++
		if err := tx.Save(&slot).Error; err != nil {
			return err
		}

		reserved = slot
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &reserved, nil
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	slotID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot models.AdminSlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, slotID).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		if slot.CurrentBookings > 0 {
			slot.CurrentBookings--
		}
		return tx.Save(&slot).Error
	})
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingForCustomer(
	ctx context.Context,
	bookingID uint,
	customerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Address").
		Preload("Staff").
		Preload("Coupon").
		Where("id = ? AND customer_id = ?", bookingID, customerID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Address").
		Preload("Staff").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
	status string,
	date string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Address").
		Where("customer_id = ?", customerID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if date != "" {
		q = q.Where("booking_date = ?", date)
	}

	var bookings []models.Booking
	if err := q.
		Order("booking_date DESC, booking_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Reschedule history
// --------------------------------------------------

func (r *BookingGormRepository) CreateRescheduleHistory(
	ctx context.Context,
	h *models.BookingRescheduleHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *BookingGormRepository) ListRescheduleHistory(
	ctx context.Context,
	bookingID uint,
) ([]models.BookingRescheduleHistory, error) {

	var history []models.BookingRescheduleHistory
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsDueReminder(
	ctx context.Context,
	fromDate string,
	toDate string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"status IN ? AND reminder_sent = false AND booking_date >= ? AND booking_date <= ?",
			domain.ActiveStatuses, fromDate, toDate,
		).
		Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) MarkReminderSent(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		UpdateColumn("reminder_sent", true).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
