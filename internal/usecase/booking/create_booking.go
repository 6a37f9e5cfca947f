package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/audit"
	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	couponDomain "github.com/GlamourSalonSA/salon-booking/internal/domain/coupon"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
	"github.com/GlamourSalonSA/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type NewAddressInput struct {
	Title     string
	Address   string
	Latitude  *float64
	Longitude *float64
	IsDefault bool
}

type CreateBookingInput struct {
	CustomerID uint
	ServiceID  uint
	StaffID    *uint

	// Exactly one of AddressID / NewAddress must be set. A NewAddress is
	// created for the customer before the booking row.
	AddressID  *uint
	NewAddress *NewAddressInput

	Date string // YYYY-MM-DD
	Time string // HH:MM

	PaymentMethod   string
	SpecialRequests string

	// Base price as quoted to the customer; zero means "use the service's
	// current price".
	Price    float64
	CouponID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

// Execute validates the assembled draft one final time, resolves the
// address, recomputes the coupon discount server-side, and commits the
// booking. Side effects (slot reservation, emails) are not run here; the
// booking is committed once this returns.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Customer
	// --------------------------------------------------
	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	// --------------------------------------------------
	// 2. Service
	// --------------------------------------------------
	if in.ServiceID == 0 {
		return nil, httperr.ErrBusiness("service_required")
	}
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 3. Date / time in the salon timezone
	// --------------------------------------------------
	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("date_time_required")
	}
	if _, err := timezone.ParseDateTime(in.Date, in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 4. Payment method
	// --------------------------------------------------
	if in.PaymentMethod == "" {
		return nil, httperr.ErrBusiness("payment_method_required")
	}
	if !domain.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	// --------------------------------------------------
	// 5. Address (existing or created now)
	// --------------------------------------------------
	addressID, err := uc.resolveAddress(ctx, customer.ID, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Price + coupon
	// --------------------------------------------------
	price := in.Price
	if price <= 0 {
		price = service.Price
	}

	var discount float64
	if in.CouponID != nil {
		c, err := uc.repo.GetCouponByID(ctx, *in.CouponID)
		if err != nil {
			return nil, httperr.ErrBusiness("coupon_not_found")
		}

		// The wire payload carries the base price and the coupon id; the
		// discount is recomputed here so the stored row is always
		// consistent. An expired coupon degrades to zero discount, same
		// as its absence.
		result, evalErr := couponDomain.Evaluate(c, price, timezone.Now())
		if evalErr != nil {
			uc.logger.Warn("coupon no longer applicable at submission",
				zap.Uint("coupon_id", c.ID),
				zap.Error(evalErr),
			)
		} else {
			discount = result.DiscountAmount
		}
	}

	// --------------------------------------------------
	// 7. Commit
	// --------------------------------------------------
	b := &models.Booking{
		CustomerID:      customer.ID,
		ServiceID:       service.ID,
		StaffID:         in.StaffID,
		AddressID:       addressID,
		BookingDate:     in.Date,
		BookingTime:     in.Time,
		Status:          string(domain.InitialStatus()),
		PaymentMethod:   in.PaymentMethod,
		SpecialRequests: in.SpecialRequests,
		Price:           price,
		CouponID:        in.CouponID,
		DiscountAmount:  discount,
		FinalPrice:      price - discount,
		Reference:       domain.GenerateReference(),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if in.CouponID != nil && discount > 0 {
		if err := uc.repo.IncrementCouponUsage(ctx, *in.CouponID); err != nil {
			uc.logger.Warn("coupon usage increment failed",
				zap.Uint("coupon_id", *in.CouponID),
				zap.Error(err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: &customer.ID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}

func (uc *CreateBooking) resolveAddress(
	ctx context.Context,
	customerID uint,
	in CreateBookingInput,
) (uint, error) {

	if in.AddressID != nil && *in.AddressID != 0 {
		addr, err := uc.repo.GetAddressForCustomer(ctx, *in.AddressID, customerID)
		if err != nil {
			return 0, httperr.ErrBusiness("address_not_found")
		}
		return addr.ID, nil
	}

	if in.NewAddress == nil || in.NewAddress.Address == "" {
		return 0, httperr.ErrBusiness("address_required")
	}

	title := in.NewAddress.Title
	if title == "" {
		title = "Selected location"
	}

	addr := &models.Address{
		CustomerID: customerID,
		Title:      title,
		Address:    in.NewAddress.Address,
		Latitude:   in.NewAddress.Latitude,
		Longitude:  in.NewAddress.Longitude,
		IsDefault:  in.NewAddress.IsDefault,
	}

	if err := uc.repo.CreateAddress(ctx, addr); err != nil {
		return 0, httperr.ErrBusiness("address_create_failed")
	}

	return addr.ID, nil
}
