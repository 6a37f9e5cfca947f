package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/audit"
	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
	"github.com/GlamourSalonSA/salon-booking/internal/notification"
	"github.com/GlamourSalonSA/salon-booking/internal/timezone"
)

type RescheduleInput struct {
	BookingID  uint
	CustomerID uint
	NewDate    string // YYYY-MM-DD
	NewTime    string // HH:MM
	Reason     string
}

type RescheduleBooking struct {
	repo     domain.Repository
	notifier notification.BookingNotifier
	audit    *audit.Dispatcher
	logger   *zap.Logger
}

func NewRescheduleBooking(
	repo domain.Repository,
	notifier notification.BookingNotifier,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}
}

// Execute moves a customer's booking to a new date/time, keeping a history
// row for each move. The reschedule notice is best-effort; the move stands
// even if the email fails.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForCustomer(ctx, in.BookingID, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if _, err := timezone.ParseDateTime(in.NewDate, in.NewTime); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	oldDate, oldTime := b.BookingDate, b.BookingTime

	if err := domain.Reschedule(b, in.NewDate, in.NewTime); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	history := &models.BookingRescheduleHistory{
		BookingID:     b.ID,
		OldDate:       oldDate,
		OldTime:       oldTime,
		NewDate:       in.NewDate,
		NewTime:       in.NewTime,
		Reason:        in.Reason,
		RescheduledBy: "customer",
	}
	if err := uc.repo.CreateRescheduleHistory(ctx, history); err != nil {
		uc.logger.Warn("reschedule history write failed",
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
	}

	if err := uc.notifier.SendRescheduleNotice(ctx, b, oldDate, oldTime); err != nil {
		uc.logger.Warn("reschedule notice failed",
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: &in.CustomerID,
		Action:     "booking_rescheduled",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(repo domain.Repository, audit *audit.Dispatcher) *CancelBooking {
	return &CancelBooking{repo: repo, audit: audit}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	customerID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: &customerID,
		Action:     "booking_cancelled",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return b, nil
}
