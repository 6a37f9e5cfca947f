package booking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/notification"
	"github.com/GlamourSalonSA/salon-booking/internal/wizard"
)

// ======================================================
// WIZARD PORTS
// ======================================================

// SlotLookup adapts GetAvailability to the wizard's availability port.
type SlotLookup struct {
	availability *GetAvailability
}

func NewSlotLookup(availability *GetAvailability) *SlotLookup {
	return &SlotLookup{availability: availability}
}

func (l *SlotLookup) AvailableSlots(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]wizard.Slot, error) {

	slots, err := l.availability.Execute(ctx, serviceID, date)
	if err != nil {
		return nil, err
	}

	out := make([]wizard.Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, wizard.Slot{
			ID:        s.ID,
			Time:      s.Time,
			Remaining: s.Remaining,
			StaffID:   s.StaffID,
			StaffName: s.StaffName,
		})
	}
	return out, nil
}

var _ wizard.AvailabilityLookup = (*SlotLookup)(nil)

// ======================================================
// SUBMISSION PIPELINE
// ======================================================

// SubmitBooking is the wizard's submitter: it commits the booking through
// CreateBooking, then runs the post-commit effects (reserving the chosen
// admin slot, sending the booking emails). Effect failures are reported
// back but never fail the submission; the booking is committed by then.
type SubmitBooking struct {
	create   *CreateBooking
	bookSlot *BookSlot
	repo     domain.Repository
	notifier notification.BookingNotifier
	logger   *zap.Logger
}

func NewSubmitBooking(
	create *CreateBooking,
	bookSlot *BookSlot,
	repo domain.Repository,
	notifier notification.BookingNotifier,
	logger *zap.Logger,
) *SubmitBooking {
	return &SubmitBooking{
		create:   create,
		bookSlot: bookSlot,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// ForCustomer binds a submission pipeline to the authenticated customer,
// yielding the wizard.Submitter for one session.
func (s *SubmitBooking) ForCustomer(customerID uint, slotID *uint) *CustomerSubmitter {
	return &CustomerSubmitter{
		pipeline:   s,
		customerID: customerID,
		slotID:     slotID,
	}
}

type CustomerSubmitter struct {
	pipeline   *SubmitBooking
	customerID uint
	slotID     *uint
}

func (cs *CustomerSubmitter) Submit(
	ctx context.Context,
	d wizard.Draft,
) (*wizard.SubmitResult, error) {

	in := CreateBookingInput{
		CustomerID:      cs.customerID,
		ServiceID:       d.ServiceID,
		StaffID:         d.StaffID,
		Date:            d.Date,
		Time:            d.Time,
		PaymentMethod:   d.PaymentMethod,
		SpecialRequests: d.SpecialRequests,
		Price:           d.ServicePrice,
	}

	if d.Coupon != nil {
		id := d.Coupon.CouponID
		in.CouponID = &id
	}

	if d.Address != nil {
		if d.Address.ID != 0 {
			id := d.Address.ID
			in.AddressID = &id
		} else {
			in.NewAddress = &NewAddressInput{
				Title:     d.Address.Title,
				Address:   d.Address.Address,
				Latitude:  d.Address.Latitude,
				Longitude: d.Address.Longitude,
				IsDefault: true,
			}
		}
	}

	b, err := cs.pipeline.create.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	effects := []PostCommitEffect{}

	if cs.slotID != nil {
		slotID := *cs.slotID
		effects = append(effects, PostCommitEffect{
			Name: "reserve_slot",
			Run: func(ctx context.Context) error {
				_, err := cs.pipeline.bookSlot.Execute(ctx, slotID, &cs.customerID)
				return err
			},
		})
	}

	effects = append(effects, PostCommitEffect{
		Name: "send_booking_emails",
		Run: func(ctx context.Context) error {
			// Reload with associations so the emails carry names, not ids.
			full, err := cs.pipeline.repo.GetBookingByID(ctx, b.ID)
			if err != nil {
				return err
			}
			return cs.pipeline.notifier.SendBookingEmails(ctx, full)
		},
	})

	failures := RunEffects(ctx, cs.pipeline.logger, effects)

	return &wizard.SubmitResult{
		BookingID:    b.ID,
		Reference:    b.Reference,
		FinalPrice:   b.FinalPrice,
		EffectErrors: failures,
	}, nil
}

var _ wizard.Submitter = (*CustomerSubmitter)(nil)
