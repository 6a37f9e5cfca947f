package booking

import (
	"context"

	"github.com/GlamourSalonSA/salon-booking/internal/audit"
	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookSlot(repo domain.Repository, audit *audit.Dispatcher) *BookSlot {
	return &BookSlot{repo: repo, audit: audit}
}

// Execute consumes one unit of a slot's capacity. The repository does the
// check-and-increment under a row lock, so two concurrent reservations of
// the last unit cannot both succeed.
func (uc *BookSlot) Execute(
	ctx context.Context,
	slotID uint,
	customerID *uint,
) (*models.AdminSlot, error) {

	slot, err := uc.repo.ReserveSlot(ctx, slotID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: customerID,
		Action:     "slot_booked",
		Entity:     "admin_slot",
		EntityID:   &slot.ID,
	})

	return slot, nil
}

type CancelSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelSlot(repo domain.Repository, audit *audit.Dispatcher) *CancelSlot {
	return &CancelSlot{repo: repo, audit: audit}
}

func (uc *CancelSlot) Execute(
	ctx context.Context,
	slotID uint,
	customerID *uint,
) error {

	if err := uc.repo.ReleaseSlot(ctx, slotID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: customerID,
		Action:     "slot_released",
		Entity:     "admin_slot",
		EntityID:   &slotID,
	})

	return nil
}
