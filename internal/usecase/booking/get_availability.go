package booking

import (
	"context"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/dto"
	"github.com/GlamourSalonSA/salon-booking/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the open admin slots for a service on a date, ordered by
// time. Missing inputs short-circuit to an empty list, and slots already
// in the past on the current Riyadh day are skipped.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]dto.SlotDTO, error) {

	if serviceID == 0 || date == "" {
		return []dto.SlotDTO{}, nil
	}

	day, err := timezone.ParseDate(date)
	if err != nil {
		return []dto.SlotDTO{}, nil
	}

	slots, err := uc.repo.ListOpenSlots(ctx, serviceID, day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	today := now.Format("2006-01-02") == day.Format("2006-01-02")

	out := make([]dto.SlotDTO, 0, len(slots))
	for _, s := range slots {
		if today {
			start, err := timezone.ParseDateTime(s.Date, s.Time)
			if err != nil || !start.After(now) {
				continue
			}
		}

		d := dto.SlotDTO{
			ID:        s.ID,
			Time:      s.Time,
			Remaining: s.Remaining(),
			StaffID:   s.StaffID,
		}
		if s.Staff != nil {
			d.StaffName = s.Staff.Name
		}
		out = append(out, d)
	}

	return out, nil
}
