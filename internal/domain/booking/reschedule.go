package booking

import (
	"time"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Reschedule moves a booking to a new date/time, enforcing the per-booking
// reschedule allowance. The caller persists the change and writes the
// history row.
func Reschedule(b *models.Booking, newDate, newTime string) error {
	if !b.CanReschedule {
		return httperr.ErrBusiness("reschedule_not_allowed")
	}
	if b.RescheduleCount >= b.MaxReschedules {
		return httperr.ErrBusiness("reschedule_limit_reached")
	}
	if newDate == "" || newTime == "" {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	b.BookingDate = newDate
	b.BookingTime = newTime
	b.RescheduleCount++
	b.ReminderSent = false
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}
