package notification

import (
	"context"

	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

// BookingNotifier covers every customer-facing message in the booking
// lifecycle. All sends are best-effort: callers log failures, they never
// roll back a committed booking over one.
type BookingNotifier interface {
	// SendBookingEmails sends the confirmation to the customer and the
	// new-booking notification to the salon inbox.
	SendBookingEmails(ctx context.Context, b *models.Booking) error

	SendRescheduleNotice(ctx context.Context, b *models.Booking, oldDate, oldTime string) error
}

// ReminderSender delivers the day-before appointment reminder.
type ReminderSender interface {
	SendReminder(ctx context.Context, b *models.Booking) error
}
