package reminder

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/models"
	"github.com/GlamourSalonSA/salon-booking/internal/notification"
	"github.com/GlamourSalonSA/salon-booking/internal/timezone"
)

// BookingStore is the slice of the repository the sweep needs.
type BookingStore interface {
	ListBookingsDueReminder(ctx context.Context, fromDate, toDate string) ([]models.Booking, error)
	MarkReminderSent(ctx context.Context, bookingID uint) error
}

// Scheduler sends the day-before appointment reminders. It runs hourly in
// the salon timezone and marks each booking so a reminder goes out once.
type Scheduler struct {
	repo   BookingStore
	sender notification.ReminderSender
	logger *zap.Logger
	cron   *cron.Cron
}

func NewScheduler(
	repo BookingStore,
	sender notification.ReminderSender,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		repo:   repo,
		sender: sender,
		logger: logger,
		cron:   cron.New(cron.WithLocation(timezone.Location(timezone.DefaultTimezone))),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("reminder sweep failed", zap.Error(err))
	}
}

// RunOnce sweeps bookings scheduled for tomorrow that have not been
// reminded yet. Exported so an operator can trigger a sweep by hand.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	tomorrow := timezone.Now().AddDate(0, 0, 1).Format("2006-01-02")

	due, err := s.repo.ListBookingsDueReminder(ctx, tomorrow, tomorrow)
	if err != nil {
		return err
	}

	for i := range due {
		b := &due[i]

		if err := s.sender.SendReminder(ctx, b); err != nil {
			s.logger.Warn("reminder send failed",
				zap.Uint("booking_id", b.ID),
				zap.String("reference", b.Reference),
				zap.Error(err),
			)
			continue
		}

		if err := s.repo.MarkReminderSent(ctx, b.ID); err != nil {
			s.logger.Warn("reminder flag update failed",
				zap.Uint("booking_id", b.ID),
				zap.Error(err),
			)
		}
	}

	if len(due) > 0 {
		s.logger.Info("reminder sweep done",
			zap.String("date", tomorrow),
			zap.Int("count", len(due)),
		)
	}

	return nil
}
