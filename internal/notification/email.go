package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/config"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

// EmailNotifier sends booking emails over plain SMTP.
type EmailNotifier struct {
	cfg    *config.Config
	logger *zap.Logger

	// send is swapped in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailNotifier(cfg *config.Config, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

func (n *EmailNotifier) SendBookingEmails(ctx context.Context, b *models.Booking) error {
	customerBody := fmt.Sprintf(
		"Your booking is confirmed.\n\n"+
			"Reference: %s\nService: %s\nDate: %s at %s\nPayment: %s\nTotal: %.2f SAR\n\n"+
			"You will receive a reminder 24 hours before your appointment.\n"+
			"You can reschedule up to %d times from your dashboard.",
		b.Reference, b.Service.Name, b.BookingDate, b.BookingTime,
		b.PaymentMethod, b.FinalPrice, b.MaxReschedules,
	)

	if b.Customer.Email != "" {
		if err := n.deliver(b.Customer.Email, "Booking confirmed "+b.Reference, customerBody); err != nil {
			return fmt.Errorf("customer email: %w", err)
		}
	}

	salonBody := fmt.Sprintf(
		"New booking %s\n\nCustomer: %s (%s)\nService: %s\nDate: %s at %s\nAddress: %s\nTotal: %.2f SAR",
		b.Reference, b.Customer.Name, b.Customer.Phone,
		b.Service.Name, b.BookingDate, b.BookingTime,
		b.Address.Address, b.FinalPrice,
	)

	if err := n.deliver(n.cfg.SalonEmail, "New booking "+b.Reference, salonBody); err != nil {
		return fmt.Errorf("salon email: %w", err)
	}

	n.logger.Info("booking emails sent",
		zap.Uint("booking_id", b.ID),
		zap.String("reference", b.Reference),
	)
	return nil
}

func (n *EmailNotifier) SendRescheduleNotice(ctx context.Context, b *models.Booking, oldDate, oldTime string) error {
	if b.Customer.Email == "" {
		return nil
	}

	body := fmt.Sprintf(
		"Your booking %s was moved.\n\nPrevious: %s at %s\nNew: %s at %s\nRemaining reschedules: %d",
		b.Reference, oldDate, oldTime, b.BookingDate, b.BookingTime,
		b.MaxReschedules-b.RescheduleCount,
	)

	return n.deliver(b.Customer.Email, "Booking rescheduled "+b.Reference, body)
}

func (n *EmailNotifier) deliver(to, subject, body string) error {
	headers := []string{
		"From: " + n.cfg.EmailFrom,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	var auth smtp.Auth
	if n.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", n.cfg.SMTPUser, n.cfg.SMTPPassword, n.cfg.SMTPHost)
	}

	addr := n.cfg.SMTPHost + ":" + n.cfg.SMTPPort
	return n.send(addr, auth, n.cfg.EmailFrom, []string{to}, []byte(msg))
}

var _ BookingNotifier = (*EmailNotifier)(nil)
