package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/config"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

// WhatsAppSender delivers appointment reminders over Twilio. Phones in
// E.164 form go out as WhatsApp messages, anything else as plain SMS.
type WhatsAppSender struct {
	cfg    *config.Config
	client *twilio.RestClient
	logger *zap.Logger
}

func NewWhatsAppSender(cfg *config.Config, logger *zap.Logger) *WhatsAppSender {
	return &WhatsAppSender{
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		logger: logger,
	}
}

func (s *WhatsAppSender) SendReminder(ctx context.Context, b *models.Booking) error {
	if b.Customer.Phone == "" {
		return nil
	}

	body := fmt.Sprintf(
		"Reminder: your %s appointment is tomorrow, %s at %s. Reference %s.",
		b.Service.Name, b.BookingDate, b.BookingTime, b.Reference,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	if strings.HasPrefix(b.Customer.Phone, "+") {
		params.SetTo("whatsapp:" + b.Customer.Phone)
		params.SetFrom("whatsapp:" + s.cfg.TwilioWhatsAppNumber)
	} else {
		params.SetTo(b.Customer.Phone)
		params.SetFrom(s.cfg.TwilioWhatsAppNumber)
	}

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}

	s.logger.Info("reminder sent",
		zap.Uint("booking_id", b.ID),
		zap.String("reference", b.Reference),
	)
	return nil
}

var _ ReminderSender = (*WhatsAppSender)(nil)
