package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/httpresp"
	"github.com/GlamourSalonSA/salon-booking/internal/middleware"
	"github.com/GlamourSalonSA/salon-booking/internal/notification"
)

// NotificationHandler re-triggers the booking emails for an existing
// booking, used when the post-commit send failed and the flow retries.
type NotificationHandler struct {
	repo     domain.Repository
	notifier notification.BookingNotifier
	logger   *zap.Logger
}

func NewNotificationHandler(
	repo domain.Repository,
	notifier notification.BookingNotifier,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

type SendBookingEmailsRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

func (h *NotificationHandler) SendBookingEmails(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	var req SendBookingEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.repo.GetBookingForCustomer(c.Request.Context(), req.BookingID, customerID)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	if err := h.notifier.SendBookingEmails(c.Request.Context(), b); err != nil {
		h.logger.Warn("booking email resend failed",
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
		httperr.Internal(c, "email_send_failed", "Could not send the booking emails.")
		return
	}

	httpresp.OK(c, gin.H{"sent": true})
}
