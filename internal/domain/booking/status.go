package booking

import "github.com/GlamourSalonSA/salon-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// Statuses that still occupy their slot.
var ActiveStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
	string(StatusInProgress),
}

// ===============================
// Payment Methods
// ===============================

// Cash on arrival is the only method the salon accepts today.
const PaymentMethodCash = "cash"

func IsValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	switch current {
	case StatusPendingPayment, StatusPending, StatusConfirmed:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

func InitialStatus() Status {
	return StatusPending
}
