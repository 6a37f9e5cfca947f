package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
)

// businessStatus maps a business error code to the HTTP status and the
// customer-facing message. Unknown codes fall through to a 500.
func businessStatus(code string) (int, string) {
	switch code {
	case "auth_required", "customer_not_found":
		return http.StatusUnauthorized, "Incomplete customer information, please sign in again."
	case "service_required":
		return http.StatusBadRequest, "Please select a service."
	case "service_not_found":
		return http.StatusNotFound, "The selected service is no longer available."
	case "address_required":
		return http.StatusBadRequest, "Please select a service address."
	case "address_not_found":
		return http.StatusNotFound, "The selected address was not found."
	case "address_create_failed":
		return http.StatusInternalServerError, "We could not save your address. Please try again."
	case "date_time_required":
		return http.StatusBadRequest, "Please select a date and time."
	case "invalid_date_or_time":
		return http.StatusBadRequest, "The selected date or time is not valid."
	case "payment_method_required":
		return http.StatusBadRequest, "Please select a payment method."
	case "invalid_payment_method":
		return http.StatusBadRequest, "The selected payment method is not supported."
	case "coupon_not_found":
		return http.StatusBadRequest, "Invalid coupon code."
	case "slot_not_found":
		return http.StatusNotFound, "This time slot is no longer available."
	case "slot_full":
		return http.StatusConflict, "This time slot is fully booked."
	case "booking_not_found":
		return http.StatusNotFound, "Booking not found."
	case "reschedule_not_allowed":
		return http.StatusBadRequest, "This booking can no longer be rescheduled."
	case "reschedule_limit_reached":
		return http.StatusBadRequest, "This booking has reached its reschedule limit."
	case "invalid_state":
		return http.StatusBadRequest, "This booking can no longer be cancelled."
	case "invalid_step":
		return http.StatusBadRequest, "This action is not available at the current step."
	}
	return 0, ""
}

// respondBusiness writes a business error with its mapped status, or a
// generic 500 when the error is not a business one.
func respondBusiness(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code != "" {
		if status, msg := businessStatus(code); status != 0 {
			httperr.Write(c, status, code, msg)
			return
		}
	}
	httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
}
