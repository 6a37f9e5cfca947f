package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlamourSalonSA/salon-booking/internal/wizard"
)

func newJSONContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

// The booking body uses the SPA's field names: service, price,
// booking_date, booking_time, staff, coupon.
func TestCreateBookingRequestBindsClientPayload(t *testing.T) {
	c, _ := newJSONContext(t, `{
		"service": 2,
		"price": 100,
		"address": {"id": 7, "title": "Home", "address": "King Fahd Rd"},
		"booking_date": "2026-09-15",
		"booking_time": "14:00",
		"staff": 4,
		"coupon": 3,
		"slot_id": 11,
		"payment_method": "cash",
		"special_requests": "side entrance"
	}`)

	var req CreateBookingRequest
	require.NoError(t, c.ShouldBindJSON(&req))

	assert.Equal(t, uint(2), req.ServiceID)
	assert.Equal(t, 100.0, req.ServicePrice)
	require.NotNil(t, req.Address)
	assert.Equal(t, uint(7), req.Address.ID)
	assert.Equal(t, "2026-09-15", req.Date)
	assert.Equal(t, "14:00", req.Time)
	require.NotNil(t, req.StaffID)
	assert.Equal(t, uint(4), *req.StaffID)
	require.NotNil(t, req.CouponID)
	assert.Equal(t, uint(3), *req.CouponID)
	require.NotNil(t, req.SlotID)
	assert.Equal(t, uint(11), *req.SlotID)
	assert.Equal(t, "cash", req.PaymentMethod)
}

func TestCreateBookingRequestRequiresDateAndTime(t *testing.T) {
	c, _ := newJSONContext(t, `{
		"service": 2,
		"address": {"id": 7, "address": "King Fahd Rd"},
		"booking_date": "2026-09-15",
		"payment_method": "cash"
	}`)

	var req CreateBookingRequest
	assert.Error(t, c.ShouldBindJSON(&req), "missing booking_time must not bind")
}

func TestSubmitPayloadCarriesID(t *testing.T) {
	payload := submitPayload(&wizard.SubmitResult{
		BookingID:  42,
		Reference:  "BK20260915140000ABCDEF",
		FinalPrice: 90,
	})

	assert.Equal(t, uint(42), payload["id"])
	assert.Equal(t, "BK20260915140000ABCDEF", payload["reference"])
	assert.Equal(t, 90.0, payload["final_price"])
	assert.NotContains(t, payload, "warnings")
}

func TestSubmitPayloadWarnings(t *testing.T) {
	payload := submitPayload(&wizard.SubmitResult{
		BookingID:    7,
		EffectErrors: []string{"send_booking_emails: smtp timeout"},
	})

	assert.Equal(t, uint(7), payload["id"])
	assert.Contains(t, payload, "warnings")
}
