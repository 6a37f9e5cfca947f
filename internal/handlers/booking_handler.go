package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/dto"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/httpresp"
	"github.com/GlamourSalonSA/salon-booking/internal/middleware"
	usecase "github.com/GlamourSalonSA/salon-booking/internal/usecase/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/wizard"
)

type BookingHandler struct {
	repo       domain.Repository
	pipeline   *usecase.SubmitBooking
	lookup     *usecase.SlotLookup
	reschedule *usecase.RescheduleBooking
	cancel     *usecase.CancelBooking
	logger     *zap.Logger
}

func NewBookingHandler(
	repo domain.Repository,
	pipeline *usecase.SubmitBooking,
	lookup *usecase.SlotLookup,
	reschedule *usecase.RescheduleBooking,
	cancel *usecase.CancelBooking,
	logger *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		repo:       repo,
		pipeline:   pipeline,
		lookup:     lookup,
		reschedule: reschedule,
		cancel:     cancel,
		logger:     logger,
	}
}

// --------- Requests ---------

type BookingAddressPayload struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CreateBookingRequest struct {
	ServiceID    uint    `json:"service" binding:"required"`
	ServicePrice float64 `json:"price"`

	Address *BookingAddressPayload `json:"address" binding:"required"`

	Date string `json:"booking_date" binding:"required"`
	Time string `json:"booking_time" binding:"required"`

	StaffID *uint `json:"staff"`
	SlotID  *uint `json:"slot_id"`

	PaymentMethod   string `json:"payment_method" binding:"required"`
	SpecialRequests string `json:"special_requests"`

	CouponID *uint `json:"coupon"`
}

type RescheduleRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
	Reason  string `json:"reason"`
}

// --------- Handlers ---------

// Create commits a booking from an already assembled payload, then runs
// the best-effort effects (slot reservation, emails). Effect failures are
// reported alongside the success, never as a failure.
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	d := draftFromRequest(&req)

	res, err := h.pipeline.ForCustomer(customerID, req.SlotID).Submit(c.Request.Context(), d)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.Created(c, submitPayload(res))
}

// Submit drives the five-step flow server-side against the same payload:
// the draft is built step by step with the gating applied at each advance,
// so a payload missing a mandatory field fails exactly where the flow
// would have stopped.
func (h *BookingHandler) Submit(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	w := wizard.New(h.lookup, h.logger)
	w.SetAuthenticated(true)

	w.SelectService(req.ServiceID, req.ServicePrice)
	if err := w.Advance(); err != nil {
		respondBusiness(c, err)
		return
	}

	if req.Address != nil {
		w.SelectAddress(wizard.AddressSelection{
			ID:        req.Address.ID,
			Title:     req.Address.Title,
			Address:   req.Address.Address,
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		})
	}
	if err := w.Advance(); err != nil {
		respondBusiness(c, err)
		return
	}

	w.SetDate(req.Date)
	w.SetTime(req.Time)
	w.SetStaff(req.StaffID)
	w.RefreshSlots(c.Request.Context())
	if err := w.Advance(); err != nil {
		respondBusiness(c, err)
		return
	}

	w.SetPaymentMethod(req.PaymentMethod)
	w.SetSpecialRequests(req.SpecialRequests)
	if req.CouponID != nil {
		w.ApplyCoupon(wizard.AppliedCoupon{CouponID: *req.CouponID})
	}
	if err := w.Advance(); err != nil {
		respondBusiness(c, err)
		return
	}

	res, err := w.Submit(c.Request.Context(), h.pipeline.ForCustomer(customerID, req.SlotID))
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.Created(c, submitPayload(res))
}

func (h *BookingHandler) List(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	bookings, err := h.repo.ListBookingsForCustomer(
		c.Request.Context(),
		customerID,
		c.Query("status"),
		c.Query("date"),
	)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			BookingDate: b.BookingDate,
			BookingTime: b.BookingTime,
			Status:      b.Status,
			ServiceName: b.Service.Name,
			FinalPrice:  b.FinalPrice,
			CreatedAt:   b.CreatedAt,
		})
	}
	httpresp.List(c, out)
}

func (h *BookingHandler) Detail(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	bookingID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.repo.GetBookingForCustomer(c.Request.Context(), bookingID, customerID)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	bookingID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), usecase.RescheduleInput{
		BookingID:  bookingID,
		CustomerID: customerID,
		NewDate:    req.NewDate,
		NewTime:    req.NewTime,
		Reason:     req.Reason,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) RescheduleHistory(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	bookingID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	// Ownership check before exposing history.
	if _, err := h.repo.GetBookingForCustomer(c.Request.Context(), bookingID, customerID); err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	history, err := h.repo.ListRescheduleHistory(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load reschedule history.")
		return
	}
	httpresp.List(c, history)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	bookingID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), bookingID, customerID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.OK(c, b)
}

// --------- Helpers ---------

func draftFromRequest(req *CreateBookingRequest) wizard.Draft {
	d := wizard.Draft{
		ServiceID:       req.ServiceID,
		ServicePrice:    req.ServicePrice,
		Date:            req.Date,
		Time:            req.Time,
		StaffID:         req.StaffID,
		PaymentMethod:   req.PaymentMethod,
		SpecialRequests: req.SpecialRequests,
	}

	if req.Address != nil {
		d.Address = &wizard.AddressSelection{
			ID:        req.Address.ID,
			Title:     req.Address.Title,
			Address:   req.Address.Address,
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		}
	}

	if req.CouponID != nil {
		d.Coupon = &wizard.AppliedCoupon{CouponID: *req.CouponID}
	}

	return d
}

// The "id" key is what downstream calls (notifications, slot booking) key
// off; reference and final_price ride along for the confirmation screen.
func submitPayload(res *wizard.SubmitResult) gin.H {
	payload := gin.H{
		"id":          res.BookingID,
		"reference":   res.Reference,
		"final_price": res.FinalPrice,
	}
	if len(res.EffectErrors) > 0 {
		payload["warnings"] = res.EffectErrors
	}
	return payload
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
