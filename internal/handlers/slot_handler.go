package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/httpresp"
	"github.com/GlamourSalonSA/salon-booking/internal/middleware"
	usecase "github.com/GlamourSalonSA/salon-booking/internal/usecase/booking"
)

type SlotHandler struct {
	availability *usecase.GetAvailability
	bookSlot     *usecase.BookSlot
	cancelSlot   *usecase.CancelSlot
}

func NewSlotHandler(
	availability *usecase.GetAvailability,
	bookSlot *usecase.BookSlot,
	cancelSlot *usecase.CancelSlot,
) *SlotHandler {
	return &SlotHandler{
		availability: availability,
		bookSlot:     bookSlot,
		cancelSlot:   cancelSlot,
	}
}

// Available lists the open slots for ?service_id=&date=YYYY-MM-DD. Bad or
// missing parameters come back as an empty list, matching what the booking
// flow expects while the customer is still picking inputs.
func (h *SlotHandler) Available(c *gin.Context) {
	serviceID, _ := strconv.ParseUint(c.Query("service_id"), 10, 64)
	date := c.Query("date")

	slots, err := h.availability.Execute(c.Request.Context(), uint(serviceID), date)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load availability.")
		return
	}
	httpresp.OK(c, gin.H{"available_slots": slots})
}

type SlotActionRequest struct {
	SlotID uint `json:"slot_id" binding:"required"`
}

func (h *SlotHandler) Book(c *gin.Context) {
	var req SlotActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var customerID *uint
	if id, ok := middleware.CustomerID(c); ok {
		customerID = &id
	}

	slot, err := h.bookSlot.Execute(c.Request.Context(), req.SlotID, customerID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.OK(c, slot)
}

func (h *SlotHandler) Cancel(c *gin.Context) {
	var req SlotActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var customerID *uint
	if id, ok := middleware.CustomerID(c); ok {
		customerID = &id
	}

	if err := h.cancelSlot.Execute(c.Request.Context(), req.SlotID, customerID); err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.OK(c, gin.H{"released": true})
}
