package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/httpresp"
	"github.com/GlamourSalonSA/salon-booking/internal/middleware"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

type AddressHandler struct {
	repo domain.Repository
}

func NewAddressHandler(repo domain.Repository) *AddressHandler {
	return &AddressHandler{repo: repo}
}

type CreateAddressRequest struct {
	Title     string   `json:"title"`
	Address   string   `json:"address" binding:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	IsDefault bool     `json:"is_default"`
}

func (h *AddressHandler) List(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	addresses, err := h.repo.ListAddressesForCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load addresses.")
		return
	}
	httpresp.List(c, addresses)
}

func (h *AddressHandler) Detail(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	addressID, err := parseID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_address_id", "Invalid address id.")
		return
	}

	addr, err := h.repo.GetAddressForCustomer(c.Request.Context(), addressID, customerID)
	if err != nil {
		httperr.NotFound(c, "address_not_found", "The selected address was not found.")
		return
	}
	httpresp.OK(c, addr)
}

func (h *AddressHandler) Create(c *gin.Context) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "customer_not_in_context", "Please sign in again.")
		return
	}

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	title := req.Title
	if title == "" {
		title = "Selected location"
	}

	addr := &models.Address{
		CustomerID: customerID,
		Title:      title,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		IsDefault:  req.IsDefault,
	}

	if err := h.repo.CreateAddress(c.Request.Context(), addr); err != nil {
		httperr.Internal(c, "address_create_failed", "We could not save your address. Please try again.")
		return
	}

	httpresp.Created(c, addr)
}
