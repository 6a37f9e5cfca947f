package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/httpresp"
	usecase "github.com/GlamourSalonSA/salon-booking/internal/usecase/booking"
)

type CouponHandler struct {
	validate *usecase.ValidateCoupon
}

func NewCouponHandler(validate *usecase.ValidateCoupon) *CouponHandler {
	return &CouponHandler{validate: validate}
}

// Code is deliberately unvalidated here: a blank code gets the localized
// valid=false response from the use case, not a binding error.
type ValidateCouponRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// Validate checks a coupon against an order amount. A rejected coupon is a
// 400 carrying valid=false and the messages, so the flow can show them
// inline.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.validate.Execute(c.Request.Context(), req.Code, req.Amount)
	if err != nil {
		httperr.Internal(c, "internal_error", "Error checking coupon. Please try again.")
		return
	}

	if !result.Valid {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	httpresp.OK(c, result)
}
