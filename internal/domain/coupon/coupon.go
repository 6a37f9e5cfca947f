package coupon

import (
	"time"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

// Result of evaluating a coupon against an amount. FinalAmount is what the
// customer would pay after the discount.
type Result struct {
	Coupon         *models.Coupon
	DiscountAmount float64
	FinalAmount    float64
}

// Evaluate applies the coupon rules to an amount at the given instant:
// active window and usage limit, minimum amount, percentage discounts
// capped by MaximumDiscount, and the discount never exceeding the amount
// itself. Pure function of (coupon, amount, now), so re-validating the
// same code against the same amount always yields the same result.
func Evaluate(c *models.Coupon, amount float64, now time.Time) (*Result, error) {
	if c == nil {
		return nil, httperr.ErrBusiness("invalid_coupon_code")
	}

	if !c.IsValid(now) {
		return nil, httperr.ErrBusiness("coupon_expired")
	}

	if amount < c.MinimumAmount {
		return nil, httperr.ErrBusiness("below_minimum_amount")
	}

	var discount float64
	switch c.DiscountType {
	case models.DiscountTypePercentage:
		discount = (amount * c.DiscountValue) / 100
		if c.MaximumDiscount != nil && discount > *c.MaximumDiscount {
			discount = *c.MaximumDiscount
		}
	case models.DiscountTypeFixed:
		discount = c.DiscountValue
	default:
		return nil, httperr.ErrBusiness("invalid_discount_type")
	}

	if discount > amount {
		discount = amount
	}

	return &Result{
		Coupon:         c,
		DiscountAmount: discount,
		FinalAmount:    amount - discount,
	}, nil
}
