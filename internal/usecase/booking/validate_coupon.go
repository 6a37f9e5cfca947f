package booking

import (
	"context"
	"strings"

	domain "github.com/GlamourSalonSA/salon-booking/internal/domain/booking"
	couponDomain "github.com/GlamourSalonSA/salon-booking/internal/domain/coupon"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type CouponInfo struct {
	ID            uint    `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

type CouponValidation struct {
	Valid          bool        `json:"valid"`
	Coupon         *CouponInfo `json:"coupon,omitempty"`
	DiscountAmount float64     `json:"discount_amount,omitempty"`
	FinalAmount    float64     `json:"final_amount,omitempty"`
	Errors         []string    `json:"errors,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type ValidateCoupon struct {
	repo domain.Repository
}

func NewValidateCoupon(repo domain.Repository) *ValidateCoupon {
	return &ValidateCoupon{repo: repo}
}

// Execute resolves a code and evaluates it against the amount. Invalid
// input comes back as a CouponValidation with Valid=false and messages;
// only storage failures surface as errors.
func (uc *ValidateCoupon) Execute(
	ctx context.Context,
	code string,
	amount float64,
) (*CouponValidation, error) {

	code = strings.TrimSpace(code)
	if code == "" {
		return invalid("Please enter a coupon code."), nil
	}

	c, err := uc.repo.GetCouponByCode(ctx, code)
	if err != nil {
		return invalid("Invalid coupon code."), nil
	}

	result, err := couponDomain.Evaluate(c, amount, timezone.Now())
	if err != nil {
		return invalid(couponMessage(err)), nil
	}

	return &CouponValidation{
		Valid: true,
		Coupon: &CouponInfo{
			ID:            result.Coupon.ID,
			Code:          result.Coupon.Code,
			Name:          result.Coupon.Name,
			DiscountType:  result.Coupon.DiscountType,
			DiscountValue: result.Coupon.DiscountValue,
		},
		DiscountAmount: result.DiscountAmount,
		FinalAmount:    result.FinalAmount,
	}, nil
}

func invalid(msg string) *CouponValidation {
	return &CouponValidation{Valid: false, Errors: []string{msg}}
}

func couponMessage(err error) string {
	switch httperr.BusinessCode(err) {
	case "coupon_expired":
		return "This coupon is not valid or has expired."
	case "below_minimum_amount":
		return "The order amount is below this coupon's minimum."
	default:
		return "Invalid coupon code."
	}
}
