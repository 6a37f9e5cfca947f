package coupon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

func activeCoupon() *models.Coupon {
	return &models.Coupon{
		ID:            1,
		Code:          "SAVE10",
		Name:          "Save 10%",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
		ValidFrom:     time.Now().Add(-24 * time.Hour),
		ValidUntil:    time.Now().Add(24 * time.Hour),
	}
}

func TestEvaluatePercentage(t *testing.T) {
	res, err := Evaluate(activeCoupon(), 100, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 10.0, res.DiscountAmount)
	assert.Equal(t, 90.0, res.FinalAmount)
}

func TestEvaluatePercentageCappedByMaximum(t *testing.T) {
	c := activeCoupon()
	maximum := 15.0
	c.MaximumDiscount = &maximum

	res, err := Evaluate(c, 500, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 15.0, res.DiscountAmount)
	assert.Equal(t, 485.0, res.FinalAmount)
}

func TestEvaluateFixed(t *testing.T) {
	c := activeCoupon()
	c.DiscountType = models.DiscountTypeFixed
	c.DiscountValue = 25

	res, err := Evaluate(c, 100, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 25.0, res.DiscountAmount)
	assert.Equal(t, 75.0, res.FinalAmount)
}

func TestEvaluateDiscountNeverExceedsAmount(t *testing.T) {
	c := activeCoupon()
	c.DiscountType = models.DiscountTypeFixed
	c.DiscountValue = 200

	res, err := Evaluate(c, 80, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 80.0, res.DiscountAmount)
	assert.Equal(t, 0.0, res.FinalAmount, "the final amount never goes negative")
}

func TestEvaluateBelowMinimumAmount(t *testing.T) {
	c := activeCoupon()
	c.MinimumAmount = 150

	_, err := Evaluate(c, 100, time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "below_minimum_amount"))
}

func TestEvaluateExpired(t *testing.T) {
	c := activeCoupon()
	c.ValidUntil = time.Now().Add(-time.Hour)

	_, err := Evaluate(c, 100, time.Now())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "coupon_expired"))
}

func TestEvaluateInactive(t *testing.T) {
	c := activeCoupon()
	c.IsActive = false

	_, err := Evaluate(c, 100, time.Now())
	assert.True(t, httperr.IsBusiness(err, "coupon_expired"))
}

func TestEvaluateUsageLimitReached(t *testing.T) {
	c := activeCoupon()
	limit := uint(5)
	c.UsageLimit = &limit
	c.UsedCount = 5

	_, err := Evaluate(c, 100, time.Now())
	assert.True(t, httperr.IsBusiness(err, "coupon_expired"))
}

func TestEvaluateNilCoupon(t *testing.T) {
	_, err := Evaluate(nil, 100, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_coupon_code"))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	c := activeCoupon()
	now := time.Now()

	first, err := Evaluate(c, 100, now)
	require.NoError(t, err)
	second, err := Evaluate(c, 100, now)
	require.NoError(t, err)

	assert.Equal(t, first.DiscountAmount, second.DiscountAmount)
	assert.Equal(t, first.FinalAmount, second.FinalAmount)
}
