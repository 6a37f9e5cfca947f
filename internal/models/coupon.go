package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Coupon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	DiscountType  string  `gorm:"size:10;not null" json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`

	MinimumAmount   float64  `gorm:"default:0" json:"minimum_amount"`
	MaximumDiscount *float64 `json:"maximum_discount"`

	UsageLimit *uint `json:"usage_limit"`
	UsedCount  uint  `gorm:"default:0" json:"used_count"`

	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsValid reports whether the coupon can be applied at the given instant,
// before any amount checks.
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return false
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return false
	}
	return true
}
