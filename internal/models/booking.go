package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	StaffID *uint  `json:"staff_id"`
	Staff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	AddressID uint    `json:"address_id"`
	Address   Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"address"`

	BookingDate string `gorm:"size:10;index;not null" json:"booking_date"` // YYYY-MM-DD
	BookingTime string `gorm:"size:5;not null" json:"booking_time"`       // HH:MM

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`

	SpecialRequests string `gorm:"size:500" json:"special_requests"`

	Price          float64 `json:"price"`
	CouponID       *uint   `json:"coupon_id"`
	Coupon         *Coupon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"coupon"`
	DiscountAmount float64 `gorm:"default:0" json:"discount_amount"`
	FinalPrice     float64 `json:"final_price"`

	Reference string `gorm:"size:40;uniqueIndex" json:"reference"`

	RescheduleCount uint `gorm:"default:0" json:"reschedule_count"`
	MaxReschedules  uint `gorm:"default:2" json:"max_reschedules"`
	CanReschedule   bool `gorm:"default:true" json:"can_reschedule"`

	ReminderSent bool `gorm:"default:false" json:"reminder_sent"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingRescheduleHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OldDate string `gorm:"size:10" json:"old_date"`
	OldTime string `gorm:"size:5" json:"old_time"`
	NewDate string `gorm:"size:10" json:"new_date"`
	NewTime string `gorm:"size:5" json:"new_time"`

	Reason        string `gorm:"size:255" json:"reason"`
	RescheduledBy string `gorm:"size:20;default:'customer'" json:"rescheduled_by"`

	CreatedAt time.Time `json:"created_at"`
}
