package models

import "time"

// Admin-curated availability. The salon staff decide which date/time pairs
// are open per service; the booking flow only ever reads them and bumps
// CurrentBookings on reservation.
type AdminSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"uniqueIndex:idx_slot_service_date_time" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;uniqueIndex:idx_slot_service_date_time;index" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;uniqueIndex:idx_slot_service_date_time" json:"time"`        // HH:MM

	IsAvailable     bool `gorm:"default:true" json:"is_available"`
	MaxBookings     uint `gorm:"default:1" json:"max_bookings"`
	CurrentBookings uint `gorm:"default:0" json:"current_bookings"`

	StaffID *uint  `json:"staff_id"`
	Staff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AdminSlot) HasCapacity() bool {
	return s.IsAvailable && s.CurrentBookings < s.MaxBookings
}

func (s *AdminSlot) Remaining() uint {
	if !s.IsAvailable || s.CurrentBookings >= s.MaxBookings {
		return 0
	}
	return s.MaxBookings - s.CurrentBookings
}
