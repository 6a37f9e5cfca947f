package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100" json:"email"`

	Phone           string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	IsPhoneVerified bool   `gorm:"default:false" json:"is_phone_verified"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	DateOfBirth *time.Time `json:"date_of_birth"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
