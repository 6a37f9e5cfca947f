package models

import "time"

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:200" json:"specialization"`
	Phone          string `gorm:"size:20" json:"phone"`

	Rating   float64 `gorm:"default:5.0" json:"rating"`
	IsActive bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
