package models

import "time"

// Customer-owned delivery addresses. Latitude/longitude are optional,
// set only when the address was picked on the map.
type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title   string `gorm:"size:50;not null" json:"title"`
	Address string `gorm:"size:500;not null" json:"address"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	IsDefault bool `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
