package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	BookingDate string    `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	Status      string    `json:"status"`
	ServiceName string    `json:"service_name"`
	FinalPrice  float64   `json:"final_price"`
	CreatedAt   time.Time `json:"created_at"`
}
