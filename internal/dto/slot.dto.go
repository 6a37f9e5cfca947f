package dto

type SlotDTO struct {
	ID        uint   `json:"id"`
	Time      string `json:"time"`
	Remaining uint   `json:"remaining"`
	StaffID   *uint  `json:"staff_id"`
	StaffName string `json:"staff_name,omitempty"`
}
