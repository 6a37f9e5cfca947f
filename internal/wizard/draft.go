package wizard

// ======================================================
// DRAFT
// ======================================================

// AddressSelection is either a saved address (ID > 0) or a new one picked
// during the flow that still has to be created on submission.
type AddressSelection struct {
	ID        uint
	Title     string
	Address   string
	Latitude  *float64
	Longitude *float64
}

func (a *AddressSelection) IsSet() bool {
	return a != nil && (a.ID != 0 || a.Address != "")
}

// AppliedCoupon is the stored outcome of a successful coupon validation.
// Re-applying a code simply replaces it.
type AppliedCoupon struct {
	CouponID       uint
	Code           string
	DiscountAmount float64
	FinalAmount    float64
}

// Slot is one bookable time as returned by the availability lookup.
type Slot struct {
	ID        uint
	Time      string // HH:MM
	Remaining uint
	StaffID   *uint
	StaffName string
}

// Draft is the working state of one booking session. It lives only as long
// as the wizard and becomes a Booking record on successful submission.
type Draft struct {
	ServiceID       uint
	ServicePrice    float64
	Address         *AddressSelection
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	StaffID         *uint
	PaymentMethod   string
	SpecialRequests string
	Coupon          *AppliedCoupon
}
