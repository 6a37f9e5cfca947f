// Package wizard implements the booking flow state machine: five ordered
// steps from service selection to confirmation, forward/backward only,
// with per-step gating on the draft's mandatory fields.
package wizard

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
)

// ======================================================
// STEPS
// ======================================================

type Step int

const (
	StepService Step = iota + 1
	StepAddress
	StepDateTime
	StepPayment
	StepConfirmation
)

const StepCount = 5

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepAddress:
		return "address"
	case StepDateTime:
		return "date_time"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

// ======================================================
// PORTS
// ======================================================

// AvailabilityLookup returns the open slots for a service on a date.
type AvailabilityLookup interface {
	AvailableSlots(ctx context.Context, serviceID uint, date string) ([]Slot, error)
}

// Submitter turns a completed draft into a persisted booking.
type Submitter interface {
	Submit(ctx context.Context, d Draft) (*SubmitResult, error)
}

type SubmitResult struct {
	BookingID  uint
	Reference  string
	FinalPrice float64

	// Post-commit side effects that failed. The booking itself is already
	// committed when these are reported.
	EffectErrors []string
}

// ======================================================
// WIZARD
// ======================================================

// Wizard owns one booking draft in isolation. It is driven by a single
// logical flow and is not safe for concurrent use; the slot generation
// counter only guards against a dependency changing while an availability
// request is in flight.
type Wizard struct {
	lookup AvailabilityLookup
	logger *zap.Logger

	authed  bool
	step    Step
	draft   Draft
	slots   []Slot
	slotGen uint64
}

func New(lookup AvailabilityLookup, logger *zap.Logger) *Wizard {
	return &Wizard{
		lookup: lookup,
		logger: logger,
		step:   StepService,
	}
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Draft() Draft { return w.draft }
func (w *Wizard) Slots() []Slot {
	out := make([]Slot, len(w.slots))
	copy(out, w.slots)
	return out
}

func (w *Wizard) SetAuthenticated(v bool) { w.authed = v }

// ======================================================
// DRAFT MUTATION
// ======================================================

// SelectService also invalidates the fetched slots: availability is scoped
// to a service, so whatever was loaded belongs to the old one.
func (w *Wizard) SelectService(serviceID uint, price float64) {
	w.draft.ServiceID = serviceID
	w.draft.ServicePrice = price
	w.invalidateSlots()
}

func (w *Wizard) SelectAddress(sel AddressSelection) {
	w.draft.Address = &sel
	w.invalidateSlots()
}

func (w *Wizard) SetDate(date string) {
	w.draft.Date = date
	w.invalidateSlots()
}

func (w *Wizard) SetTime(hm string) {
	w.draft.Time = hm
}

func (w *Wizard) SetStaff(staffID *uint) {
	w.draft.StaffID = staffID
}

func (w *Wizard) SetPaymentMethod(method string) {
	w.draft.PaymentMethod = method
}

func (w *Wizard) SetSpecialRequests(text string) {
	w.draft.SpecialRequests = text
}

func (w *Wizard) ApplyCoupon(ac AppliedCoupon) {
	w.draft.Coupon = &ac
}

func (w *Wizard) RemoveCoupon() {
	w.draft.Coupon = nil
}

func (w *Wizard) invalidateSlots() {
	w.slotGen++
	w.slots = nil
}

// ======================================================
// AVAILABILITY
// ======================================================

// RefreshSlots loads availability for the current (service, address, date).
// Missing inputs short-circuit to an empty list without calling the lookup.
// A lookup failure degrades to an empty list and never blocks navigation.
// The generation captured before the call guards against a dependency
// change while the request was in flight: a stale response is dropped
// instead of overwriting fresher state.
func (w *Wizard) RefreshSlots(ctx context.Context) {
	if w.draft.ServiceID == 0 || w.draft.Date == "" || !w.draft.Address.IsSet() {
		w.slots = nil
		return
	}

	gen := w.slotGen

	slots, err := w.lookup.AvailableSlots(ctx, w.draft.ServiceID, w.draft.Date)
	if err != nil {
		w.logger.Warn("availability lookup failed",
			zap.Uint("service_id", w.draft.ServiceID),
			zap.String("date", w.draft.Date),
			zap.Error(err),
		)
		if gen == w.slotGen {
			w.slots = nil
		}
		return
	}

	if gen != w.slotGen {
		return
	}
	w.slots = slots
}

// ======================================================
// TRANSITIONS
// ======================================================

// Advance moves to the next step when the current step's mandatory fields
// are set. The authentication guard is cross-cutting: an unauthenticated
// caller is bounced to sign-in before any step rule applies.
func (w *Wizard) Advance() error {
	if !w.authed {
		return httperr.ErrBusiness("auth_required")
	}

	switch w.step {
	case StepService:
		if w.draft.ServiceID == 0 {
			return httperr.ErrBusiness("service_required")
		}
	case StepAddress:
		if !w.draft.Address.IsSet() {
			return httperr.ErrBusiness("address_required")
		}
	case StepDateTime:
		if w.draft.Date == "" || w.draft.Time == "" {
			return httperr.ErrBusiness("date_time_required")
		}
	case StepPayment:
		if w.draft.PaymentMethod == "" {
			return httperr.ErrBusiness("payment_method_required")
		}
	case StepConfirmation:
		// The terminal step submits, it never advances.
		return httperr.ErrBusiness("invalid_step")
	}

	w.step++
	return nil
}

// Retreat is always allowed except from the first step, where it is a
// no-op.
func (w *Wizard) Retreat() {
	if w.step > StepService {
		w.step--
	}
}

// Submit is only reachable from the confirmation step. The completeness
// check repeats the per-step gating as a final safety net. On success the
// wizard resets; on failure step and draft are left untouched so the
// caller can correct and retry.
func (w *Wizard) Submit(ctx context.Context, s Submitter) (*SubmitResult, error) {
	if w.step != StepConfirmation {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	if w.draft.ServiceID == 0 {
		return nil, httperr.ErrBusiness("service_required")
	}
	if !w.draft.Address.IsSet() {
		return nil, httperr.ErrBusiness("address_required")
	}
	if w.draft.Date == "" || w.draft.Time == "" {
		return nil, httperr.ErrBusiness("date_time_required")
	}
	if w.draft.PaymentMethod == "" {
		return nil, httperr.ErrBusiness("payment_method_required")
	}

	res, err := s.Submit(ctx, w.draft)
	if err != nil {
		return nil, err
	}

	w.Reset()
	return res, nil
}

// Reset returns to the first step and clears the whole draft, including
// any loaded slots.
func (w *Wizard) Reset() {
	w.step = StepService
	w.draft = Draft{}
	w.invalidateSlots()
}
