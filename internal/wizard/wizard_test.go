package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
)

// ---------- fakes ----------

type fakeLookup struct {
	slots []Slot
	err   error
	calls int

	// onCall runs before the lookup returns, letting a test mutate the
	// wizard mid-flight to simulate a stale response.
	onCall func()
}

func (f *fakeLookup) AvailableSlots(ctx context.Context, serviceID uint, date string) ([]Slot, error) {
	f.calls++
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeSubmitter struct {
	result *SubmitResult
	err    error
	drafts []Draft
}

func (f *fakeSubmitter) Submit(ctx context.Context, d Draft) (*SubmitResult, error) {
	f.drafts = append(f.drafts, d)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestWizard(lookup AvailabilityLookup) *Wizard {
	if lookup == nil {
		lookup = &fakeLookup{}
	}
	w := New(lookup, zap.NewNop())
	w.SetAuthenticated(true)
	return w
}

func fillDraft(w *Wizard) {
	w.SelectService(1, 100)
	w.SelectAddress(AddressSelection{ID: 7, Title: "Home", Address: "King Fahd Rd"})
	w.SetDate("2026-09-15")
	w.SetTime("14:00")
	w.SetPaymentMethod("cash")
}

// ---------- step gating ----------

func TestAdvanceRequiresAuth(t *testing.T) {
	w := New(&fakeLookup{}, zap.NewNop())
	w.SelectService(1, 100)

	err := w.Advance()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "auth_required"))
	assert.Equal(t, StepService, w.Step())
}

func TestAdvanceGatesEachStep(t *testing.T) {
	w := newTestWizard(nil)

	err := w.Advance()
	assert.True(t, httperr.IsBusiness(err, "service_required"))
	assert.Equal(t, StepService, w.Step())

	w.SelectService(1, 100)
	require.NoError(t, w.Advance())
	assert.Equal(t, StepAddress, w.Step())

	err = w.Advance()
	assert.True(t, httperr.IsBusiness(err, "address_required"))

	w.SelectAddress(AddressSelection{ID: 7, Address: "King Fahd Rd"})
	require.NoError(t, w.Advance())
	assert.Equal(t, StepDateTime, w.Step())

	err = w.Advance()
	assert.True(t, httperr.IsBusiness(err, "date_time_required"))

	w.SetDate("2026-09-15")
	err = w.Advance()
	assert.True(t, httperr.IsBusiness(err, "date_time_required"), "date without time must not pass")

	w.SetTime("14:00")
	require.NoError(t, w.Advance())
	assert.Equal(t, StepPayment, w.Step())

	err = w.Advance()
	assert.True(t, httperr.IsBusiness(err, "payment_method_required"))

	w.SetPaymentMethod("cash")
	require.NoError(t, w.Advance())
	assert.Equal(t, StepConfirmation, w.Step())
}

func TestAdvanceNewAddressWithoutIDPassesGate(t *testing.T) {
	w := newTestWizard(nil)
	w.SelectService(1, 100)
	require.NoError(t, w.Advance())

	w.SelectAddress(AddressSelection{Title: "Office", Address: "Olaya St"})
	require.NoError(t, w.Advance())
	assert.Equal(t, StepDateTime, w.Step())
}

// ---------- step bounds ----------

func TestStepBounds(t *testing.T) {
	w := newTestWizard(nil)

	w.Retreat()
	assert.Equal(t, StepService, w.Step(), "retreat at step 1 is a no-op")

	fillDraft(w)
	for w.Step() != StepConfirmation {
		require.NoError(t, w.Advance())
	}

	err := w.Advance()
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
	assert.Equal(t, StepConfirmation, w.Step(), "the terminal step never advances")

	w.Retreat()
	assert.Equal(t, StepPayment, w.Step())
}

// ---------- reset ----------

func TestResetClearsEverything(t *testing.T) {
	w := newTestWizard(&fakeLookup{slots: []Slot{{ID: 1, Time: "14:00", Remaining: 1}}})

	fillDraft(w)
	w.SetSpecialRequests("please be on time")
	w.ApplyCoupon(AppliedCoupon{CouponID: 3, Code: "SAVE10", DiscountAmount: 10, FinalAmount: 90})
	w.RefreshSlots(context.Background())
	require.NoError(t, w.Advance())

	w.Reset()

	assert.Equal(t, StepService, w.Step())
	assert.Equal(t, Draft{}, w.Draft())
	assert.Empty(t, w.Slots())
}

// ---------- availability freshness ----------

func TestRefreshSlotsRequiresInputs(t *testing.T) {
	lookup := &fakeLookup{slots: []Slot{{ID: 1, Time: "14:00"}}}
	w := newTestWizard(lookup)

	w.SelectService(1, 100)
	w.RefreshSlots(context.Background())
	assert.Zero(t, lookup.calls, "no lookup before service, address and date are set")
	assert.Empty(t, w.Slots())
}

func TestRefreshSlotsLoads(t *testing.T) {
	lookup := &fakeLookup{slots: []Slot{{ID: 1, Time: "14:00", Remaining: 2}}}
	w := newTestWizard(lookup)

	fillDraft(w)
	w.RefreshSlots(context.Background())

	require.Len(t, w.Slots(), 1)
	assert.Equal(t, "14:00", w.Slots()[0].Time)
}

func TestChangingInputsClearsSlots(t *testing.T) {
	lookup := &fakeLookup{slots: []Slot{{ID: 1, Time: "14:00"}}}
	w := newTestWizard(lookup)

	fillDraft(w)
	w.RefreshSlots(context.Background())
	require.NotEmpty(t, w.Slots())

	w.SetDate("2026-09-16")
	assert.Empty(t, w.Slots(), "date change clears fetched slots")

	w.RefreshSlots(context.Background())
	require.NotEmpty(t, w.Slots())

	w.SelectService(2, 150)
	assert.Empty(t, w.Slots(), "service change clears fetched slots")
}

func TestStaleLookupResponseIsDropped(t *testing.T) {
	lookup := &fakeLookup{slots: []Slot{{ID: 1, Time: "14:00"}}}
	w := newTestWizard(lookup)
	fillDraft(w)

	// The date changes while the request is in flight; the response that
	// comes back belongs to the old date and must not be stored.
	lookup.onCall = func() {
		lookup.onCall = nil
		w.SetDate("2026-09-20")
	}

	w.RefreshSlots(context.Background())
	assert.Empty(t, w.Slots())
}

func TestLookupFailureDegradesToEmpty(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("boom")}
	w := newTestWizard(lookup)
	fillDraft(w)

	w.RefreshSlots(context.Background())
	assert.Empty(t, w.Slots())

	// Navigation is not blocked by the failed lookup.
	require.NoError(t, w.Advance())
}

// ---------- submission ----------

func TestSubmitOnlyFromConfirmation(t *testing.T) {
	w := newTestWizard(nil)
	fillDraft(w)

	_, err := w.Submit(context.Background(), &fakeSubmitter{})
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestSubmitSuccessResets(t *testing.T) {
	w := newTestWizard(nil)
	fillDraft(w)
	for w.Step() != StepConfirmation {
		require.NoError(t, w.Advance())
	}

	sub := &fakeSubmitter{result: &SubmitResult{
		BookingID:  42,
		Reference:  "BK20260915140000ABCDEF",
		FinalPrice: 90,
	}}

	res, err := w.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, uint(42), res.BookingID)

	require.Len(t, sub.drafts, 1)
	assert.Equal(t, uint(1), sub.drafts[0].ServiceID)

	assert.Equal(t, StepService, w.Step())
	assert.Equal(t, Draft{}, w.Draft())
}

func TestSubmitFailureKeepsState(t *testing.T) {
	w := newTestWizard(nil)
	fillDraft(w)
	for w.Step() != StepConfirmation {
		require.NoError(t, w.Advance())
	}

	before := w.Draft()
	sub := &fakeSubmitter{err: httperr.ErrBusiness("slot_full")}

	_, err := w.Submit(context.Background(), sub)
	require.Error(t, err)

	assert.Equal(t, StepConfirmation, w.Step(), "failed submission keeps the step")
	assert.Equal(t, before, w.Draft(), "failed submission keeps the draft")
}

func TestSubmitReportsEffectFailuresAsSuccess(t *testing.T) {
	w := newTestWizard(nil)
	fillDraft(w)
	for w.Step() != StepConfirmation {
		require.NoError(t, w.Advance())
	}

	sub := &fakeSubmitter{result: &SubmitResult{
		BookingID:    7,
		Reference:    "BK20260915140000AAAAAA",
		EffectErrors: []string{"send_booking_emails: smtp timeout"},
	}}

	res, err := w.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.NotEmpty(t, res.EffectErrors)
	assert.Equal(t, StepService, w.Step(), "effect failures still reset the flow")
}
