package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
	"github.com/GlamourSalonSA/salon-booking/internal/wizard"
)

func testPipeline(repo *fakeRepo, notifier *fakeNotifier) *SubmitBooking {
	logger := zap.NewNop()
	dispatcher := testDispatcher()

	return NewSubmitBooking(
		NewCreateBooking(repo, dispatcher, logger),
		NewBookSlot(repo, dispatcher),
		repo,
		notifier,
		logger,
	)
}

func confirmedDraft() wizard.Draft {
	return wizard.Draft{
		ServiceID:     2,
		ServicePrice:  100,
		Address:       &wizard.AddressSelection{ID: 7, Title: "Home", Address: "King Fahd Rd"},
		Date:          "2026-09-15",
		Time:          "14:00",
		PaymentMethod: "cash",
	}
}

func TestSubmitCommitsAndRunsEffects(t *testing.T) {
	repo := seededRepo()
	repo.slots[11] = &models.AdminSlot{
		ID: 11, ServiceID: 2, Date: "2026-09-15", Time: "14:00",
		IsAvailable: true, MaxBookings: 2, CurrentBookings: 0,
	}
	notifier := &fakeNotifier{}

	slotID := uint(11)
	sub := testPipeline(repo, notifier).ForCustomer(1, &slotID)

	res, err := sub.Submit(context.Background(), confirmedDraft())
	require.NoError(t, err)

	assert.NotZero(t, res.BookingID)
	assert.Empty(t, res.EffectErrors)

	assert.Equal(t, uint(1), repo.slots[11].CurrentBookings, "slot reserved after commit")
	assert.Equal(t, []uint{res.BookingID}, notifier.bookingEmails)
}

func TestSubmitEmailFailureStillSucceeds(t *testing.T) {
	repo := seededRepo()
	notifier := &fakeNotifier{err: httperr.ErrBusiness("smtp_down")}

	sub := testPipeline(repo, notifier).ForCustomer(1, nil)

	res, err := sub.Submit(context.Background(), confirmedDraft())
	require.NoError(t, err, "a failed email never fails the committed booking")

	require.Len(t, res.EffectErrors, 1)
	assert.Contains(t, res.EffectErrors[0], "send_booking_emails")

	require.Len(t, repo.bookings, 1)
}

func TestSubmitFullSlotReportedAsEffectFailure(t *testing.T) {
	repo := seededRepo()
	repo.slots[11] = &models.AdminSlot{
		ID: 11, ServiceID: 2, Date: "2026-09-15", Time: "14:00",
		IsAvailable: true, MaxBookings: 1, CurrentBookings: 1,
	}
	notifier := &fakeNotifier{}

	slotID := uint(11)
	sub := testPipeline(repo, notifier).ForCustomer(1, &slotID)

	res, err := sub.Submit(context.Background(), confirmedDraft())
	require.NoError(t, err)

	require.NotEmpty(t, res.EffectErrors)
	assert.Contains(t, res.EffectErrors[0], "reserve_slot")
	assert.Len(t, repo.bookings, 1, "the booking itself is committed")
}

func TestSubmitValidationFailureCreatesNothing(t *testing.T) {
	repo := seededRepo()
	notifier := &fakeNotifier{}

	sub := testPipeline(repo, notifier).ForCustomer(1, nil)

	d := confirmedDraft()
	d.PaymentMethod = "card"

	_, err := sub.Submit(context.Background(), d)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
	assert.Empty(t, repo.bookings)
	assert.Empty(t, notifier.bookingEmails)
}

func TestSubmitCreatesAddressFromSelection(t *testing.T) {
	repo := seededRepo()
	notifier := &fakeNotifier{}

	sub := testPipeline(repo, notifier).ForCustomer(1, nil)

	d := confirmedDraft()
	d.Address = &wizard.AddressSelection{Title: "Office", Address: "Olaya St"}

	res, err := sub.Submit(context.Background(), d)
	require.NoError(t, err)

	b := repo.bookings[res.BookingID]
	created, ok := repo.addresses[b.AddressID]
	require.True(t, ok)
	assert.Equal(t, "Office", created.Title)
}

func TestSlotLookupMapsAvailability(t *testing.T) {
	repo := seededRepo()
	staffID := uint(4)
	repo.slots[11] = &models.AdminSlot{
		ID: 11, ServiceID: 2, Date: "2099-01-10", Time: "14:00",
		IsAvailable: true, MaxBookings: 3, CurrentBookings: 1,
		StaffID: &staffID,
	}

	lookup := NewSlotLookup(NewGetAvailability(repo))

	slots, err := lookup.AvailableSlots(context.Background(), 2, "2099-01-10")
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, uint(11), slots[0].ID)
	assert.Equal(t, "14:00", slots[0].Time)
	assert.Equal(t, uint(2), slots[0].Remaining)
	assert.Equal(t, &staffID, slots[0].StaffID)
}
