package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/audit"
	"github.com/GlamourSalonSA/salon-booking/internal/httperr"
	"github.com/GlamourSalonSA/salon-booking/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository for the use case tests. Only the
// behavior a test seeds is there; everything else is a not-found.
type fakeRepo struct {
	customers map[uint]*models.Customer
	services  map[uint]*models.Service
	addresses map[uint]*models.Address
	coupons   map[uint]*models.Coupon
	couponsBy map[string]*models.Coupon
	slots     map[uint]*models.AdminSlot
	bookings  map[uint]*models.Booking
	history   []models.BookingRescheduleHistory

	nextBookingID uint
	nextAddressID uint

	couponUsage    map[uint]uint
	couponUsageErr error

	createBookingErr error
	reminderMarked   []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers:     map[uint]*models.Customer{},
		services:      map[uint]*models.Service{},
		addresses:     map[uint]*models.Address{},
		coupons:       map[uint]*models.Coupon{},
		couponsBy:     map[string]*models.Coupon{},
		slots:         map[uint]*models.AdminSlot{},
		bookings:      map[uint]*models.Booking{},
		couponUsage:   map[uint]uint{},
		nextBookingID: 1,
		nextAddressID: 100,
	}
}

func (f *fakeRepo) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeRepo) GetAddressForCustomer(ctx context.Context, addressID, customerID uint) (*models.Address, error) {
	if a, ok := f.addresses[addressID]; ok && a.CustomerID == customerID {
		return a, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateAddress(ctx context.Context, addr *models.Address) error {
	addr.ID = f.nextAddressID
	f.nextAddressID++
	f.addresses[addr.ID] = addr
	return nil
}

func (f *fakeRepo) ListAddressesForCustomer(ctx context.Context, customerID uint) ([]models.Address, error) {
	var out []models.Address
	for _, a := range f.addresses {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	if c, ok := f.couponsBy[code]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetCouponByID(ctx context.Context, id uint) (*models.Coupon, error) {
	if c, ok := f.coupons[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) IncrementCouponUsage(ctx context.Context, couponID uint) error {
	if f.couponUsageErr != nil {
		return f.couponUsageErr
	}
	c, ok := f.coupons[couponID]
	if !ok {
		return errNotFound
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return httperr.ErrBusiness("usage_limit_reached")
	}
	c.UsedCount++
	f.couponUsage[couponID]++
	return nil
}

func (f *fakeRepo) ListOpenSlots(ctx context.Context, serviceID uint, date string) ([]models.AdminSlot, error) {
	var out []models.AdminSlot
	for _, s := range f.slots {
		if s.ServiceID == serviceID && s.Date == date && s.HasCapacity() {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReserveSlot(ctx context.Context, slotID uint) (*models.AdminSlot, error) {
	s, ok := f.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	if !s.HasCapacity() {
		return nil, httperr.ErrBusiness("slot_full")
	}
	s.CurrentBookings++
	return s, nil
}

func (f *fakeRepo) ReleaseSlot(ctx context.Context, slotID uint) error {
	s, ok := f.slots[slotID]
	if !ok {
		return httperr.ErrBusiness("slot_not_found")
	}
	if s.CurrentBookings > 0 {
		s.CurrentBookings--
	}
	return nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createBookingErr != nil {
		return f.createBookingErr
	}
	b.ID = f.nextBookingID
	f.nextBookingID++
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) GetBookingForCustomer(ctx context.Context, bookingID, customerID uint) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok && b.CustomerID == customerID {
		return b, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, bookingID uint) (*models.Booking, error) {
	if b, ok := f.bookings[bookingID]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListBookingsForCustomer(ctx context.Context, customerID uint, status, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		if date != "" && b.BookingDate != date {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) CreateRescheduleHistory(ctx context.Context, h *models.BookingRescheduleHistory) error {
	f.history = append(f.history, *h)
	return nil
}

func (f *fakeRepo) ListRescheduleHistory(ctx context.Context, bookingID uint) ([]models.BookingRescheduleHistory, error) {
	var out []models.BookingRescheduleHistory
	for _, h := range f.history {
		if h.BookingID == bookingID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsDueReminder(ctx context.Context, fromDate, toDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ReminderSent {
			continue
		}
		if b.BookingDate >= fromDate && b.BookingDate <= toDate {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkReminderSent(ctx context.Context, bookingID uint) error {
	if b, ok := f.bookings[bookingID]; ok {
		b.ReminderSent = true
	}
	f.reminderMarked = append(f.reminderMarked, bookingID)
	return nil
}

// ---------- audit ----------

type nopSink struct{}

func (nopSink) Log(customerID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

// ---------- notifications ----------

type fakeNotifier struct {
	bookingEmails     []uint
	rescheduleNotices []uint
	err               error
}

func (f *fakeNotifier) SendBookingEmails(ctx context.Context, b *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookingEmails = append(f.bookingEmails, b.ID)
	return nil
}

func (f *fakeNotifier) SendRescheduleNotice(ctx context.Context, b *models.Booking, oldDate, oldTime string) error {
	if f.err != nil {
		return f.err
	}
	f.rescheduleNotices = append(f.rescheduleNotices, b.ID)
	return nil
}
