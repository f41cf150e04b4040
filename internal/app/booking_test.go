package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agentix_travel/internal/domain"
)

type fakeSupplier struct {
	prebookSession domain.PrebookSession
	prebookErr     error
	bookErr        error
	confirmation   domain.BookingConfirmation

	bookCalls []domain.BookRequest
}

func (f *fakeSupplier) SearchHotels(ctx context.Context, countryCode, cityName string) ([]map[string]any, error) {
	return nil, nil
}

func (f *fakeSupplier) GetHotel(ctx context.Context, hotelID string) (map[string]any, error) {
	return nil, nil
}

func (f *fakeSupplier) GetHotelRates(ctx context.Context, hotelID, checkIn, checkOut string, guests int) (map[string]any, error) {
	return nil, nil
}

func (f *fakeSupplier) Prebook(ctx context.Context, offerID string) (domain.PrebookSession, error) {
	return f.prebookSession, f.prebookErr
}

func (f *fakeSupplier) Book(ctx context.Context, req domain.BookRequest) (domain.BookingConfirmation, error) {
	f.bookCalls = append(f.bookCalls, req)
	return f.confirmation, f.bookErr
}

type fakePending struct {
	saved map[string]domain.PendingBooking
}

func newFakePending() *fakePending {
	return &fakePending{saved: map[string]domain.PendingBooking{}}
}

func (f *fakePending) SavePending(ctx context.Context, p domain.PendingBooking, ttl time.Duration) error {
	f.saved[p.PrebookID] = p
	return nil
}

func (f *fakePending) ConsumePending(ctx context.Context, prebookID string) (domain.PendingBooking, bool, error) {
	p, ok := f.saved[prebookID]
	if !ok {
		return domain.PendingBooking{}, false, nil
	}
	delete(f.saved, prebookID)
	return p, true, nil
}

func (f *fakePending) DeletePending(ctx context.Context, prebookID string) error {
	delete(f.saved, prebookID)
	return nil
}

type fakeRepo struct {
	saveErr error

	customers []domain.Customer
	bookings  []domain.BookingRecord
}

func (f *fakeRepo) EnsureSchema(ctx context.Context) error { return nil }

func (f *fakeRepo) UpsertCustomer(ctx context.Context, c domain.Customer) (int64, error) {
	f.customers = append(f.customers, c)
	return int64(len(f.customers)), nil
}

func (f *fakeRepo) SaveBooking(ctx context.Context, b domain.BookingRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetBooking(ctx context.Context, bookingID string) (domain.BookingRecord, error) {
	return domain.BookingRecord{}, domain.ErrNotFound
}

func (f *fakeRepo) ListCustomerBookings(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	return nil, nil
}

func (f *fakeRepo) CommissionStats(ctx context.Context) (domain.CommissionStats, error) {
	return domain.CommissionStats{}, nil
}

func validInput() StartInput {
	return StartInput{
		OfferID: "offer-1",
		Holder: domain.GuestDetails{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44 20 0000 0000",
		},
		HotelID:       "hotel-1",
		HotelName:     "Table Bay",
		RoomType:      "Deluxe Double",
		CheckIn:       "2026-09-01",
		CheckOut:      "2026-09-04",
		GuestCount:    2,
		Nights:        3,
		OriginalPrice: 300,
		TotalPrice:    330,
		Currency:      "USD",
	}
}

func newBookingService(supplier domain.SupplierClient, repo domain.BookingRepository, pending domain.PendingStore) *BookingService {
	return NewBookingService(supplier, repo, pending, 30*time.Minute, "http://localhost:8080/v1/payment/return")
}

func TestStartRejectsIncompleteHolder(t *testing.T) {
	supplier := &fakeSupplier{}
	svc := newBookingService(supplier, nil, newFakePending())

	in := validInput()
	in.Holder.Email = ""
	res, err := svc.Start(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Contains(t, err.Error(), "email")
	require.Equal(t, StepDetails, res.Step)
	require.Empty(t, supplier.bookCalls)
}

func TestStartDemoSentinelFinalizesImmediately(t *testing.T) {
	supplier := &fakeSupplier{
		prebookSession: domain.PrebookSession{
			PrebookID:     "pb-1",
			TransactionID: "txn-1",
			SecretKey:     domain.DemoSecretKey,
		},
		confirmation: domain.BookingConfirmation{BookingID: "BK-1", Status: "confirmed"},
	}
	pending := newFakePending()
	svc := newBookingService(supplier, nil, pending)

	res, err := svc.Start(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, StepConfirmed, res.Step)
	require.NotNil(t, res.Confirmation)
	require.Equal(t, "BK-1", res.Confirmation.BookingID)
	require.Len(t, supplier.bookCalls, 1)
	require.Empty(t, pending.saved, "demo path must not park a snapshot")
}

func TestStartParksSnapshotUntilPaymentReturns(t *testing.T) {
	supplier := &fakeSupplier{
		prebookSession: domain.PrebookSession{
			PrebookID:     "pb-2",
			TransactionID: "txn-2",
			SecretKey:     "pk_live_real",
		},
	}
	pending := newFakePending()
	svc := newBookingService(supplier, nil, pending)

	res, err := svc.Start(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, StepAwaitingPayment, res.Step)
	require.Contains(t, res.ReturnURL, "payment_complete=true")
	require.Contains(t, res.ReturnURL, "prebook_id=pb-2")
	require.Empty(t, supplier.bookCalls, "finalize must wait for the payment return")

	snap, ok := pending.saved["pb-2"]
	require.True(t, ok)
	require.Equal(t, "txn-2", snap.TransactionID)
	require.Equal(t, "Table Bay", snap.HotelName)
}

func TestResumeConsumesSnapshotExactlyOnce(t *testing.T) {
	supplier := &fakeSupplier{
		prebookSession: domain.PrebookSession{PrebookID: "pb-3", TransactionID: "txn-3", SecretKey: "pk"},
		confirmation:   domain.BookingConfirmation{BookingID: "BK-3", Status: "confirmed"},
	}
	pending := newFakePending()
	svc := newBookingService(supplier, nil, pending)

	_, err := svc.Start(context.Background(), validInput())
	require.NoError(t, err)

	conf, err := svc.Resume(context.Background(), "pb-3")
	require.NoError(t, err)
	require.Equal(t, "BK-3", conf.BookingID)
	require.Len(t, supplier.bookCalls, 1)

	_, err = svc.Resume(context.Background(), "pb-3")
	require.ErrorIs(t, err, domain.ErrPendingNotFound)
	require.Len(t, supplier.bookCalls, 1, "replayed return must not finalize again")
}

func TestResumeUnknownPrebook(t *testing.T) {
	svc := newBookingService(&fakeSupplier{}, nil, newFakePending())
	_, err := svc.Resume(context.Background(), "pb-missing")
	require.ErrorIs(t, err, domain.ErrPendingNotFound)
}

func TestFinalizePersistFailureDoesNotFailBooking(t *testing.T) {
	supplier := &fakeSupplier{
		confirmation: domain.BookingConfirmation{BookingID: "BK-4", Status: "confirmed"},
	}
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	svc := newBookingService(supplier, repo, newFakePending())

	conf, err := svc.Finalize(context.Background(), domain.PendingBooking{
		PrebookID:     "pb-4",
		TransactionID: "txn-4",
		Holder:        validInput().Holder,
		TotalPrice:    330,
		OriginalPrice: 300,
	})
	require.NoError(t, err)
	require.Equal(t, "BK-4", conf.BookingID)
	require.Len(t, repo.customers, 1, "customer upsert still attempted")
}

func TestFinalizePersistsCommission(t *testing.T) {
	supplier := &fakeSupplier{
		confirmation: domain.BookingConfirmation{BookingID: "BK-5", ConfirmationCode: "CONF-5", Status: "confirmed"},
	}
	repo := &fakeRepo{}
	svc := newBookingService(supplier, repo, newFakePending())

	_, err := svc.Finalize(context.Background(), domain.PendingBooking{
		PrebookID:     "pb-5",
		TransactionID: "txn-5",
		Holder:        validInput().Holder,
		HotelID:       "hotel-1",
		HotelName:     "Table Bay",
		OriginalPrice: 300,
		TotalPrice:    330,
		Currency:      "ZAR",
	})
	require.NoError(t, err)
	require.Len(t, repo.bookings, 1)
	rec := repo.bookings[0]
	require.Equal(t, "BK-5", rec.BookingID)
	require.InDelta(t, 30, rec.Commission, 0.001)
	require.Equal(t, "ZAR", rec.Currency)
	require.Equal(t, int64(1), rec.CustomerID)
}

func TestFinalizeDefaultsGuestsToHolder(t *testing.T) {
	supplier := &fakeSupplier{
		confirmation: domain.BookingConfirmation{BookingID: "BK-6", Status: "confirmed"},
	}
	svc := newBookingService(supplier, nil, newFakePending())

	_, err := svc.Finalize(context.Background(), domain.PendingBooking{
		PrebookID:     "pb-6",
		TransactionID: "txn-6",
		Holder:        validInput().Holder,
	})
	require.NoError(t, err)
	require.Len(t, supplier.bookCalls, 1)
	require.Equal(t, []domain.Guest{{FirstName: "Ada", LastName: "Lovelace"}}, supplier.bookCalls[0].Guests)
}

func TestFinalizeFillsMissingBookingID(t *testing.T) {
	supplier := &fakeSupplier{confirmation: domain.BookingConfirmation{}}
	svc := newBookingService(supplier, nil, newFakePending())

	conf, err := svc.Finalize(context.Background(), domain.PendingBooking{
		PrebookID:     "pb-7",
		TransactionID: "txn-7",
		Holder:        validInput().Holder,
	})
	require.NoError(t, err)
	require.True(t, len(conf.BookingID) > 3 && conf.BookingID[:3] == "BK-")
	require.Equal(t, "confirmed", conf.Status)
}

func TestResetDropsSnapshot(t *testing.T) {
	pending := newFakePending()
	pending.saved["pb-8"] = domain.PendingBooking{PrebookID: "pb-8"}
	svc := newBookingService(&fakeSupplier{}, nil, pending)

	svc.Reset(context.Background(), "pb-8")
	require.Empty(t, pending.saved)
}

func TestCommission(t *testing.T) {
	require.Equal(t, 0.0, commission(300, 0))
	require.Equal(t, 0.0, commission(0, 330))
	require.InDelta(t, 30, commission(300, 330), 0.001)
	require.InDelta(t, -20, commission(350, 330), 0.001)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Step
		want     bool
	}{
		{StepSelecting, StepDetails, true},
		{StepDetails, StepProcessing, true},
		{StepProcessing, StepAwaitingPayment, true},
		{StepProcessing, StepConfirmed, true},
		{StepAwaitingPayment, StepProcessing, true},
		{StepDetails, StepConfirmed, false},
		{StepSelecting, StepAwaitingPayment, false},
		{StepAwaitingPayment, StepError, true},
		{StepDetails, StepSelecting, true},
		{StepConfirmed, StepSelecting, false},
		{StepConfirmed, StepError, false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
