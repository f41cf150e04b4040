package domain

import (
	"context"
	"time"
)

// SupplierClient is the upstream hotel distribution API. The demo
// catalog implements the same contract, so demo mode is a first-class
// operating mode rather than an error path.
type SupplierClient interface {
	SearchHotels(ctx context.Context, countryCode, cityName string) ([]map[string]any, error)
	GetHotel(ctx context.Context, hotelID string) (map[string]any, error)
	GetHotelRates(ctx context.Context, hotelID, checkIn, checkOut string, guests int) (map[string]any, error)
	Prebook(ctx context.Context, offerID string) (PrebookSession, error)
	Book(ctx context.Context, req BookRequest) (BookingConfirmation, error)
}

// BookRequest finalizes a held reservation.
type BookRequest struct {
	PrebookID       string
	TransactionID   string
	Holder          GuestDetails
	Guests          []Guest
	ClientReference string
}

// BookingRepository persists customers and bookings. Persistence is
// best-effort: callers must never fail a confirmed supplier booking on
// a repository error.
type BookingRepository interface {
	EnsureSchema(ctx context.Context) error
	UpsertCustomer(ctx context.Context, c Customer) (int64, error)
	SaveBooking(ctx context.Context, b BookingRecord) error
	GetBooking(ctx context.Context, bookingID string) (BookingRecord, error)
	ListCustomerBookings(ctx context.Context, email string) ([]BookingRecord, error)
	CommissionStats(ctx context.Context) (CommissionStats, error)
}

// PendingStore holds the single-slot pending-booking snapshot across the
// external payment hand-off. Consume is delete-on-read: a snapshot can
// be read back at most once.
type PendingStore interface {
	SavePending(ctx context.Context, p PendingBooking, ttl time.Duration) error
	ConsumePending(ctx context.Context, prebookID string) (PendingBooking, bool, error)
	DeletePending(ctx context.Context, prebookID string) error
}

// ChatCompleter forwards a message plus bounded history to a language
// model completion endpoint.
type ChatCompleter interface {
	Complete(ctx context.Context, system string, history []ChatTurn, message string) (string, error)
}

// ChatTurn is one prior message in a support conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
