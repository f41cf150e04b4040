package domain

import "time"

// GuestDetails is the holder attached to a booking as primary contact.
type GuestDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Guest is an additional occupant on the reservation.
type Guest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PrebookSession is the result of a prebook call: a short-lived hold
// against supplier inventory plus the credential for the hosted payment
// widget. SecretKey equal to DemoSecretKey signals that no external
// payment step is required.
type PrebookSession struct {
	PrebookID     string `json:"prebookId"`
	TransactionID string `json:"transactionId"`
	SecretKey     string `json:"secretKey"`
}

// DemoSecretKey is the sentinel payment credential returned by the demo
// catalog; it short-circuits the external payment hand-off.
const DemoSecretKey = "demo-secret-key"

// PendingBooking is the full snapshot of booking intent written before
// control leaves the process for the external payment page. It is the
// only state that survives that boundary, and it must be consumed
// exactly once on return.
type PendingBooking struct {
	PrebookID     string       `json:"prebookId"`
	TransactionID string       `json:"transactionId"`
	Holder        GuestDetails `json:"holder"`
	Guests        []Guest      `json:"guests,omitempty"`
	HotelID       string       `json:"hotelId"`
	HotelName     string       `json:"hotelName"`
	RoomType      string       `json:"roomType"`
	CheckIn       string       `json:"checkIn"`
	CheckOut      string       `json:"checkOut"`
	GuestCount    int          `json:"guestCount"`
	Nights        int          `json:"nights"`
	OriginalPrice float64      `json:"originalPrice"`
	TotalPrice    float64      `json:"totalPrice"`
	Currency      string       `json:"currency"`
}

// BookingConfirmation is the terminal artifact of a successful booking.
type BookingConfirmation struct {
	BookingID        string `json:"bookingId"`
	ConfirmationCode string `json:"confirmationCode,omitempty"`
	Status           string `json:"status"`
}

// Customer is persisted uniquely by email; re-booking under the same
// email updates the record instead of duplicating it.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// BookingRecord is the append-only persisted booking row. Commission is
// MarkupPrice minus OriginalPrice, computed at save time.
type BookingRecord struct {
	BookingID        string
	ConfirmationCode string
	CustomerID       int64
	HotelID          string
	HotelName        string
	RoomType         string
	CheckIn          string
	CheckOut         string
	Guests           int
	Nights           int
	OriginalPrice    float64
	MarkupPrice      float64
	Commission       float64
	Currency         string
	Status           string
	PrebookID        string
	TransactionID    string
	CreatedAt        time.Time
}

// CommissionStats aggregates confirmed bookings for reporting.
type CommissionStats struct {
	TotalBookings   int64   `json:"totalBookings"`
	TotalCommission float64 `json:"totalCommission"`
	TotalRevenue    float64 `json:"totalRevenue"`
	AvgCommission   float64 `json:"avgCommission"`
}
