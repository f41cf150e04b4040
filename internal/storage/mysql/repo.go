package mysql

import (
	"context"
	"database/sql"

	"agentix_travel/internal/domain"
)

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the tables on first use, so a fresh database
// needs no migration step before the first booking.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{createCustomersSQL, createBookingsSQL} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// UpsertCustomer inserts or refreshes the customer keyed by email and
// returns the row id either way.
func (r *Repo) UpsertCustomer(ctx context.Context, c domain.Customer) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertCustomerSQL,
		c.Email,
		c.FirstName,
		c.LastName,
		nullStr(c.Phone),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) SaveBooking(ctx context.Context, b domain.BookingRecord) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.BookingID,
		nullStr(b.ConfirmationCode),
		b.CustomerID,
		nullStr(b.HotelID),
		nullStr(b.HotelName),
		nullStr(b.RoomType),
		nullStr(b.CheckIn),
		nullStr(b.CheckOut),
		b.Guests,
		b.Nights,
		b.OriginalPrice,
		b.MarkupPrice,
		b.Commission,
		nullStr(b.Currency),
		b.Status,
		nullStr(b.PrebookID),
		nullStr(b.TransactionID),
	)
	return err
}

func (r *Repo) GetBooking(ctx context.Context, bookingID string) (domain.BookingRecord, error) {
	row := r.db.QueryRowContext(ctx, getBookingSQL, bookingID)
	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return domain.BookingRecord{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) ListCustomerBookings(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	rows, err := r.db.QueryContext(ctx, listCustomerBookingsSQL, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingRecord
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) CommissionStats(ctx context.Context) (domain.CommissionStats, error) {
	var s domain.CommissionStats
	err := r.db.QueryRowContext(ctx, commissionStatsSQL).Scan(
		&s.TotalBookings,
		&s.TotalCommission,
		&s.TotalRevenue,
		&s.AvgCommission,
	)
	return s, err
}

func scanBooking(scan func(...any) error) (domain.BookingRecord, error) {
	var b domain.BookingRecord
	var (
		confirmationCode sql.NullString
		customerID       sql.NullInt64
		hotelID          sql.NullString
		hotelName        sql.NullString
		roomType         sql.NullString
		checkIn          sql.NullString
		checkOut         sql.NullString
		guests           sql.NullInt64
		nights           sql.NullInt64
		originalPrice    sql.NullFloat64
		markupPrice      sql.NullFloat64
		commission       sql.NullFloat64
		currency         sql.NullString
		prebookID        sql.NullString
		transactionID    sql.NullString
		createdAt        sql.NullTime
	)
	if err := scan(
		&b.BookingID,
		&confirmationCode,
		&customerID,
		&hotelID,
		&hotelName,
		&roomType,
		&checkIn,
		&checkOut,
		&guests,
		&nights,
		&originalPrice,
		&markupPrice,
		&commission,
		&currency,
		&b.Status,
		&prebookID,
		&transactionID,
		&createdAt,
	); err != nil {
		return domain.BookingRecord{}, err
	}

	b.ConfirmationCode = confirmationCode.String
	b.CustomerID = customerID.Int64
	b.HotelID = hotelID.String
	b.HotelName = hotelName.String
	b.RoomType = roomType.String
	b.CheckIn = checkIn.String
	b.CheckOut = checkOut.String
	b.Guests = int(guests.Int64)
	b.Nights = int(nights.Int64)
	b.OriginalPrice = originalPrice.Float64
	b.MarkupPrice = markupPrice.Float64
	b.Commission = commission.Float64
	b.Currency = currency.String
	b.PrebookID = prebookID.String
	b.TransactionID = transactionID.String
	if createdAt.Valid {
		b.CreatedAt = createdAt.Time
	}
	return b, nil
}
