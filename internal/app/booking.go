package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"agentix_travel/internal/adapters/observability"
	"agentix_travel/internal/domain"
)

// Step is a position in the booking flow. The flow is linear with two
// escapes: error is reachable from any non-terminal step, and reset
// returns to selecting from anywhere.
type Step string

const (
	StepSelecting       Step = "selecting"
	StepDetails         Step = "details"
	StepProcessing      Step = "processing"
	StepAwaitingPayment Step = "awaiting_payment"
	StepConfirmed       Step = "confirmed"
	StepError           Step = "error"
)

var transitions = map[Step][]Step{
	StepSelecting:       {StepDetails},
	StepDetails:         {StepProcessing},
	StepProcessing:      {StepAwaitingPayment, StepConfirmed},
	StepAwaitingPayment: {StepProcessing},
	StepError:           {StepDetails},
}

// CanTransition reports whether moving from one step to the next is
// legal. Reset (back to selecting) and failure (to error) are always
// allowed from non-terminal steps.
func CanTransition(from, to Step) bool {
	if from == StepConfirmed {
		return false
	}
	if to == StepError || to == StepSelecting {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingService drives prebook → (external payment) → finalize →
// persist. At most one attempt is in flight per session; the pending
// snapshot is the only state carried across the payment hand-off.
type BookingService struct {
	supplier domain.SupplierClient
	repo     domain.BookingRepository // nil disables persistence
	pending  domain.PendingStore

	pendingTTL time.Duration
	returnBase string

	schemaOnce sync.Once
}

func NewBookingService(supplier domain.SupplierClient, repo domain.BookingRepository, pending domain.PendingStore, pendingTTL time.Duration, returnBase string) *BookingService {
	return &BookingService{
		supplier:   supplier,
		repo:       repo,
		pending:    pending,
		pendingTTL: pendingTTL,
		returnBase: returnBase,
	}
}

// StartInput carries the selected rate, the holder, and the intent
// snapshot that must survive the payment hand-off.
type StartInput struct {
	OfferID       string              `json:"offerId"`
	Holder        domain.GuestDetails `json:"holder"`
	Guests        []domain.Guest      `json:"guests,omitempty"`
	HotelID       string              `json:"hotelId"`
	HotelName     string              `json:"hotelName"`
	RoomType      string              `json:"roomType"`
	CheckIn       string              `json:"checkIn"`
	CheckOut      string              `json:"checkOut"`
	GuestCount    int                 `json:"guestCount"`
	Nights        int                 `json:"nights"`
	OriginalPrice float64             `json:"originalPrice"`
	TotalPrice    float64             `json:"totalPrice"`
	Currency      string              `json:"currency"`
}

type StartResult struct {
	Step         Step
	Session      domain.PrebookSession
	ReturnURL    string                      // set when awaiting external payment
	Confirmation *domain.BookingConfirmation // set when finalized without payment
}

// Start validates guest details, places the prebook hold, and either
// finalizes immediately (demo sentinel) or parks the snapshot for the
// external payment page.
func (s *BookingService) Start(ctx context.Context, in StartInput) (StartResult, error) {
	if err := validateHolder(in.Holder); err != nil {
		return StartResult{Step: StepDetails}, err
	}
	if in.OfferID == "" {
		return StartResult{Step: StepDetails}, fmt.Errorf("%w: offerId is required", domain.ErrValidation)
	}

	sess, err := s.supplier.Prebook(ctx, in.OfferID)
	if err != nil {
		observability.ObserveBooking("prebook_failed")
		return StartResult{Step: StepError}, fmt.Errorf("prebook: %w", err)
	}

	p := pendingFrom(sess, in)

	if sess.SecretKey == domain.DemoSecretKey {
		// No payment hand-off needed; go straight to finalize.
		conf, err := s.Finalize(ctx, p)
		if err != nil {
			return StartResult{Step: StepError}, err
		}
		return StartResult{Step: StepConfirmed, Session: sess, Confirmation: &conf}, nil
	}

	if err := s.pending.SavePending(ctx, p, s.pendingTTL); err != nil {
		observability.ObserveBooking("prebook_failed")
		return StartResult{Step: StepError}, fmt.Errorf("save pending booking: %w", err)
	}
	return StartResult{
		Step:      StepAwaitingPayment,
		Session:   sess,
		ReturnURL: s.returnURL(sess.PrebookID),
	}, nil
}

// Resume re-enters the flow after the payment redirect. The snapshot
// read is delete-on-read, so a second load of the return page gets
// ErrPendingNotFound instead of a duplicate finalize.
func (s *BookingService) Resume(ctx context.Context, prebookID string) (domain.BookingConfirmation, error) {
	if prebookID == "" {
		return domain.BookingConfirmation{}, fmt.Errorf("%w: prebookId is required", domain.ErrValidation)
	}
	p, ok, err := s.pending.ConsumePending(ctx, prebookID)
	if err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("consume pending booking: %w", err)
	}
	if !ok {
		return domain.BookingConfirmation{}, domain.ErrPendingNotFound
	}
	return s.Finalize(ctx, p)
}

// Finalize calls the supplier Book operation and records the result.
// Persistence is best-effort: the supplier confirmation is
// authoritative and a local write failure never surfaces.
func (s *BookingService) Finalize(ctx context.Context, p domain.PendingBooking) (domain.BookingConfirmation, error) {
	if p.PrebookID == "" || p.TransactionID == "" {
		return domain.BookingConfirmation{}, fmt.Errorf("%w: prebookId and transactionId are required", domain.ErrValidation)
	}
	if err := validateHolder(p.Holder); err != nil {
		return domain.BookingConfirmation{}, err
	}

	guests := p.Guests
	if len(guests) == 0 {
		guests = []domain.Guest{{FirstName: p.Holder.FirstName, LastName: p.Holder.LastName}}
	}

	conf, err := s.supplier.Book(ctx, domain.BookRequest{
		PrebookID:       p.PrebookID,
		TransactionID:   p.TransactionID,
		Holder:          p.Holder,
		Guests:          guests,
		ClientReference: "agentix-" + uuid.NewString(),
	})
	if err != nil {
		observability.ObserveBooking("book_failed")
		return domain.BookingConfirmation{}, fmt.Errorf("book: %w", err)
	}
	if conf.BookingID == "" {
		conf.BookingID = "BK-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if conf.Status == "" {
		conf.Status = "confirmed"
	}
	observability.ObserveBooking("confirmed")

	s.persist(ctx, p, conf)
	return conf, nil
}

// Reset abandons the flow: the snapshot is dropped and no compensating
// call is made, the supplier-side hold simply expires.
func (s *BookingService) Reset(ctx context.Context, prebookID string) {
	if prebookID == "" {
		return
	}
	if err := s.pending.DeletePending(ctx, prebookID); err != nil {
		log.Warn().Err(err).Str("prebook_id", prebookID).Msg("delete pending booking failed")
	}
}

func (s *BookingService) returnURL(prebookID string) string {
	return fmt.Sprintf("%s?payment_complete=true&prebook_id=%s", s.returnBase, url.QueryEscape(prebookID))
}

func (s *BookingService) persist(ctx context.Context, p domain.PendingBooking, conf domain.BookingConfirmation) {
	if s.repo == nil {
		return
	}
	s.schemaOnce.Do(func() {
		if err := s.repo.EnsureSchema(ctx); err != nil {
			log.Error().Err(err).Msg("ensure schema failed")
		}
	})

	customerID, err := s.repo.UpsertCustomer(ctx, domain.Customer{
		Email:     p.Holder.Email,
		FirstName: p.Holder.FirstName,
		LastName:  p.Holder.LastName,
		Phone:     p.Holder.Phone,
	})
	if err != nil {
		observability.ObserveBooking("persist_failed")
		log.Error().Err(err).Str("booking_id", conf.BookingID).Msg("customer upsert failed")
		return
	}

	err = s.repo.SaveBooking(ctx, domain.BookingRecord{
		BookingID:        conf.BookingID,
		ConfirmationCode: conf.ConfirmationCode,
		CustomerID:       customerID,
		HotelID:          p.HotelID,
		HotelName:        p.HotelName,
		RoomType:         p.RoomType,
		CheckIn:          p.CheckIn,
		CheckOut:         p.CheckOut,
		Guests:           p.GuestCount,
		Nights:           p.Nights,
		OriginalPrice:    p.OriginalPrice,
		MarkupPrice:      p.TotalPrice,
		Commission:       commission(p.OriginalPrice, p.TotalPrice),
		Currency:         currencyOr(p.Currency, "USD"),
		Status:           conf.Status,
		PrebookID:        p.PrebookID,
		TransactionID:    p.TransactionID,
	})
	if err != nil {
		observability.ObserveBooking("persist_failed")
		log.Error().Err(err).Str("booking_id", conf.BookingID).Msg("save booking failed")
		return
	}
	log.Info().Str("booking_id", conf.BookingID).Msg("booking saved")
}

// commission is the spread between the charged and wholesale price.
// Not clamped: a total below the original goes negative, same as the
// upstream report this feeds.
func commission(originalPrice, totalPrice float64) float64 {
	if totalPrice == 0 {
		return 0
	}
	if originalPrice == 0 {
		originalPrice = totalPrice
	}
	return totalPrice - originalPrice
}

func validateHolder(h domain.GuestDetails) error {
	for _, f := range []struct{ name, value string }{
		{"firstName", h.FirstName},
		{"lastName", h.LastName},
		{"email", h.Email},
		{"phone", h.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	return nil
}

func currencyOr(c, def string) string {
	if c == "" {
		return def
	}
	return c
}

func pendingFrom(sess domain.PrebookSession, in StartInput) domain.PendingBooking {
	return domain.PendingBooking{
		PrebookID:     sess.PrebookID,
		TransactionID: sess.TransactionID,
		Holder:        in.Holder,
		Guests:        in.Guests,
		HotelID:       in.HotelID,
		HotelName:     in.HotelName,
		RoomType:      in.RoomType,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		GuestCount:    in.GuestCount,
		Nights:        in.Nights,
		OriginalPrice: in.OriginalPrice,
		TotalPrice:    in.TotalPrice,
		Currency:      in.Currency,
	}
}
