package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agentix_travel/internal/app"
	"agentix_travel/internal/domain"
)

type Handlers struct {
	Search  *app.SearchService
	Booking *app.BookingService
	Chat    *app.ChatService
	Repo    domain.BookingRepository // nil when persistence is disabled
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/hotels/{id}/rates", h.getRates)
	s.mux.Get("/v1/destinations/suggest", h.suggestDestinations)

	s.mux.Post("/v1/prebook", h.prebook)
	s.mux.Delete("/v1/prebook/{prebookId}", h.cancelPrebook)
	s.mux.Post("/v1/book", h.book)
	s.mux.Get("/v1/payment/return", h.paymentReturn)

	s.mux.Post("/v1/chat", h.chat)

	s.mux.Get("/v1/bookings/{bookingId}", h.getBooking)
	s.mux.Get("/v1/customers/{email}/bookings", h.listCustomerBookings)
	s.mux.Get("/v1/stats/commission", h.commissionStats)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain sentinels onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrPendingNotFound):
		writeProblem(w, http.StatusGone, "Session Expired", "this payment session was already completed or has expired")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusBadGateway, "Supplier Rejected Request", "the booking supplier rejected our credentials")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func intQuery(r *http.Request, name string, def int) int {
	if s := r.URL.Query().Get(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

/********** discovery **********/

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	destination := q.Get("destination")
	if destination == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "destination is required")
		return
	}
	res, err := h.Search.Search(r.Context(), domain.SearchParams{
		Destination: destination,
		CheckIn:     q.Get("checkIn"),
		CheckOut:    q.Get("checkOut"),
		Guests:      intQuery(r, "guests", 2),
		Limit:       intQuery(r, "limit", 0),
		Offset:      intQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, res)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Search.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, hotel)
}

func (h *Handlers) getRates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rates, err := h.Search.GetRates(r.Context(),
		chi.URLParam(r, "id"),
		q.Get("checkIn"),
		q.Get("checkOut"),
		intQuery(r, "guests", 2),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rates": rates})
}

func (h *Handlers) suggestDestinations(w http.ResponseWriter, r *http.Request) {
	suggestions := h.Search.SuggestDestinations(r.URL.Query().Get("q"), intQuery(r, "limit", 0))
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

/********** booking flow **********/

type prebookResponse struct {
	Step          app.Step                    `json:"step"`
	PrebookID     string                      `json:"prebookId,omitempty"`
	TransactionID string                      `json:"transactionId,omitempty"`
	SecretKey     string                      `json:"secretKey,omitempty"`
	ReturnURL     string                      `json:"returnUrl,omitempty"`
	Confirmation  *domain.BookingConfirmation `json:"confirmation,omitempty"`
}

func (h *Handlers) prebook(w http.ResponseWriter, r *http.Request) {
	var in app.StartInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	res, err := h.Booking.Start(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prebookResponse{
		Step:          res.Step,
		PrebookID:     res.Session.PrebookID,
		TransactionID: res.Session.TransactionID,
		SecretKey:     res.Session.SecretKey,
		ReturnURL:     res.ReturnURL,
		Confirmation:  res.Confirmation,
	})
}

func (h *Handlers) cancelPrebook(w http.ResponseWriter, r *http.Request) {
	h.Booking.Reset(r.Context(), chi.URLParam(r, "prebookId"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	var p domain.PendingBooking
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	conf, err := h.Booking.Finalize(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}

func (h *Handlers) paymentReturn(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("payment_complete") != "true" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "payment_complete must be true")
		return
	}
	conf, err := h.Booking.Resume(r.Context(), q.Get("prebook_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}

/********** support chat **********/

type chatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history,omitempty"`
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	if req.Message == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "message is required")
		return
	}
	writeJSON(w, http.StatusOK, h.Chat.Reply(r.Context(), req.History, req.Message))
}

/********** persisted bookings **********/

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Persistence Disabled", "booking history is not available without a database")
		return
	}
	rec, err := h.Repo.GetBooking(r.Context(), chi.URLParam(r, "bookingId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) listCustomerBookings(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Persistence Disabled", "booking history is not available without a database")
		return
	}
	recs, err := h.Repo.ListCustomerBookings(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, err)
		return
	}
	if recs == nil {
		recs = []domain.BookingRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": recs})
}

func (h *Handlers) commissionStats(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Persistence Disabled", "stats are not available without a database")
		return
	}
	stats, err := h.Repo.CommissionStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
