// Package liteapi is the HTTP client for the LiteAPI hotel
// distribution API: destination search, rates, prebook and book.
package liteapi

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"agentix_travel/internal/adapters/observability"
	"agentix_travel/internal/domain"
)

const searchLimit = 5000

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

// SearchHotels queries /data/hotels. Pass both countryCode and cityName
// for a city-scoped search, countryCode alone for a country-wide one,
// or cityName alone as the raw-text fallback.
func (c *Client) SearchHotels(ctx context.Context, countryCode, cityName string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(searchLimit))
	if countryCode != "" {
		q.Set("countryCode", countryCode)
	}
	if cityName != "" {
		q.Set("cityName", cityName)
	}

	var out map[string]any
	if err := c.get(ctx, c.base+"/data/hotels?"+q.Encode(), "search", &out); err != nil {
		return nil, err
	}
	return hotelList(out), nil
}

func (c *Client) GetHotel(ctx context.Context, hotelID string) (map[string]any, error) {
	u := c.base + "/data/hotel?hotelId=" + url.QueryEscape(hotelID)
	var out map[string]any
	if err := c.get(ctx, u, "hotel", &out); err != nil {
		return nil, err
	}
	if data, ok := out["data"].(map[string]any); ok {
		return data, nil
	}
	return out, nil
}

func (c *Client) GetHotelRates(ctx context.Context, hotelID, checkIn, checkOut string, guests int) (map[string]any, error) {
	body := map[string]any{
		"hotelIds":         []string{hotelID},
		"checkin":          checkIn,
		"checkout":         checkOut,
		"occupancies":      []map[string]any{{"adults": guests}},
		"currency":         "USD",
		"guestNationality": "US",
	}
	var out map[string]any
	if err := c.post(ctx, c.base+"/hotels/rates", "rates", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Prebook places a short-lived hold on the offer and opens a checkout
// session for the hosted payment widget.
func (c *Client) Prebook(ctx context.Context, offerID string) (domain.PrebookSession, error) {
	body := map[string]any{
		"offerId":       offerID,
		"usePaymentSdk": true,
	}
	var out map[string]any
	if err := c.post(ctx, c.base+"/rates/prebook", "prebook", body, &out); err != nil {
		return domain.PrebookSession{}, err
	}
	return domain.PrebookSession{
		PrebookID:     nestedStr(out, "prebookId"),
		TransactionID: nestedStr(out, "transactionId"),
		SecretKey:     nestedStr(out, "secretKey"),
	}, nil
}

// Book finalizes a held reservation. Never retried: the supplier call
// is not idempotent beyond the client reference.
func (c *Client) Book(ctx context.Context, req domain.BookRequest) (domain.BookingConfirmation, error) {
	ref := req.ClientReference
	if ref == "" {
		ref = "agentix-" + uuid.NewString()
	}
	guests := make([]map[string]string, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, map[string]string{"firstName": g.FirstName, "lastName": g.LastName})
	}
	body := map[string]any{
		"prebookId": req.PrebookID,
		"holder": map[string]string{
			"firstName": req.Holder.FirstName,
			"lastName":  req.Holder.LastName,
			"email":     req.Holder.Email,
		},
		"guests": guests,
		"payment": map[string]string{
			"method":        "TRANSACTION_ID",
			"transactionId": req.TransactionID,
		},
		"clientReference": ref,
	}
	var out map[string]any
	if err := c.post(ctx, c.base+"/rates/book", "book", body, &out); err != nil {
		return domain.BookingConfirmation{}, err
	}

	status := nestedStr(out, "status")
	if status == "" {
		status = "confirmed"
	}
	code := nestedStr(out, "supplierBookingId")
	if code == "" {
		code = nestedStr(out, "confirmationCode")
	}
	return domain.BookingConfirmation{
		BookingID:        nestedStr(out, "bookingId"),
		ConfirmationCode: code,
		Status:           status,
	}, nil
}

// ---- Internals ----

// hotelList tolerates the three response envelopes LiteAPI has shipped.
func hotelList(out map[string]any) []map[string]any {
	for _, key := range []string{"data", "hotels"} {
		if raw, ok := out[key].([]any); ok {
			return toMaps(raw)
		}
	}
	return nil
}

func toMaps(raw []any) []map[string]any {
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// nestedStr prefers data.<key>, falling back to a top-level key.
func nestedStr(out map[string]any, key string) string {
	if data, ok := out["data"].(map[string]any); ok {
		if s, ok := data[key].(string); ok && s != "" {
			return s
		}
	}
	if s, ok := out[key].(string); ok {
		return s
	}
	return ""
}

// get performs a GET with client-side rate limiting, retries on 429 and
// transient 5xx honoring Retry-After, and JSON decode into out.
func (c *Client) get(ctx context.Context, url, endpoint string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		c.setHeaders(req)

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("liteapi", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}
		observability.ObserveExternal("liteapi", endpoint, resp.StatusCode, time.Since(start))

		retryable, err := c.consume(resp, out)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
		wait := retryAfter(resp)
		if wait == 0 {
			wait = backoff(i)
		}
		if i < 3 && sleepCtx(ctx, wait) {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return lastErr
	}
	return lastErr
}

// post performs a single rate-limited POST. No automatic retries:
// prebook and book mutate supplier state.
func (c *Client) post(ctx context.Context, url, endpoint string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("liteapi", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	observability.ObserveExternal("liteapi", endpoint, resp.StatusCode, time.Since(start))

	_, err = c.consume(resp, out)
	return err
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "agentix-travel/1.0")
}

// consume closes the body and maps the response to (retryable, error).
func (c *Client) consume(resp *http.Response, out any) (bool, error) {
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return false, nil
		}
		return false, json.NewDecoder(resp.Body).Decode(out)

	case http.StatusNoContent:
		io.Copy(io.Discard, resp.Body)
		return false, nil

	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return false, domain.ErrNotFound

	case http.StatusUnauthorized:
		io.Copy(io.Discard, resp.Body)
		return false, domain.ErrUnauthorized

	case http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return false, domain.ErrForbidden

	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		io.Copy(io.Discard, resp.Body)
		return true, fmt.Errorf("remote %d", resp.StatusCode)

	default:
		// Surface the supplier's message field for user-facing failures
		// (prebook/book rejections come back as 400s with a reason).
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if msg := errorMessage(b); msg != "" {
			return false, errors.New(msg)
		}
		return false, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error.Message
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up
// to +50% random jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
