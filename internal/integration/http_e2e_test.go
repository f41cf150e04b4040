package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	server "agentix_travel/internal/adapters/http_server"
	"agentix_travel/internal/adapters/mockdata"
	redisad "agentix_travel/internal/adapters/redis"
	"agentix_travel/internal/app"
	"agentix_travel/internal/domain"
)

// paidSupplier is the demo catalog with a real-looking payment
// credential, so the external-payment leg of the flow is exercised.
type paidSupplier struct{ *mockdata.Catalog }

func (p paidSupplier) Prebook(ctx context.Context, offerID string) (domain.PrebookSession, error) {
	sess, err := p.Catalog.Prebook(ctx, offerID)
	if err != nil {
		return sess, err
	}
	sess.SecretKey = "pk_test_e2e"
	return sess, nil
}

func newTestServer(t *testing.T, supplier domain.SupplierClient) *httptest.Server {
	t.Helper()
	mr := miniredis.RunT(t)
	pending := redisad.New(mr.Addr(), "", 0)

	demo := mockdata.New()
	if supplier == nil {
		supplier = demo
	}
	searchSvc := app.NewSearchService(nil, demo, 10)
	bookingSvc := app.NewBookingService(supplier, nil, pending, 30*time.Minute, "http://example.test/v1/payment/return")
	chatSvc := app.NewChatService(nil)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Search:  searchSvc,
		Booking: bookingSvc,
		Chat:    chatSvc,
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func bookingBody() map[string]any {
	return map[string]any{
		"offerId": "offer-e2e",
		"holder": map[string]string{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "ada@example.com",
			"phone":     "+44 20 0000 0000",
		},
		"hotelId":       "ct-001",
		"hotelName":     "The Table Bay Hotel",
		"roomType":      "Luxury Room",
		"checkIn":       "2026-09-01",
		"checkOut":      "2026-09-04",
		"guestCount":    2,
		"nights":        3,
		"originalPrice": 4500,
		"totalPrice":    4950,
		"currency":      "ZAR",
	}
}

func TestSearchToRatesFlow(t *testing.T) {
	ts := newTestServer(t, nil)

	var search domain.SearchResult
	resp := getJSON(t, ts.URL+"/v1/hotels?destination=Cape+Town", &search)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, search.Hotels)
	hotelID := search.Hotels[0].ID

	var hotel domain.Hotel
	resp = getJSON(t, fmt.Sprintf("%s/v1/hotels/%s", ts.URL, hotelID), &hotel)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, hotelID, hotel.ID)

	resp = getJSON(t, ts.URL+"/v1/hotels/nope-404", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var rates struct {
		Rates []domain.HotelRate `json:"rates"`
	}
	resp = getJSON(t, fmt.Sprintf("%s/v1/hotels/%s/rates?checkIn=2026-09-01&checkOut=2026-09-04&guests=2", ts.URL, hotelID), &rates)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, rates.Rates)
	for _, r := range rates.Rates {
		require.Greater(t, r.Price, r.OriginalPrice, "markup must be applied")
	}

	var suggest struct {
		Suggestions []string `json:"suggestions"`
	}
	resp = getJSON(t, ts.URL+"/v1/destinations/suggest?q=cape", &suggest)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, suggest.Suggestions, "Cape Town")
}

func TestDemoBookingConfirmsWithoutPayment(t *testing.T) {
	ts := newTestServer(t, nil)

	var out struct {
		Step         string                      `json:"step"`
		Confirmation *domain.BookingConfirmation `json:"confirmation"`
	}
	resp := postJSON(t, ts.URL+"/v1/prebook", bookingBody(), &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "confirmed", out.Step)
	require.NotNil(t, out.Confirmation)
	require.NotEmpty(t, out.Confirmation.BookingID)
}

func TestExternalPaymentRoundTrip(t *testing.T) {
	ts := newTestServer(t, paidSupplier{mockdata.New()})

	var out struct {
		Step      string `json:"step"`
		PrebookID string `json:"prebookId"`
		SecretKey string `json:"secretKey"`
		ReturnURL string `json:"returnUrl"`
	}
	resp := postJSON(t, ts.URL+"/v1/prebook", bookingBody(), &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "awaiting_payment", out.Step)
	require.Equal(t, "pk_test_e2e", out.SecretKey)
	require.Contains(t, out.ReturnURL, "payment_complete=true")

	var conf domain.BookingConfirmation
	returnURL := fmt.Sprintf("%s/v1/payment/return?payment_complete=true&prebook_id=%s", ts.URL, out.PrebookID)
	resp = getJSON(t, returnURL, &conf)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "confirmed", conf.Status)
	require.NotEmpty(t, conf.BookingID)

	// Reloading the return page must not finalize a second time.
	resp = getJSON(t, returnURL, nil)
	require.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestPrebookValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	body := bookingBody()
	delete(body, "holder")
	resp := postJSON(t, ts.URL+"/v1/prebook", body, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCancelPrebook(t *testing.T) {
	ts := newTestServer(t, paidSupplier{mockdata.New()})

	var out struct {
		PrebookID string `json:"prebookId"`
	}
	resp := postJSON(t, ts.URL+"/v1/prebook", bookingBody(), &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/prebook/%s", ts.URL, out.PrebookID), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The snapshot is gone, so the payment return cannot resume.
	resp = getJSON(t, fmt.Sprintf("%s/v1/payment/return?payment_complete=true&prebook_id=%s", ts.URL, out.PrebookID), nil)
	require.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestChatCannedReply(t *testing.T) {
	ts := newTestServer(t, nil)

	var out struct {
		Message string `json:"message"`
		IsDemo  bool   `json:"isDemo"`
	}
	resp := postJSON(t, ts.URL+"/v1/chat", map[string]any{"message": "how do I book?"}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, out.IsDemo)
	require.Contains(t, out.Message, "To book a hotel")

	resp = postJSON(t, ts.URL+"/v1/chat", map[string]any{}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBookingHistoryUnavailableWithoutDatabase(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := getJSON(t, ts.URL+"/v1/bookings/BK-1", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = getJSON(t, ts.URL+"/v1/stats/commission", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
