package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agentix_travel/internal/domain"
)

type scriptedSupplier struct {
	searchFn func(countryCode, cityName string) ([]map[string]any, error)
	hotelFn  func(hotelID string) (map[string]any, error)
	ratesFn  func(hotelID string) (map[string]any, error)

	searchCalls atomic.Int64
}

func (s *scriptedSupplier) SearchHotels(ctx context.Context, countryCode, cityName string) ([]map[string]any, error) {
	s.searchCalls.Add(1)
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(countryCode, cityName)
}

func (s *scriptedSupplier) GetHotel(ctx context.Context, hotelID string) (map[string]any, error) {
	if s.hotelFn == nil {
		return nil, domain.ErrNotFound
	}
	return s.hotelFn(hotelID)
}

func (s *scriptedSupplier) GetHotelRates(ctx context.Context, hotelID, checkIn, checkOut string, guests int) (map[string]any, error) {
	if s.ratesFn == nil {
		return nil, domain.ErrNotFound
	}
	return s.ratesFn(hotelID)
}

func (s *scriptedSupplier) Prebook(ctx context.Context, offerID string) (domain.PrebookSession, error) {
	return domain.PrebookSession{}, errors.New("not implemented")
}

func (s *scriptedSupplier) Book(ctx context.Context, req domain.BookRequest) (domain.BookingConfirmation, error) {
	return domain.BookingConfirmation{}, errors.New("not implemented")
}

func rawHotels(n int) []map[string]any {
	out := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, map[string]any{
			"id":   string(rune('a' + i)),
			"name": "Hotel " + string(rune('A'+i)),
		})
	}
	return out
}

func TestSearchDemoModeUsesRawDestination(t *testing.T) {
	demo := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		require.Empty(t, countryCode)
		require.Equal(t, "Cape Town", cityName)
		return rawHotels(3), nil
	}}
	svc := NewSearchService(nil, demo, 10)

	res, err := svc.Search(context.Background(), domain.SearchParams{Destination: "Cape Town"})
	require.NoError(t, err)
	require.Len(t, res.Hotels, 3)
	require.Equal(t, 3, res.Total)
	require.False(t, res.HasMore)
}

func TestSearchResolvesDestinationForSupplier(t *testing.T) {
	var gotCountry, gotCity string
	supplier := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		gotCountry, gotCity = countryCode, cityName
		return rawHotels(1), nil
	}}
	svc := NewSearchService(supplier, &scriptedSupplier{}, 10)

	_, err := svc.Search(context.Background(), domain.SearchParams{Destination: "paris"})
	require.NoError(t, err)
	require.Equal(t, "FR", gotCountry)
	require.Equal(t, "paris", gotCity)
}

func TestSearchRetriesWithCityOnly(t *testing.T) {
	var calls [][2]string
	supplier := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		calls = append(calls, [2]string{countryCode, cityName})
		if countryCode != "" {
			return nil, nil
		}
		return rawHotels(2), nil
	}}
	svc := NewSearchService(supplier, &scriptedSupplier{}, 10)

	res, err := svc.Search(context.Background(), domain.SearchParams{Destination: "London"})
	require.NoError(t, err)
	require.Len(t, res.Hotels, 2)
	require.Equal(t, [][2]string{{"GB", "London"}, {"", "London"}}, calls)
}

func TestSearchFallsBackToDemoOnEmptySupplierResult(t *testing.T) {
	supplier := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		return []map[string]any{}, nil
	}}
	demo := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		require.Empty(t, countryCode)
		require.Equal(t, "Cape Town", cityName)
		return rawHotels(6), nil
	}}
	svc := NewSearchService(supplier, demo, 10)

	res, err := svc.Search(context.Background(), domain.SearchParams{Destination: "Cape Town"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hotels, "an empty supplier result must serve the demo catalog")
	require.Equal(t, 6, res.Total)
	// Resolved attempt plus the city-only retry before giving up.
	require.Equal(t, int64(2), supplier.searchCalls.Load())
}

func TestSearchFallsBackToDemoOnSupplierError(t *testing.T) {
	supplier := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		return nil, errors.New("upstream 503")
	}}
	demo := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		require.Equal(t, "Cape Town", cityName)
		return rawHotels(2), nil
	}}
	svc := NewSearchService(supplier, demo, 10)

	res, err := svc.Search(context.Background(), domain.SearchParams{Destination: "Cape Town"})
	require.NoError(t, err)
	require.Len(t, res.Hotels, 2)
}

func TestSearchPagination(t *testing.T) {
	demo := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		return rawHotels(5), nil
	}}
	svc := NewSearchService(nil, demo, 10)

	res, err := svc.Search(context.Background(), domain.SearchParams{Destination: "x", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, res.Hotels, 2)
	require.Equal(t, 5, res.Total)
	require.True(t, res.HasMore)
	require.Equal(t, "Hotel C", res.Hotels[0].Name)

	res, err = svc.Search(context.Background(), domain.SearchParams{Destination: "x", Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, res.Hotels, 1)
	require.False(t, res.HasMore)

	res, err = svc.Search(context.Background(), domain.SearchParams{Destination: "x", Limit: 2, Offset: 50})
	require.NoError(t, err)
	require.Empty(t, res.Hotels)
}

func TestSearchCoalescesConcurrentIdenticalQueries(t *testing.T) {
	release := make(chan struct{})
	demo := &scriptedSupplier{searchFn: func(countryCode, cityName string) ([]map[string]any, error) {
		<-release
		return rawHotels(1), nil
	}}
	svc := NewSearchService(nil, demo, 10)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Search(context.Background(), domain.SearchParams{Destination: "Cape Town"})
			require.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	require.Less(t, demo.searchCalls.Load(), int64(8))
}

func TestGetRatesAppliesMarkup(t *testing.T) {
	demo := &scriptedSupplier{ratesFn: func(hotelID string) (map[string]any, error) {
		return map[string]any{
			"data": []any{map[string]any{
				"roomTypes": []any{map[string]any{
					"name":    "Deluxe",
					"offerId": "offer-1",
					"rates": []any{map[string]any{
						"rateId": "r1",
						"retailRate": map[string]any{
							"total": []any{map[string]any{"amount": 200.0, "currency": "ZAR"}},
						},
					}},
				}},
			}},
		}, nil
	}}
	svc := NewSearchService(nil, demo, 10)

	rates, err := svc.GetRates(context.Background(), "h1", "2026-09-01", "2026-09-04", 2)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	require.Equal(t, 220.0, rates[0].Price)
	require.Equal(t, 200.0, rates[0].OriginalPrice)
	require.Equal(t, "ZAR", rates[0].Currency)
	require.Equal(t, "offer-1", rates[0].OfferID)
}

func TestGetHotelNotFoundPassesThrough(t *testing.T) {
	supplier := &scriptedSupplier{hotelFn: func(hotelID string) (map[string]any, error) {
		return nil, domain.ErrNotFound
	}}
	demo := &scriptedSupplier{hotelFn: func(hotelID string) (map[string]any, error) {
		t.Fatal("demo catalog must not be consulted for a clean 404")
		return nil, nil
	}}
	svc := NewSearchService(supplier, demo, 10)

	_, err := svc.GetHotel(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuggestDestinations(t *testing.T) {
	svc := NewSearchService(nil, &scriptedSupplier{}, 10)
	got := svc.SuggestDestinations("lon", 5)
	require.NotEmpty(t, got)
	require.Equal(t, "London", got[0])
}
