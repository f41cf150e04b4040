package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"agentix_travel/internal/domain"
	"agentix_travel/internal/geo"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchService serves hotel discovery. With no live supplier wired it
// runs entirely off the demo catalog; with one wired it still falls
// back to the catalog when the supplier fails, so search never returns
// a hard error to the user for upstream trouble.
type SearchService struct {
	supplier  domain.SupplierClient // nil in demo mode
	demo      domain.SupplierClient
	markupPct int

	sf singleflight.Group
}

func NewSearchService(supplier, demo domain.SupplierClient, markupPct int) *SearchService {
	return &SearchService{supplier: supplier, demo: demo, markupPct: markupPct}
}

// Search resolves the free-text destination, fetches the hotel list,
// and pages it. Identical in-flight searches are coalesced so a burst
// of the same query costs one supplier round trip.
func (s *SearchService) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	key := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(params.Destination)),
		params.CheckIn,
		params.CheckOut,
		strconv.Itoa(params.Guests),
	}, "|")
	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.fetchHotels(ctx, params.Destination)
	})
	if err != nil {
		return domain.SearchResult{}, err
	}
	hotels := v.([]domain.Hotel)

	total := len(hotels)
	page := hotels[min(offset, total):min(offset+limit, total)]
	return domain.SearchResult{
		Hotels:  page,
		Total:   total,
		HasMore: offset+limit < total,
		Offset:  offset,
		Limit:   limit,
	}, nil
}

// fetchHotels tries the live supplier with the resolved destination,
// retries with the city name alone, then serves the demo catalog. The
// catalog matches on raw destination text, not the resolved code.
func (s *SearchService) fetchHotels(ctx context.Context, destination string) ([]domain.Hotel, error) {
	if s.supplier == nil {
		raw, err := s.demo.SearchHotels(ctx, "", destination)
		if err != nil {
			return nil, fmt.Errorf("demo catalog: %w", err)
		}
		return mapHotels(raw), nil
	}

	countryCode, cityName := geo.Resolve(destination)
	raw, err := s.supplier.SearchHotels(ctx, countryCode, cityName)
	if err == nil && len(raw) == 0 && countryCode != "" && cityName != "" {
		raw, err = s.supplier.SearchHotels(ctx, "", cityName)
	}
	if err != nil {
		log.Warn().Err(err).Str("destination", destination).Msg("supplier search failed, serving demo catalog")
	} else if len(raw) == 0 {
		log.Info().Str("destination", destination).Msg("supplier returned no hotels, serving demo catalog")
	} else {
		return mapHotels(raw), nil
	}

	raw, err = s.demo.SearchHotels(ctx, "", destination)
	if err != nil {
		return nil, fmt.Errorf("demo catalog: %w", err)
	}
	return mapHotels(raw), nil
}

// GetHotel returns one normalized property. ErrNotFound passes through;
// other supplier failures fall back to the demo catalog.
func (s *SearchService) GetHotel(ctx context.Context, hotelID string) (domain.Hotel, error) {
	raw, err := s.active().GetHotel(ctx, hotelID)
	if err != nil && s.supplier != nil && !isNotFound(err) {
		log.Warn().Err(err).Str("hotel_id", hotelID).Msg("supplier hotel lookup failed, trying demo catalog")
		raw, err = s.demo.GetHotel(ctx, hotelID)
	}
	if err != nil {
		return domain.Hotel{}, err
	}
	return mapHotel(raw), nil
}

// GetRates returns priced room options with markup applied.
func (s *SearchService) GetRates(ctx context.Context, hotelID, checkIn, checkOut string, guests int) ([]domain.HotelRate, error) {
	if guests <= 0 {
		guests = 2
	}
	payload, err := s.active().GetHotelRates(ctx, hotelID, checkIn, checkOut, guests)
	if err != nil && s.supplier != nil && !isNotFound(err) {
		log.Warn().Err(err).Str("hotel_id", hotelID).Msg("supplier rates failed, trying demo catalog")
		payload, err = s.demo.GetHotelRates(ctx, hotelID, checkIn, checkOut, guests)
	}
	if err != nil {
		return nil, err
	}
	return mapRates(hotelID, payload, s.markupPct), nil
}

// SuggestDestinations serves autocomplete off the in-process gazetteer.
func (s *SearchService) SuggestDestinations(query string, limit int) []string {
	return geo.SearchCities(query, limit)
}

func (s *SearchService) active() domain.SupplierClient {
	if s.supplier != nil {
		return s.supplier
	}
	return s.demo
}

func mapHotels(raw []map[string]any) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raw))
	for _, r := range raw {
		out = append(out, mapHotel(r))
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
