// Package mockdata is the demo-mode supplier: a fixed catalog served
// through the same contract as the real distribution API. Payloads are
// supplier-shaped so the normal mapping path applies to them too.
package mockdata

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"agentix_travel/internal/domain"
)

type Catalog struct{}

func New() *Catalog { return &Catalog{} }

// SearchHotels filters the catalog by city or country containing the
// query text. countryCode is ignored: demo searches are text-scoped,
// matching how the catalog is reached (raw destination text).
func (c *Catalog) SearchHotels(ctx context.Context, countryCode, cityName string) ([]map[string]any, error) {
	if cityName == "" {
		return hotels, nil
	}
	q := strings.ToLower(cityName)
	var out []map[string]any
	for _, h := range hotels {
		city, _ := h["city"].(string)
		country, _ := h["country"].(string)
		if strings.Contains(strings.ToLower(city), q) || strings.Contains(strings.ToLower(country), q) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (c *Catalog) GetHotel(ctx context.Context, hotelID string) (map[string]any, error) {
	for _, h := range hotels {
		if h["id"] == hotelID {
			return h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (c *Catalog) GetHotelRates(ctx context.Context, hotelID, checkIn, checkOut string, guests int) (map[string]any, error) {
	rooms, ok := rates[hotelID]
	if !ok {
		return map[string]any{"data": []any{}}, nil
	}
	return map[string]any{
		"data": []any{
			map[string]any{"hotelId": hotelID, "roomTypes": rooms},
		},
	}, nil
}

// Prebook simulates a checkout session. The sentinel secret key tells
// the orchestrator to skip the external payment hand-off.
func (c *Catalog) Prebook(ctx context.Context, offerID string) (domain.PrebookSession, error) {
	return domain.PrebookSession{
		PrebookID:     "demo-prebook-" + uuid.NewString(),
		TransactionID: "demo-txn-" + uuid.NewString(),
		SecretKey:     domain.DemoSecretKey,
	}, nil
}

func (c *Catalog) Book(ctx context.Context, req domain.BookRequest) (domain.BookingConfirmation, error) {
	return domain.BookingConfirmation{
		BookingID:        "DEMO-" + shortID(8),
		ConfirmationCode: "CONF-" + shortID(6),
		Status:           "confirmed",
	}, nil
}

func shortID(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if len(s) > n {
		s = s[:n]
	}
	return s
}

// room builds one supplier-shaped roomTypes entry with a single rate.
func room(name, rateID, board string, price float64, currency, policy string) map[string]any {
	return map[string]any{
		"name": name,
		// rateId doubles as the bookable offer token in demo mode
		"offerId": rateID,
		"rates": []any{
			map[string]any{
				"rateId":    rateID,
				"boardName": board,
				"retailRate": map[string]any{
					"total": []any{map[string]any{"amount": price, "currency": currency}},
				},
				"cancellationPolicy": map[string]any{
					"cancelPolicyInfos": []any{map[string]any{"description": policy}},
				},
			},
		},
	}
}

var hotels = []map[string]any{
	{
		"id": "hotel-1", "name": "Grand Plaza Hotel", "stars": 5.0,
		"address": "123 Luxury Avenue", "city": "Cape Town", "country": "South Africa",
		"latitude": -33.9249, "longitude": 18.4241,
		"thumbnail": "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800&q=80",
		"images": []any{
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1200&q=80",
			"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=1200&q=80",
			"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=1200&q=80",
		},
		"hotelDescription": "Experience luxury at its finest in the heart of Cape Town. Our 5-star hotel offers breathtaking views of Table Mountain, world-class dining, and exceptional service.",
		"amenities":        []any{"Free WiFi", "Pool", "Spa", "Gym", "Restaurant", "Bar", "Room Service", "Parking"},
		"rating":           9.2, "reviewCount": 1847.0,
	},
	{
		"id": "hotel-2", "name": "Ocean View Resort", "stars": 4.0,
		"address": "456 Beach Road", "city": "Cape Town", "country": "South Africa",
		"latitude": -33.9180, "longitude": 18.4232,
		"thumbnail": "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800&q=80",
		"images": []any{
			"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=1200&q=80",
			"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=1200&q=80",
		},
		"hotelDescription": "Wake up to stunning ocean views every morning. Perfect for families and couples seeking a relaxing beach getaway with modern amenities.",
		"amenities":        []any{"Free WiFi", "Pool", "Beach Access", "Restaurant", "Kids Club", "Parking"},
		"rating":           8.7, "reviewCount": 923.0,
	},
	{
		"id": "hotel-3", "name": "City Center Inn", "stars": 3.0,
		"address": "789 Main Street", "city": "Cape Town", "country": "South Africa",
		"latitude": -33.9258, "longitude": 18.4232,
		"thumbnail": "https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800&q=80",
		"images": []any{
			"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=1200&q=80",
		},
		"hotelDescription": "Affordable comfort in the city center. Walking distance to major attractions, shopping, and dining. Perfect for budget-conscious travelers.",
		"amenities":        []any{"Free WiFi", "Breakfast", "Parking", "24/7 Reception"},
		"rating":           8.1, "reviewCount": 456.0,
	},
	{
		"id": "hotel-4", "name": "The Waterfront Boutique", "stars": 5.0,
		"address": "10 Waterfront Drive", "city": "Cape Town", "country": "South Africa",
		"latitude": -33.9036, "longitude": 18.4207,
		"thumbnail": "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800&q=80",
		"images": []any{
			"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=1200&q=80",
			"https://images.unsplash.com/photo-1618773928121-c32242e63f39?w=1200&q=80",
		},
		"hotelDescription": "Intimate luxury at the V&A Waterfront. Our boutique hotel combines personalized service with sophisticated design in Cape Town's most vibrant location.",
		"amenities":        []any{"Free WiFi", "Pool", "Spa", "Restaurant", "Bar", "Concierge", "Valet Parking"},
		"rating":           9.5, "reviewCount": 312.0,
	},
	{
		"id": "hotel-5", "name": "Mountain View Lodge", "stars": 4.0,
		"address": "55 Table Mountain Road", "city": "Cape Town", "country": "South Africa",
		"latitude": -33.9628, "longitude": 18.4098,
		"thumbnail": "https://images.unsplash.com/photo-1445019980597-93fa8acb246c?w=800&q=80",
		"images": []any{
			"https://images.unsplash.com/photo-1445019980597-93fa8acb246c?w=1200&q=80",
		},
		"hotelDescription": "Nestled at the foot of Table Mountain, our lodge offers a peaceful retreat with stunning natural surroundings. Perfect for hikers and nature lovers.",
		"amenities":        []any{"Free WiFi", "Garden", "Restaurant", "Hiking Trails", "Parking", "Bicycle Rental"},
		"rating":           8.9, "reviewCount": 678.0,
	},
	{
		"id": "hotel-6", "name": "Backpackers Paradise", "stars": 2.0,
		"address": "22 Long Street", "city": "Cape Town", "country": "South Africa",
		"latitude": -33.9220, "longitude": 18.4195,
		"thumbnail": "https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=800&q=80",
		"images": []any{
			"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=1200&q=80",
		},
		"hotelDescription": "Social atmosphere and unbeatable prices on Long Street. Dorm beds and private rooms available. The best spot for solo travelers and backpackers.",
		"amenities":        []any{"Free WiFi", "Shared Kitchen", "Lounge", "Lockers", "Tours Desk"},
		"rating":           7.8, "reviewCount": 1203.0,
	},
}

var rates = map[string][]any{
	"hotel-1": {
		room("Deluxe Room", "rate-1a", "Bed & Breakfast", 2500, "ZAR", "Free cancellation until 24h before"),
		room("Suite", "rate-1b", "Half Board", 4200, "ZAR", "Non-refundable"),
	},
	"hotel-2": {
		room("Ocean View Room", "rate-2a", "Room Only", 1800, "ZAR", "Free cancellation until 48h before"),
		room("Family Suite", "rate-2b", "Bed & Breakfast", 2800, "ZAR", "Free cancellation until 24h before"),
	},
	"hotel-3": {
		room("Standard Room", "rate-3a", "Bed & Breakfast", 850, "ZAR", "Free cancellation until 24h before"),
	},
	"hotel-4": {
		room("Luxury Suite", "rate-4a", "Bed & Breakfast", 5500, "ZAR", "Free cancellation until 72h before"),
		room("Penthouse", "rate-4b", "Full Board", 12000, "ZAR", "Non-refundable"),
	},
	"hotel-5": {
		room("Garden View", "rate-5a", "Room Only", 1400, "ZAR", "Free cancellation until 24h before"),
		room("Mountain View", "rate-5b", "Bed & Breakfast", 1900, "ZAR", "Free cancellation until 24h before"),
	},
	"hotel-6": {
		room("Dorm Bed", "rate-6a", "Room Only", 250, "ZAR", "Free cancellation until 12h before"),
		room("Private Room", "rate-6b", "Room Only", 650, "ZAR", "Free cancellation until 24h before"),
	},
}
