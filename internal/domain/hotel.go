package domain

// Hotel is the normalized shape of a supplier property payload.
// Recomputed per request, never cached.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	StarRating  int      `json:"starRating"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	ReviewScore float64  `json:"reviewScore"`
	ReviewCount int      `json:"reviewCount"`
}

// HotelRate is a priced, bookable room option. Rates are ephemeral:
// the OfferID token has a short server-side TTL at the supplier.
type HotelRate struct {
	HotelID            string  `json:"hotelId"`
	RoomType           string  `json:"roomType"`
	BoardType          string  `json:"boardType"`
	Price              float64 `json:"price"`         // markup applied
	OriginalPrice      float64 `json:"originalPrice"` // supplier wholesale price
	Currency           string  `json:"currency"`
	CancellationPolicy string  `json:"cancellationPolicy"`
	RateID             string  `json:"rateId"`
	OfferID            string  `json:"offerId,omitempty"`
}

type SearchParams struct {
	Destination string
	CheckIn     string
	CheckOut    string
	Guests      int
	Limit       int
	Offset      int
}

type SearchResult struct {
	Hotels  []Hotel `json:"hotels"`
	Total   int     `json:"total"`
	HasMore bool    `json:"hasMore"`
	Offset  int     `json:"offset"`
	Limit   int     `json:"limit"`
}
