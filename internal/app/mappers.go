package app

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"agentix_travel/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Supplier payloads are loosely typed and field names drift between API
// versions. Each normalized field lists its accepted paths in
// precedence order; the raw map never leaves this file.

var hotelAliases = map[string][]string{
	"id":          {"id", "hotelId"},
	"name":        {"name"},
	"stars":       {"stars", "starRating", "star"},
	"address":     {"address"},
	"city":        {"city", "cityName"},
	"country":     {"country", "countryCode"},
	"lat":         {"latitude"},
	"lon":         {"longitude"},
	"description": {"hotelDescription", "description"},
	"thumbnail":   {"thumbnail", "main_photo"},
	"mainPhoto":   {"main_photo", "thumbnail"},
	"score":       {"rating", "reviewScore"},
	"reviews":     {"reviewCount", "reviews"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstStr: first non-empty string for a named alias set.
func firstStr(m map[string]any, key string) string {
	for _, p := range hotelAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// firstFloat: number from the alias set (float64/int/string), default 0.
func firstFloat(m map[string]any, key string) float64 {
	for _, p := range hotelAliases[key] {
		if f, ok := asFloat(lookupAny(m, p)); ok {
			return f
		}
	}
	return 0
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func sliceStrings(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripHTML removes markup and collapses runs of whitespace.
func stripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

const descriptionLimit = 500

// truncate counts runes, not bytes, so a multibyte description is
// never cut mid-character.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

/********** markup **********/

// ApplyMarkup produces the display price charged to the guest:
// round(price * (1 + pct/100)) to the nearest integer. Rounding is not
// currency-minor-unit aware.
func ApplyMarkup(price float64, pct int) float64 {
	return math.Round(price * (1 + float64(pct)/100))
}

/********** hotel mapper **********/

func mapHotel(p map[string]any) domain.Hotel {
	description := truncate(stripHTML(firstStr(p, "description")), descriptionLimit)

	thumbnail := firstStr(p, "thumbnail")
	mainPhoto := firstStr(p, "mainPhoto")
	var images []string
	if imgs := sliceStrings(lookupAny(p, "images")); len(imgs) > 0 {
		images = imgs
	} else if mainPhoto != "" {
		images = []string{mainPhoto}
	}

	return domain.Hotel{
		ID:          firstStr(p, "id"),
		Name:        firstStr(p, "name"),
		StarRating:  int(firstFloat(p, "stars")),
		Address:     firstStr(p, "address"),
		City:        firstStr(p, "city"),
		Country:     firstStr(p, "country"),
		Latitude:    firstFloat(p, "lat"),
		Longitude:   firstFloat(p, "lon"),
		Thumbnail:   thumbnail,
		Images:      images,
		Description: description,
		Amenities:   sliceStrings(lookupAny(p, "amenities")),
		ReviewScore: firstFloat(p, "score"),
		ReviewCount: int(firstFloat(p, "reviews")),
	}
}

/********** rate mapper **********/

// mapRates flattens every room's rates from a supplier rates response.
// Price precedence: retailRate.total[0].amount, then flat price, then 0.
func mapRates(hotelID string, payload map[string]any, markupPct int) []domain.HotelRate {
	rooms := roomTypes(payload)
	var out []domain.HotelRate
	for _, room := range rooms {
		roomName := lookupStr(room, "name")
		if roomName == "" {
			roomName = "Standard Room"
		}
		offerID := lookupStr(room, "offerId")

		rates, _ := room["rates"].([]any)
		for _, rr := range rates {
			rate, ok := rr.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, mapRate(hotelID, roomName, offerID, rate, markupPct))
		}
	}
	return out
}

func roomTypes(payload map[string]any) []map[string]any {
	data, _ := payload["data"].([]any)
	if len(data) == 0 {
		return nil
	}
	first, _ := data[0].(map[string]any)
	raw, _ := first["roomTypes"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func mapRate(hotelID, roomName, offerID string, rate map[string]any, markupPct int) domain.HotelRate {
	price, currency := ratePrice(rate)

	board := lookupStr(rate, "boardName")
	if board == "" {
		board = lookupStr(rate, "boardType")
	}
	if board == "" {
		board = "Room Only"
	}

	var policy string
	if infos, ok := lookupAny(rate, "cancellationPolicy.cancelPolicyInfos").([]any); ok && len(infos) > 0 {
		if info, ok := infos[0].(map[string]any); ok {
			policy = lookupStr(info, "description")
		}
	}
	if policy == "" {
		policy = "Check hotel policy"
	}

	rateID := lookupStr(rate, "rateId")
	if rateID == "" {
		rateID = "rate-" + uuid.NewString()
	}

	return domain.HotelRate{
		HotelID:            hotelID,
		RoomType:           roomName,
		BoardType:          board,
		Price:              ApplyMarkup(price, markupPct),
		OriginalPrice:      price,
		Currency:           currency,
		CancellationPolicy: policy,
		RateID:             rateID,
		OfferID:            offerID,
	}
}

func ratePrice(rate map[string]any) (price float64, currency string) {
	currency = "USD"
	if totals, ok := lookupAny(rate, "retailRate.total").([]any); ok && len(totals) > 0 {
		if info, ok := totals[0].(map[string]any); ok {
			if f, ok := asFloat(info["amount"]); ok {
				price = f
			}
			if c, ok := info["currency"].(string); ok && c != "" {
				currency = c
			}
			if price > 0 {
				return price, currency
			}
		}
	}
	if f, ok := asFloat(rate["price"]); ok {
		price = f
	}
	return price, currency
}
