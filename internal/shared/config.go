package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// MySQLDSN empty disables local persistence; bookings are then
	// confirmed upstream but not recorded.
	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string

	// LiteKey empty switches every supplier interaction to the demo
	// catalog.
	LiteBase      string
	LiteKey       string
	MarkupPercent int

	GrokBase  string
	GrokKey   string
	GrokModel string

	// PendingTTL bounds how long a pending-booking snapshot survives
	// while the user is on the external payment page. Should not exceed
	// the supplier's own prebook TTL.
	PendingTTL time.Duration

	// ReturnBase is the absolute URL the payment widget redirects back
	// to, with the completion marker appended.
	ReturnBase string
}

func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", ""),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		LiteBase:      env("LITEAPI_BASE_URL", "https://api.liteapi.travel/v3.0"),
		LiteKey:       env("LITEAPI_KEY", ""),
		MarkupPercent: atoi("LITEAPI_MARKUP", 10),
		GrokBase:      env("GROK_BASE_URL", "https://api.x.ai/v1"),
		GrokKey:       env("GROK_API_KEY", ""),
		GrokModel:     env("GROK_MODEL", "grok-beta"),
		PendingTTL:    time.Duration(atoi("PENDING_TTL_SECONDS", 1800)) * time.Second,
		ReturnBase:    env("PAYMENT_RETURN_BASE", "http://localhost:8080/v1/payment/return"),
	}
	if c.LiteKey == "" {
		log.Warn().Msg("LITEAPI_KEY is empty; running in demo mode")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
