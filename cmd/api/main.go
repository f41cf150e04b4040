package main

import (
	"database/sql"
	"net/http"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"agentix_travel/internal/adapters/grok"
	server "agentix_travel/internal/adapters/http_server"
	"agentix_travel/internal/adapters/liteapi"
	"agentix_travel/internal/adapters/mockdata"
	"agentix_travel/internal/adapters/observability"
	redisad "agentix_travel/internal/adapters/redis"
	"agentix_travel/internal/app"
	"agentix_travel/internal/domain"
	"agentix_travel/internal/shared"
	mysqlrepo "agentix_travel/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// persistence is optional; without a DSN bookings are confirmed
	// upstream but not recorded locally
	var repo domain.BookingRepository
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", withParseTime(cfg.MySQLDSN))
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	} else {
		log.Warn().Msg("MYSQL_DSN is empty; booking persistence disabled")
	}

	// supplier: live client when a key is configured, demo catalog
	// otherwise; the catalog also backs search fallback in live mode
	demo := mockdata.New()
	var supplier domain.SupplierClient
	if cfg.LiteKey != "" {
		lite, err := liteapi.New(cfg.LiteBase, cfg.LiteKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("liteapi client init failed")
		}
		supplier = lite
	}

	var completer domain.ChatCompleter
	if cfg.GrokKey != "" {
		gc, err := grok.New(cfg.GrokBase, cfg.GrokKey, cfg.GrokModel)
		if err != nil {
			log.Fatal().Err(err).Msg("grok client init failed")
		}
		completer = gc
	}

	pending := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	bookingSupplier := supplier
	if bookingSupplier == nil {
		bookingSupplier = demo
	}

	searchSvc := app.NewSearchService(supplier, demo, cfg.MarkupPercent)
	bookingSvc := app.NewBookingService(bookingSupplier, repo, pending, cfg.PendingTTL, cfg.ReturnBase)
	chatSvc := app.NewChatService(completer)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Search:  searchSvc,
		Booking: bookingSvc,
		Chat:    chatSvc,
		Repo:    repo,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// withParseTime makes TIMESTAMP columns scan into time.Time.
func withParseTime(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true"
	}
	return dsn + "?parseTime=true"
}
