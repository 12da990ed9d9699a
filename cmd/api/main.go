package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	_ "github.com/lib/pq"

	"github.com/georgemunganga/printa-quotes/internal/core"
	"github.com/georgemunganga/printa-quotes/internal/modules/auth"
	"github.com/georgemunganga/printa-quotes/internal/modules/catalog"
	"github.com/georgemunganga/printa-quotes/internal/modules/nlu"
	"github.com/georgemunganga/printa-quotes/internal/modules/pricing"
	logx "github.com/georgemunganga/printa-quotes/pkg/logger"
	pkgredis "github.com/georgemunganga/printa-quotes/pkg/redis"
)

// AppConfig defines all configurable parameters for the quote service,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"APP_PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Shared secret for service-to-service tokens on the quote routes.
	// Empty disables auth (local development).
	AuthSecret string `envconfig:"AUTH_SECRET"`

	// Structured-quote cache. Zero TTL disables it.
	QuoteCacheTTL time.Duration `envconfig:"QUOTE_CACHE_TTL" default:"0s"`

	Redis pkgredis.Config
	NLU   nlu.Config
}

func main() {
	if err := godotenv.Load(); err != nil {
		logx.Warn().Err(err).Msg("no .env file loaded")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env, Service: "printa-quotes"})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logx.Fatal().Err(err).Msg("failed to ping database")
	}
	logx.Info().Msg("connected to the database")

	// ── Optional collaborators ──────────────────────────────
	var cache *pricing.QuoteCache
	if cfg.Redis.URL != "" {
		rdb, err := cfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		cache = pricing.NewQuoteCache(rdb, cfg.QuoteCacheTTL)
		logx.Info().Dur("ttl", cfg.QuoteCacheTTL).Msg("quote cache enabled")
	}

	var extractor nlu.Extractor
	if cfg.NLU.APIKey != "" {
		extractor, err = nlu.NewGeminiExtractor(context.Background(), cfg.NLU)
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to build NLU extractor")
		}
	} else {
		extractor = nlu.Unavailable()
		logx.Warn().Msg("GEMINI_API_KEY not set; free-text extraction disabled")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog reads ───────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Pricing resolution engine ───────────────────────────
	pricingService := pricing.NewService(catalogRepo, cache)
	pricing.NewHandler(pricingService, extractor).
		RegisterRoutes(router, auth.RequireServiceToken(cfg.AuthSecret))

	logx.Info().Str("port", cfg.Port).Msg("quote API server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
