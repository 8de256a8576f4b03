package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/skyhop/flightconnect/internal/airports"
	"github.com/skyhop/flightconnect/internal/cache"
	"github.com/skyhop/flightconnect/internal/config"
	"github.com/skyhop/flightconnect/internal/handler"
	"github.com/skyhop/flightconnect/internal/ratelimit"
	"github.com/skyhop/flightconnect/internal/ryanair"
	"github.com/skyhop/flightconnect/internal/search"
)

func main() {
	cfg := config.Load()

	log := newLogger(cfg.AppEnv)

	fareCache, closeCache := newCache(cfg, log)
	defer closeCache()

	limiter := ratelimit.NewKeyLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})

	client := ryanair.NewClient(ryanair.Config{
		BaseURL:    cfg.UpstreamBaseURL,
		Timeout:    cfg.Timeout,
		Retries:    cfg.Retries,
		RetryDelay: cfg.RetryDelay,
	}, fareCache, limiter, log)

	dir := airports.NewDirectory()

	orchestrator := search.NewOrchestrator(client, dir, search.Config{
		MinLayover:           time.Duration(cfg.MinLayoverMinutes) * time.Minute,
		MaxLayover:           time.Duration(cfg.MaxLayoverMinutes) * time.Minute,
		MaxConcurrentFetches: cfg.MaxConcurrentFetches,
		MaxAnyDestinations:   cfg.MaxAnyDestinations,
	}, log)

	searchHandler := handler.NewSearchHandler(orchestrator, log)
	airportsHandler := handler.NewAirportsHandler(dir)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	api := e.Group("/api")
	api.POST("/flights/search", searchHandler.Search)
	api.GET("/airports", airportsHandler.List)
	api.GET("/airports/:origin/destinations", airportsHandler.Destinations)
	api.GET("/airports/iata-lookup/:cityName", airportsHandler.IATALookup)
	e.GET("/health", handler.Health)

	log.Info().
		Str("port", cfg.Port).
		Str("cache_backend", cfg.CacheBackend).
		Int("min_layover_minutes", cfg.MinLayoverMinutes).
		Int("max_layover_minutes", cfg.MaxLayoverMinutes).
		Msg("starting flight connection search server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(env string) zerolog.Logger {
	level := zerolog.DebugLevel
	if env == "production" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}

func newCache(cfg config.Config, log zerolog.Logger) (cache.FareCache, func()) {
	if cfg.CacheBackend == "redis" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		log.Info().Str("host", cfg.RedisHost+":"+cfg.RedisPort).Dur("ttl", cfg.CacheTTL).Msg("redis fare cache enabled")
		return redisCache, func() { _ = redisCache.Close() }
	}

	log.Info().Dur("ttl", cfg.CacheTTL).Msg("in-memory fare cache enabled")
	return cache.NewMemoryCache(cfg.CacheTTL), func() {}
}
