// Package ryanair fetches one-way fares from the Ryanair fares API. The
// client is cache-first: a hit never touches the network, and every
// successful fetch, including a confirmed empty one, is written back so
// the same (route, date) is not re-fetched inside the TTL.
package ryanair

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyhop/flightconnect/internal/cache"
	"github.com/skyhop/flightconnect/internal/models"
	"github.com/skyhop/flightconnect/internal/ratelimit"
)

const (
	// DefaultBaseURL is the public fares endpoint root.
	DefaultBaseURL = "https://services-api.ryanair.com/farfnd/v4"

	operatorName = "Ryanair"
	dateLayout   = "2006-01-02"
	// Fare timestamps are local to the departure airport, with no zone
	// designator on the wire.
	timeLayout = "2006-01-02T15:04:05"

	maxBackoff = 5 * time.Second
)

type Config struct {
	BaseURL string
	// Timeout bounds a single attempt; the worst case per fetch is
	// Timeout * (1 + Retries) plus backoff sleeps.
	Timeout time.Duration
	// Retries is the number of additional attempts after the first.
	Retries int
	// RetryDelay is the backoff before the first retry; it doubles per
	// attempt and is capped.
	RetryDelay time.Duration
}

type Client struct {
	http    *http.Client
	baseURL string
	cfg     Config
	cache   cache.FareCache
	limiter *ratelimit.KeyLimiter
	log     zerolog.Logger
}

func NewClient(cfg Config, fareCache cache.FareCache, limiter *ratelimit.KeyLimiter, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	return &Client{
		// Per-attempt deadlines come from the request context, not the
		// client, so each retry gets the full Timeout again.
		http:    &http.Client{},
		baseURL: cfg.BaseURL,
		cfg:     cfg,
		cache:   fareCache,
		limiter: limiter,
		log:     log.With().Str("component", "ryanair").Logger(),
	}
}

// Fetch returns the legs for one (origin, destination, date, currency)
// lookup. Transient failures are retried with exponential backoff; a 4xx
// or undecodable body aborts immediately.
func (c *Client) Fetch(ctx context.Context, origin, destination string, date time.Time, currency string) ([]models.FlightLeg, error) {
	key := cache.Key{Origin: origin, Destination: destination, Date: date, Currency: currency}

	if legs, ok := c.cache.Get(ctx, key); ok {
		return legs, nil
	}

	if err := c.limiter.Wait(ctx, origin); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryDelay << (attempt - 1)
			if delay > maxBackoff {
				delay = maxBackoff
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		legs, err := c.attempt(ctx, origin, destination, date, currency)
		if err == nil {
			if cacheErr := c.cache.Set(ctx, key, legs); cacheErr != nil {
				c.log.Error().Err(cacheErr).Str("key", key.String()).Msg("failed to cache fares")
			}
			return legs, nil
		}
		if Terminal(err) {
			return nil, err
		}

		lastErr = err
		c.log.Warn().Err(err).
			Str("origin", origin).
			Str("destination", destination).
			Str("date", date.Format(dateLayout)).
			Int("attempt", attempt+1).
			Msg("fare fetch attempt failed")
	}

	return nil, fmt.Errorf("%s-%s on %s after %d attempts: %w: %v",
		origin, destination, date.Format(dateLayout), c.cfg.Retries+1, ErrUnavailable, lastErr)
}

func (c *Client) attempt(ctx context.Context, origin, destination string, date time.Time, currency string) ([]models.FlightLeg, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	day := date.Format(dateLayout)
	params := url.Values{}
	params.Set("departureAirportIataCode", origin)
	params.Set("arrivalAirportIataCode", destination)
	params.Set("outboundDepartureDateFrom", day)
	params.Set("outboundDepartureDateTo", day)
	params.Set("currency", currency)

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, c.baseURL+"/oneWayFares?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, ErrRejected)
	}

	var payload farePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode: %w: %v", ErrBadPayload, err)
	}

	return normalize(payload, currency)
}

type farePayload struct {
	Fares []struct {
		Outbound fareLeg `json:"outbound"`
	} `json:"fares"`
}

type fareLeg struct {
	DepartureAirport airportRef `json:"departureAirport"`
	ArrivalAirport   airportRef `json:"arrivalAirport"`
	DepartureDate    string     `json:"departureDate"`
	ArrivalDate      string     `json:"arrivalDate"`
	FlightNumber     string     `json:"flightNumber"`
	Price            struct {
		Value        float64 `json:"value"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"price"`
}

type airportRef struct {
	IATACode string `json:"iataCode"`
}

func normalize(payload farePayload, requested string) ([]models.FlightLeg, error) {
	legs := make([]models.FlightLeg, 0, len(payload.Fares))
	for _, fare := range payload.Fares {
		raw := fare.Outbound

		dep, err := time.Parse(timeLayout, raw.DepartureDate)
		if err != nil {
			return nil, fmt.Errorf("departure time %q: %w", raw.DepartureDate, ErrBadPayload)
		}
		arr, err := time.Parse(timeLayout, raw.ArrivalDate)
		if err != nil {
			return nil, fmt.Errorf("arrival time %q: %w", raw.ArrivalDate, ErrBadPayload)
		}
		if raw.DepartureAirport.IATACode == "" || raw.ArrivalAirport.IATACode == "" {
			return nil, fmt.Errorf("missing airport code: %w", ErrBadPayload)
		}
		if raw.Price.Value < 0 {
			return nil, fmt.Errorf("negative fare %f: %w", raw.Price.Value, ErrBadPayload)
		}

		cur := raw.Price.CurrencyCode
		if cur == "" {
			cur = requested
		}

		legs = append(legs, models.FlightLeg{
			LegType:            models.LegTypeOutbound,
			OriginAirport:      raw.DepartureAirport.IATACode,
			DestinationAirport: raw.ArrivalAirport.IATACode,
			DepartureDateTime:  dep,
			ArrivalDateTime:    arr,
			FlightNumber:       formatFlightNumber(raw.FlightNumber),
			Operator:           operatorName,
			DurationMinutes:    int(arr.Sub(dep).Minutes()),
			Price:              raw.Price.Value,
			Currency:           cur,
		})
	}
	return legs, nil
}

// formatFlightNumber inserts the space between carrier code and number
// that the fares API omits ("FR342" -> "FR 342").
func formatFlightNumber(n string) string {
	if len(n) > 2 && n[2] != ' ' {
		return n[:2] + " " + n[2:]
	}
	return n
}
