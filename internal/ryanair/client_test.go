package ryanair

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhop/flightconnect/internal/cache"
	"github.com/skyhop/flightconnect/internal/ratelimit"
)

const faresBody = `{
	"fares": [
		{
			"outbound": {
				"departureAirport": {"iataCode": "DUB"},
				"arrivalAirport": {"iataCode": "STN"},
				"departureDate": "2026-09-20T06:25:00",
				"arrivalDate": "2026-09-20T07:50:00",
				"flightNumber": "FR342",
				"price": {"value": 29.99, "currencyCode": "EUR"}
			}
		}
	]
}`

var fetchDate = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, baseURL string, retries int) *Client {
	t.Helper()
	return NewClient(Config{
		BaseURL:    baseURL,
		Timeout:    time.Second,
		Retries:    retries,
		RetryDelay: 5 * time.Millisecond,
	}, cache.NewMemoryCache(time.Minute), ratelimit.NewKeyLimiter(ratelimit.Config{RequestsPerSecond: 1000, BurstSize: 1000}), zerolog.Nop())
}

func TestFetchNormalizesFares(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		q := r.URL.Query()
		assert.Equal(t, "DUB", q.Get("departureAirportIataCode"))
		assert.Equal(t, "STN", q.Get("arrivalAirportIataCode"))
		assert.Equal(t, "2026-09-20", q.Get("outboundDepartureDateFrom"))
		assert.Equal(t, "2026-09-20", q.Get("outboundDepartureDateTo"))
		assert.Equal(t, "EUR", q.Get("currency"))
		_, _ = w.Write([]byte(faresBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	legs, err := c.Fetch(context.Background(), "DUB", "STN", fetchDate, "EUR")
	require.NoError(t, err)
	require.Len(t, legs, 1)

	leg := legs[0]
	assert.Equal(t, "outbound", leg.LegType)
	assert.Equal(t, "DUB", leg.OriginAirport)
	assert.Equal(t, "STN", leg.DestinationAirport)
	assert.Equal(t, "FR 342", leg.FlightNumber)
	assert.Equal(t, "Ryanair", leg.Operator)
	assert.Equal(t, 85, leg.DurationMinutes)
	assert.Equal(t, 29.99, leg.Price)
	assert.Equal(t, "EUR", leg.Currency)
	assert.Equal(t, int32(1), requests.Load())
}

func TestFetchServesCacheHitWithoutNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(faresBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	ctx := context.Background()

	first, err := c.Fetch(ctx, "DUB", "STN", fetchDate, "EUR")
	require.NoError(t, err)
	second, err := c.Fetch(ctx, "DUB", "STN", fetchDate, "EUR")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), requests.Load(), "cache hit must not reach the network")
}

func TestFetchCachesEmptyResult(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"fares": []}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	ctx := context.Background()

	legs, err := c.Fetch(ctx, "DUB", "SKG", fetchDate, "EUR")
	require.NoError(t, err)
	assert.Empty(t, legs)

	_, err = c.Fetch(ctx, "DUB", "SKG", fetchDate, "EUR")
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load(), "confirmed no-service must be cached")
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(faresBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	legs, err := c.Fetch(context.Background(), "DUB", "STN", fetchDate, "EUR")
	require.NoError(t, err)
	assert.Len(t, legs, 1)
	assert.Equal(t, int32(3), requests.Load())
}

func TestFetchExhaustedRetries(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 1)
	_, err := c.Fetch(context.Background(), "DUB", "STN", fetchDate, "EUR")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), requests.Load(), "one initial attempt plus one retry")
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.Fetch(context.Background(), "DUB", "STN", fetchDate, "EUR")
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, int32(1), requests.Load(), "4xx must abort immediately")
}

func TestFetchDoesNotRetryMalformedPayload(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{"fares": [{"outbound": {"departureDate": "not-a-time"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.Fetch(context.Background(), "DUB", "STN", fetchDate, "EUR")
	require.ErrorIs(t, err, ErrBadPayload)
	assert.Equal(t, int32(1), requests.Load())
}
