// Package search drives a validated request through date expansion, the
// upstream fetch fan-out, connection matching and aggregation.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/skyhop/flightconnect/internal/aggregator"
	"github.com/skyhop/flightconnect/internal/airports"
	"github.com/skyhop/flightconnect/internal/dates"
	"github.com/skyhop/flightconnect/internal/matcher"
	"github.com/skyhop/flightconnect/internal/models"
)

// ErrUpstreamUnavailable is returned when every planned fetch failed;
// a partial failure never surfaces it.
var ErrUpstreamUnavailable = errors.New("upstream fare source unavailable")

// FareSource fetches the legs for one (route, date) lookup. Implemented
// by the ryanair client; stubbed in tests.
type FareSource interface {
	Fetch(ctx context.Context, origin, destination string, date time.Time, currency string) ([]models.FlightLeg, error)
}

type Config struct {
	MinLayover time.Duration
	MaxLayover time.Duration
	// MaxConcurrentFetches bounds the fan-out degree.
	MaxConcurrentFetches int
	// MaxAnyDestinations caps the destinations an ANY search expands to.
	MaxAnyDestinations int
}

type Orchestrator struct {
	source   FareSource
	airports *airports.Directory
	matcher  *matcher.Matcher
	cfg      Config
	log      zerolog.Logger
}

func NewOrchestrator(source FareSource, dir *airports.Directory, cfg Config, log zerolog.Logger) *Orchestrator {
	if cfg.MaxConcurrentFetches <= 0 {
		cfg.MaxConcurrentFetches = 8
	}
	if cfg.MaxAnyDestinations <= 0 {
		cfg.MaxAnyDestinations = 50
	}
	return &Orchestrator{
		source:   source,
		airports: dir,
		matcher:  matcher.New(cfg.MinLayover, cfg.MaxLayover, log),
		cfg:      cfg,
		log:      log.With().Str("component", "search").Logger(),
	}
}

// Search returns the aggregated, price-sorted itinerary list for a
// request that already passed models.SearchRequest.Validate.
func (o *Orchestrator) Search(ctx context.Context, req models.SearchRequest) ([]models.FlightOption, error) {
	if !o.airports.Known(req.Origin) {
		return nil, models.ValidationError(fmt.Sprintf("unknown origin airport %q", req.Origin))
	}
	if req.Destination != models.DestinationAny && !o.airports.Known(req.Destination) {
		return nil, models.ValidationError(fmt.Sprintf("unknown destination airport %q", req.Destination))
	}

	candidateDates, err := dates.Expand(req.Date(), req.DateFlexibility.Departure)
	if err != nil {
		return nil, models.ValidationError(err.Error())
	}

	destinations := o.destinations(req)
	hubsByDest := make(map[string][]string, len(destinations))
	if req.MaxConnections > 0 {
		for _, dest := range destinations {
			hubsByDest[dest] = o.airports.ConnectionCandidates(req.Origin, dest)
		}
	}

	plan := buildPlan(req.Origin, destinations, hubsByDest, candidateDates)
	table := o.fetchAll(ctx, plan, req.Currency)

	if table.succeeded == 0 && len(plan) > 0 {
		return nil, fmt.Errorf("all %d fare lookups failed: %w", len(plan), ErrUpstreamUnavailable)
	}

	var direct, oneStop []models.FlightOption
	for _, dest := range destinations {
		direct = append(direct, o.matcher.Direct(req.Origin, dest, candidateDates, table)...)
		if req.MaxConnections > 0 {
			oneStop = append(oneStop, o.matcher.Connections(req.Origin, dest, candidateDates, hubsByDest[dest], table)...)
		}
	}

	options := aggregator.Aggregate(direct, oneStop, req.MaxConnections)

	o.log.Info().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Int("lookups", len(plan)).
		Int("failed_lookups", table.failed).
		Int("options", len(options)).
		Msg("search completed")

	return options, nil
}

func (o *Orchestrator) destinations(req models.SearchRequest) []string {
	if req.Destination != models.DestinationAny {
		return []string{req.Destination}
	}
	reachable := o.airports.DestinationsFrom(req.Origin)
	if len(reachable) > o.cfg.MaxAnyDestinations {
		reachable = reachable[:o.cfg.MaxAnyDestinations]
	}
	codes := make([]string, 0, len(reachable))
	for _, a := range reachable {
		codes = append(codes, a.IATACode)
	}
	return codes
}

type routeDate struct {
	origin      string
	destination string
	date        time.Time
}

// buildPlan enumerates every (route, date) the search needs: direct legs
// per destination and date, and for each layover candidate the outbound
// leg plus onward legs on the date and the next calendar day. Overlapping
// hubs across destinations collapse into one fetch.
func buildPlan(origin string, destinations []string, hubsByDest map[string][]string, candidateDates []time.Time) map[routeDate]struct{} {
	plan := make(map[routeDate]struct{})
	for _, dest := range destinations {
		for _, date := range candidateDates {
			plan[routeDate{origin, dest, date}] = struct{}{}
			for _, hub := range hubsByDest[dest] {
				plan[routeDate{origin, hub, date}] = struct{}{}
				plan[routeDate{hub, dest, date}] = struct{}{}
				plan[routeDate{hub, dest, date.AddDate(0, 0, 1)}] = struct{}{}
			}
		}
	}
	return plan
}

// fetchAll dispatches the plan through a bounded group and records every
// outcome. A failed lookup is logged and dropped; it never cancels the
// rest of the fan-out.
func (o *Orchestrator) fetchAll(ctx context.Context, plan map[routeDate]struct{}, currency string) *fareTable {
	table := newFareTable(len(plan))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxConcurrentFetches)

	for key := range plan {
		key := key
		g.Go(func() error {
			legs, err := o.source.Fetch(gctx, key.origin, key.destination, key.date, currency)
			if err != nil {
				o.log.Warn().Err(err).
					Str("origin", key.origin).
					Str("destination", key.destination).
					Str("date", key.date.Format("2006-01-02")).
					Msg("fare lookup dropped")
				table.fail()
				return nil
			}
			table.put(key, legs)
			return nil
		})
	}
	// Task closures always return nil; Wait only joins the group.
	_ = g.Wait()

	return table
}
