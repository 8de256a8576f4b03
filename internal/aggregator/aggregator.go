// Package aggregator merges direct and one-stop candidates into the
// final itinerary list.
package aggregator

import (
	"sort"
	"strings"

	"github.com/skyhop/flightconnect/internal/models"
)

// Aggregate filters one-stop options out when maxConnections is 0,
// deduplicates identical flight-number/departure combinations, and sorts
// ascending by total price (ties: earlier outbound departure, then direct
// before one-stop). It never truncates; pagination is the caller's
// concern.
func Aggregate(direct, oneStop []models.FlightOption, maxConnections int) []models.FlightOption {
	merged := make([]models.FlightOption, 0, len(direct)+len(oneStop))
	merged = append(merged, direct...)
	if maxConnections > 0 {
		merged = append(merged, oneStop...)
	}

	merged = dedupe(merged)

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.TotalPrice != b.TotalPrice {
			return a.TotalPrice < b.TotalPrice
		}
		if da, db := a.Departure(), b.Departure(); !da.Equal(db) {
			return da.Before(db)
		}
		return a.Type == models.OptionDirect && b.Type != models.OptionDirect
	})

	return merged
}

// dedupe drops options whose leg sequence (flight number + departure)
// already appeared; duplicates arise when expansion paths overlap, e.g.
// the same next-day onward leg reached from two adjacent candidate dates.
func dedupe(options []models.FlightOption) []models.FlightOption {
	seen := make(map[string]struct{}, len(options))
	out := options[:0]
	for _, opt := range options {
		k := identity(opt)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, opt)
	}
	return out
}

func identity(opt models.FlightOption) string {
	var b strings.Builder
	b.WriteString(opt.Type)
	for _, leg := range opt.Legs {
		b.WriteByte('|')
		b.WriteString(leg.FlightNumber)
		b.WriteByte('@')
		b.WriteString(leg.DepartureDateTime.Format("2006-01-02T15:04"))
	}
	return b.String()
}
