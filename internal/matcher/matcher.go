// Package matcher builds itinerary candidates from fetched fares. It
// performs no I/O: the orchestrator fetches every leg the plan needs and
// hands the results in through a FareLookup.
package matcher

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/skyhop/flightconnect/internal/models"
)

// FareLookup resolves the legs fetched for one (origin, destination,
// date) route. The second return is false when the fetch failed or was
// never planned; a present empty slice means confirmed no service.
type FareLookup interface {
	Lookup(origin, destination string, date time.Time) ([]models.FlightLeg, bool)
}

type Matcher struct {
	minLayover time.Duration
	maxLayover time.Duration
	log        zerolog.Logger
}

func New(minLayover, maxLayover time.Duration, log zerolog.Logger) *Matcher {
	return &Matcher{
		minLayover: minLayover,
		maxLayover: maxLayover,
		log:        log.With().Str("component", "matcher").Logger(),
	}
}

// Direct wraps each origin->destination leg on the candidate dates as a
// single-leg option.
func (m *Matcher) Direct(origin, destination string, candidateDates []time.Time, fares FareLookup) []models.FlightOption {
	var options []models.FlightOption
	for _, date := range candidateDates {
		legs, ok := fares.Lookup(origin, destination, date)
		if !ok {
			continue
		}
		for _, leg := range legs {
			options = append(options, models.FlightOption{
				Type:       models.OptionDirect,
				TotalPrice: leg.Price,
				Currency:   leg.Currency,
				Legs:       []models.FlightLeg{leg},
				Layovers:   []models.Layover{},
			})
		}
	}
	return options
}

// Connections pairs outbound legs origin->hub with onward legs
// hub->destination for each candidate date and hub. Onward legs are taken
// from the outbound date and the next calendar day, so overnight
// connections are found; a pair is kept only when the layover falls
// inside [minLayover, maxLayover] and both legs are priced in the same
// currency.
func (m *Matcher) Connections(origin, destination string, candidateDates []time.Time, hubs []string, fares FareLookup) []models.FlightOption {
	var options []models.FlightOption
	for _, date := range candidateDates {
		for _, hub := range hubs {
			outbound, ok := fares.Lookup(origin, hub, date)
			if !ok || len(outbound) == 0 {
				continue
			}

			var onward []models.FlightLeg
			if legs, ok := fares.Lookup(hub, destination, date); ok {
				onward = append(onward, legs...)
			}
			if legs, ok := fares.Lookup(hub, destination, date.AddDate(0, 0, 1)); ok {
				onward = append(onward, legs...)
			}
			if len(onward) == 0 {
				continue
			}

			matched := 0
			for _, out := range outbound {
				for _, on := range onward {
					if opt, ok := m.connect(out, on, hub); ok {
						options = append(options, opt)
						matched++
					}
				}
			}
			if matched > 0 {
				m.log.Debug().
					Str("origin", origin).
					Str("destination", destination).
					Str("hub", hub).
					Int("connections", matched).
					Msg("matched connections via hub")
			}
		}
	}
	return options
}

func (m *Matcher) connect(out, on models.FlightLeg, hub string) (models.FlightOption, bool) {
	gap := on.DepartureDateTime.Sub(out.ArrivalDateTime)
	if gap < m.minLayover || gap > m.maxLayover {
		return models.FlightOption{}, false
	}
	// Cross-currency pairs cannot be summed into one total price.
	if out.Currency != on.Currency {
		return models.FlightOption{}, false
	}

	return models.FlightOption{
		Type:       models.OptionOneStop,
		TotalPrice: out.Price + on.Price,
		Currency:   out.Currency,
		Legs:       []models.FlightLeg{out, on},
		Layovers: []models.Layover{{
			Airport:         hub,
			DurationMinutes: int(gap.Minutes()),
		}},
	}, true
}
