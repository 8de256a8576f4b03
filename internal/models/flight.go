package models

import "time"

// Itinerary types carried in FlightOption.Type.
const (
	OptionDirect  = "direct"
	OptionOneStop = "one-stop"
)

// LegTypeOutbound is the only leg type the engine produces; round-trip
// search is not implemented.
const LegTypeOutbound = "outbound"

// FlightLeg is one scheduled, priced flight segment. Legs are immutable
// once fetched from the fare source.
type FlightLeg struct {
	LegType            string    `json:"leg_type"`
	OriginAirport      string    `json:"origin_airport"`
	DestinationAirport string    `json:"destination_airport"`
	DepartureDateTime  time.Time `json:"departure_datetime"`
	ArrivalDateTime    time.Time `json:"arrival_datetime"`
	FlightNumber       string    `json:"flight_number"`
	Operator           string    `json:"operator"`
	DurationMinutes    int       `json:"duration_minutes"`
	Price              float64   `json:"price"`
	Currency           string    `json:"currency"`
}

// Layover is the gap between two legs of a one-stop itinerary.
type Layover struct {
	Airport         string `json:"airport"`
	DurationMinutes int    `json:"duration_minutes"`
}

// FlightOption is a complete itinerary: one leg for direct, two legs
// joined by exactly one layover for one-stop. Options are value objects
// built fresh for every search.
type FlightOption struct {
	Type       string      `json:"type"`
	TotalPrice float64     `json:"total_price"`
	Currency   string      `json:"currency"`
	Legs       []FlightLeg `json:"legs"`
	Layovers   []Layover   `json:"layovers"`
}

// Departure returns the departure time of the first leg.
func (o FlightOption) Departure() time.Time {
	if len(o.Legs) == 0 {
		return time.Time{}
	}
	return o.Legs[0].DepartureDateTime
}
