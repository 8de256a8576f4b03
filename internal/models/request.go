package models

import (
	"fmt"
	"time"

	"github.com/skyhop/flightconnect/pkg/currency"
)

// DestinationAny is the wildcard destination token.
const DestinationAny = "ANY"

const dateLayout = "2006-01-02"

type Passengers struct {
	Adults   int `json:"adults"`
	Teens    int `json:"teens"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type DateFlexibility struct {
	Departure  int `json:"departure"`
	ReturnDate int `json:"return_date"`
}

type SearchRequest struct {
	Origin             string          `json:"origin"`
	Destination        string          `json:"destination"`
	DepartureDate      string          `json:"departure_date"`
	ReturnDate         *string         `json:"return_date,omitempty"`
	Passengers         Passengers      `json:"passengers"`
	DateFlexibility    DateFlexibility `json:"date_flexibility"`
	MaxConnections     int             `json:"max_connections"`
	Currency           string          `json:"currency"`
	IncludeConnections bool            `json:"include_connections"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

func isIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Validate normalizes codes to upper case, fills defaults and rejects
// malformed or out-of-range input. now anchors the departure-date check.
func (r *SearchRequest) Validate(now time.Time) error {
	r.Origin = toUpper(r.Origin)
	r.Destination = toUpper(r.Destination)

	if !isIATACode(r.Origin) {
		return ValidationError(fmt.Sprintf("origin must be a 3-letter IATA code, got %q", r.Origin))
	}
	if r.Destination != DestinationAny && !isIATACode(r.Destination) {
		return ValidationError(fmt.Sprintf("destination must be a 3-letter IATA code or ANY, got %q", r.Destination))
	}
	if r.Origin == r.Destination {
		return ValidationError("origin and destination must differ")
	}

	dep, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return ValidationError(fmt.Sprintf("departure_date must be YYYY-MM-DD, got %q", r.DepartureDate))
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dep.Before(today) {
		return ValidationError("departure_date must not be in the past")
	}

	if r.ReturnDate != nil && *r.ReturnDate != "" {
		return ValidationError("round-trip search is not supported; return_date must be null")
	}
	if r.DateFlexibility.ReturnDate != 0 {
		return ValidationError("date_flexibility.return_date must be 0")
	}
	if r.DateFlexibility.Departure < 0 {
		return ValidationError("date_flexibility.departure must not be negative")
	}

	if r.Passengers.Adults < 1 {
		return ValidationError("passengers.adults must be at least 1")
	}
	if r.Passengers.Teens < 0 || r.Passengers.Children < 0 || r.Passengers.Infants < 0 {
		return ValidationError("passenger counts must not be negative")
	}

	if r.MaxConnections < 0 || r.MaxConnections > 1 {
		return ValidationError("max_connections must be 0 or 1")
	}

	if r.Currency == "" {
		r.Currency = currency.Default
	}
	code, err := currency.Normalize(r.Currency)
	if err != nil {
		return ValidationError(err.Error())
	}
	r.Currency = code

	return nil
}

// Date returns the parsed departure date. Valid only after Validate.
func (r SearchRequest) Date() time.Time {
	d, _ := time.Parse(dateLayout, r.DepartureDate)
	return d
}

func toUpper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
