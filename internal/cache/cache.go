// Package cache provides the time-bounded fare store shared by every
// in-flight fetch. An entry maps one (origin, destination, date, currency)
// key to the legs the fare source reported for it; an empty slice is a
// confirmed "no service" result and is cached like any other value.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/skyhop/flightconnect/internal/models"
)

const dateLayout = "2006-01-02"

// Key identifies one cached fare lookup.
type Key struct {
	Origin      string
	Destination string
	Date        time.Time
	Currency    string
}

func (k Key) String() string {
	return fmt.Sprintf("fare:%s:%s:%s:%s", k.Origin, k.Destination, k.Date.Format(dateLayout), k.Currency)
}

// FareCache exposes atomic per-key get/put. Get returns the stored legs
// only while the entry is unexpired; Set overwrites wholesale.
type FareCache interface {
	Get(ctx context.Context, key Key) ([]models.FlightLeg, bool)
	Set(ctx context.Context, key Key, legs []models.FlightLeg) error
}
