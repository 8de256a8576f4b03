package search

import (
	"sync"
	"time"

	"github.com/skyhop/flightconnect/internal/models"
)

// fareTable collects per-lookup outcomes from the fetch fan-out and
// serves them to the matcher. Writes happen only during the fan-out;
// reads only after it joins.
type fareTable struct {
	mu        sync.Mutex
	fares     map[routeDate][]models.FlightLeg
	succeeded int
	failed    int
}

func newFareTable(capacity int) *fareTable {
	return &fareTable{fares: make(map[routeDate][]models.FlightLeg, capacity)}
}

func (t *fareTable) put(key routeDate, legs []models.FlightLeg) {
	t.mu.Lock()
	t.fares[key] = legs
	t.succeeded++
	t.mu.Unlock()
}

func (t *fareTable) fail() {
	t.mu.Lock()
	t.failed++
	t.mu.Unlock()
}

// Lookup implements matcher.FareLookup.
func (t *fareTable) Lookup(origin, destination string, date time.Time) ([]models.FlightLeg, bool) {
	t.mu.Lock()
	legs, ok := t.fares[routeDate{origin, destination, date}]
	t.mu.Unlock()
	return legs, ok
}
