package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhop/flightconnect/internal/models"
)

var day = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

func direct(number string, dep time.Time, price float64) models.FlightOption {
	return models.FlightOption{
		Type:       models.OptionDirect,
		TotalPrice: price,
		Currency:   "EUR",
		Legs: []models.FlightLeg{{
			FlightNumber:      number,
			DepartureDateTime: dep,
			Price:             price,
			Currency:          "EUR",
		}},
		Layovers: []models.Layover{},
	}
}

func oneStop(first, second string, dep time.Time, price float64) models.FlightOption {
	return models.FlightOption{
		Type:       models.OptionOneStop,
		TotalPrice: price,
		Currency:   "EUR",
		Legs: []models.FlightLeg{
			{FlightNumber: first, DepartureDateTime: dep, Currency: "EUR"},
			{FlightNumber: second, DepartureDateTime: dep.Add(3 * time.Hour), Currency: "EUR"},
		},
		Layovers: []models.Layover{{Airport: "STN", DurationMinutes: 90}},
	}
}

func TestAggregateSortsByPrice(t *testing.T) {
	got := Aggregate(
		[]models.FlightOption{direct("FR 1", day.Add(9*time.Hour), 80), direct("FR 2", day.Add(7*time.Hour), 20)},
		[]models.FlightOption{oneStop("FR 3", "FR 4", day.Add(6*time.Hour), 50)},
		1,
	)

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].TotalPrice, got[i].TotalPrice)
	}
	assert.Equal(t, 20.0, got[0].TotalPrice)
	assert.Equal(t, 50.0, got[1].TotalPrice)
}

func TestAggregateDropsConnectionsWhenDirectOnly(t *testing.T) {
	got := Aggregate(
		[]models.FlightOption{direct("FR 1", day.Add(9*time.Hour), 80)},
		[]models.FlightOption{oneStop("FR 3", "FR 4", day.Add(6*time.Hour), 50)},
		0,
	)

	require.Len(t, got, 1)
	assert.Equal(t, models.OptionDirect, got[0].Type)
}

func TestAggregateDeduplicates(t *testing.T) {
	dup := oneStop("FR 3", "FR 4", day.Add(6*time.Hour), 50)

	got := Aggregate(nil, []models.FlightOption{dup, dup}, 1)
	assert.Len(t, got, 1)
}

func TestAggregateTieBreaks(t *testing.T) {
	earlier := direct("FR 1", day.Add(7*time.Hour), 50)
	later := direct("FR 2", day.Add(10*time.Hour), 50)
	stop := oneStop("FR 3", "FR 4", day.Add(7*time.Hour), 50)

	got := Aggregate([]models.FlightOption{later, earlier}, []models.FlightOption{stop}, 1)
	require.Len(t, got, 3)

	// Same price: earliest departure first; at the same departure the
	// direct itinerary precedes the one-stop.
	assert.Equal(t, "FR 1", got[0].Legs[0].FlightNumber)
	assert.Equal(t, models.OptionOneStop, got[1].Type)
	assert.Equal(t, "FR 2", got[2].Legs[0].FlightNumber)
}

func TestAggregateEmptyInput(t *testing.T) {
	got := Aggregate(nil, nil, 1)
	assert.Empty(t, got)
}
