package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d := NewDirectory()

	a, ok := d.Lookup("DUB")
	require.True(t, ok)
	assert.Equal(t, "Dublin", a.CityName)

	_, ok = d.Lookup("XXX")
	assert.False(t, ok)
	assert.True(t, d.Known("STN"))
	assert.False(t, d.Known("JFK"))
}

func TestAllSorted(t *testing.T) {
	d := NewDirectory()

	all := d.All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].IATACode, all[i].IATACode)
	}
}

func TestDestinationsFrom(t *testing.T) {
	d := NewDirectory()

	dests := d.DestinationsFrom("DUB")
	require.NotEmpty(t, dests)
	for _, a := range dests {
		assert.NotEqual(t, "DUB", a.IATACode)
	}

	assert.Nil(t, d.DestinationsFrom("XXX"))
}

func TestConnectionCandidates(t *testing.T) {
	d := NewDirectory()

	hubs := d.ConnectionCandidates("DUB", "BCN")
	require.NotEmpty(t, hubs)
	assert.Contains(t, hubs, "STN")

	for _, hub := range hubs {
		assert.NotEqual(t, "DUB", hub)
		assert.NotEqual(t, "BCN", hub)
		assert.True(t, d.serves("DUB", hub), "hub %s must be reachable from origin", hub)
		assert.True(t, d.serves(hub, "BCN"), "hub %s must serve the destination", hub)
	}
}

func TestLookupByCity(t *testing.T) {
	d := NewDirectory()

	matches := d.LookupByCity("london")
	require.Len(t, matches, 1)
	assert.Equal(t, "STN", matches[0].IATACode)

	assert.Empty(t, d.LookupByCity("Atlantis"))
	assert.Empty(t, d.LookupByCity("  "))
}
