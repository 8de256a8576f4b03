// Package airports holds the static airport directory and route network
// the search engine plans against. The network mirrors the carrier's
// published point-to-point routes; it is data, not configuration, and is
// compiled in the same way the timetable CSV was bundled upstream.
package airports

import (
	"sort"
	"strings"

	"github.com/skyhop/flightconnect/internal/models"
)

// Directory answers airport and route lookups. All methods are read-only
// and safe for concurrent use.
type Directory struct {
	byCode map[string]models.AirportInfo
	routes map[string][]string
}

// NewDirectory returns the bundled European network.
func NewDirectory() *Directory {
	d := &Directory{
		byCode: make(map[string]models.AirportInfo, len(airportTable)),
		routes: make(map[string][]string, len(routeTable)),
	}
	for _, a := range airportTable {
		d.byCode[a.IATACode] = a
	}
	for origin, dests := range routeTable {
		sorted := append([]string(nil), dests...)
		sort.Strings(sorted)
		d.routes[origin] = sorted
	}
	return d
}

// Known reports whether code is in the directory.
func (d *Directory) Known(code string) bool {
	_, ok := d.byCode[code]
	return ok
}

// Lookup returns the airport record for code.
func (d *Directory) Lookup(code string) (models.AirportInfo, bool) {
	a, ok := d.byCode[code]
	return a, ok
}

// All returns every airport, sorted by IATA code.
func (d *Directory) All() []models.AirportInfo {
	out := make([]models.AirportInfo, 0, len(d.byCode))
	for _, a := range d.byCode {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IATACode < out[j].IATACode })
	return out
}

// DestinationsFrom returns the airports directly served from origin,
// sorted by code. Unknown origins yield nil.
func (d *Directory) DestinationsFrom(origin string) []models.AirportInfo {
	codes, ok := d.routes[origin]
	if !ok {
		return nil
	}
	out := make([]models.AirportInfo, 0, len(codes))
	for _, c := range codes {
		if a, ok := d.byCode[c]; ok {
			out = append(out, a)
		}
	}
	return out
}

// ConnectionCandidates returns the layover airports usable between origin
// and destination: airports served from the origin that themselves serve
// the destination, excluding the endpoints.
func (d *Directory) ConnectionCandidates(origin, destination string) []string {
	var hubs []string
	for _, mid := range d.routes[origin] {
		if mid == origin || mid == destination {
			continue
		}
		if d.serves(mid, destination) {
			hubs = append(hubs, mid)
		}
	}
	return hubs
}

// LookupByCity returns airports whose city contains name,
// case-insensitively.
func (d *Directory) LookupByCity(name string) []models.AirportInfo {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var out []models.AirportInfo
	for _, a := range d.All() {
		if strings.Contains(strings.ToLower(a.CityName), needle) {
			out = append(out, a)
		}
	}
	return out
}

func (d *Directory) serves(origin, destination string) bool {
	for _, c := range d.routes[origin] {
		if c == destination {
			return true
		}
	}
	return false
}
