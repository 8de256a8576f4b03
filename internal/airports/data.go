package airports

import "github.com/skyhop/flightconnect/internal/models"

var airportTable = []models.AirportInfo{
	{IATACode: "DUB", Name: "Dublin Airport", CityName: "Dublin", CountryName: "Ireland", Latitude: 53.4213, Longitude: -6.2701},
	{IATACode: "STN", Name: "London Stansted Airport", CityName: "London", CountryName: "United Kingdom", Latitude: 51.8860, Longitude: 0.2389},
	{IATACode: "MAN", Name: "Manchester Airport", CityName: "Manchester", CountryName: "United Kingdom", Latitude: 53.3537, Longitude: -2.2750},
	{IATACode: "EDI", Name: "Edinburgh Airport", CityName: "Edinburgh", CountryName: "United Kingdom", Latitude: 55.9500, Longitude: -3.3725},
	{IATACode: "BGY", Name: "Milan Bergamo Airport", CityName: "Milan", CountryName: "Italy", Latitude: 45.6739, Longitude: 9.7042},
	{IATACode: "CIA", Name: "Rome Ciampino Airport", CityName: "Rome", CountryName: "Italy", Latitude: 41.7994, Longitude: 12.5949},
	{IATACode: "CRL", Name: "Brussels South Charleroi Airport", CityName: "Brussels", CountryName: "Belgium", Latitude: 50.4592, Longitude: 4.4538},
	{IATACode: "BVA", Name: "Paris Beauvais Airport", CityName: "Paris", CountryName: "France", Latitude: 49.4544, Longitude: 2.1128},
	{IATACode: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", CityName: "Madrid", CountryName: "Spain", Latitude: 40.4719, Longitude: -3.5626},
	{IATACode: "BCN", Name: "Barcelona El Prat Airport", CityName: "Barcelona", CountryName: "Spain", Latitude: 41.2971, Longitude: 2.0785},
	{IATACode: "AGP", Name: "Malaga Airport", CityName: "Malaga", CountryName: "Spain", Latitude: 36.6749, Longitude: -4.4991},
	{IATACode: "ALC", Name: "Alicante-Elche Airport", CityName: "Alicante", CountryName: "Spain", Latitude: 38.2822, Longitude: -0.5582},
	{IATACode: "PMI", Name: "Palma de Mallorca Airport", CityName: "Palma", CountryName: "Spain", Latitude: 39.5517, Longitude: 2.7388},
	{IATACode: "OPO", Name: "Porto Airport", CityName: "Porto", CountryName: "Portugal", Latitude: 41.2481, Longitude: -8.6814},
	{IATACode: "FAO", Name: "Faro Airport", CityName: "Faro", CountryName: "Portugal", Latitude: 37.0144, Longitude: -7.9659},
	{IATACode: "BRE", Name: "Bremen Airport", CityName: "Bremen", CountryName: "Germany", Latitude: 53.0475, Longitude: 8.7867},
	{IATACode: "HHN", Name: "Frankfurt Hahn Airport", CityName: "Frankfurt", CountryName: "Germany", Latitude: 49.9487, Longitude: 7.2639},
	{IATACode: "WMI", Name: "Warsaw Modlin Airport", CityName: "Warsaw", CountryName: "Poland", Latitude: 52.4511, Longitude: 20.6518},
	{IATACode: "KRK", Name: "Krakow John Paul II Airport", CityName: "Krakow", CountryName: "Poland", Latitude: 50.0777, Longitude: 19.7848},
	{IATACode: "BUD", Name: "Budapest Ferenc Liszt Airport", CityName: "Budapest", CountryName: "Hungary", Latitude: 47.4298, Longitude: 19.2611},
	{IATACode: "SKG", Name: "Thessaloniki Airport", CityName: "Thessaloniki", CountryName: "Greece", Latitude: 40.5197, Longitude: 22.9709},
	{IATACode: "ATH", Name: "Athens International Airport", CityName: "Athens", CountryName: "Greece", Latitude: 37.9364, Longitude: 23.9445},
}

// routeTable lists the destinations served nonstop from each airport.
// Routes are directional; most city pairs appear in both directions.
var routeTable = map[string][]string{
	"DUB": {"STN", "MAN", "EDI", "BGY", "CIA", "CRL", "BVA", "MAD", "BCN", "AGP", "ALC", "PMI", "OPO", "FAO", "BUD", "KRK"},
	"STN": {"DUB", "EDI", "BGY", "CIA", "CRL", "BVA", "MAD", "BCN", "AGP", "ALC", "PMI", "OPO", "FAO", "BRE", "HHN", "WMI", "KRK", "BUD", "SKG", "ATH"},
	"MAN": {"DUB", "BGY", "CRL", "MAD", "BCN", "AGP", "ALC", "PMI", "FAO", "KRK", "BUD"},
	"EDI": {"DUB", "STN", "BGY", "CRL", "BVA", "MAD", "BCN", "AGP", "PMI", "KRK"},
	"BGY": {"DUB", "STN", "MAN", "EDI", "CRL", "MAD", "BCN", "AGP", "ALC", "PMI", "OPO", "WMI", "KRK", "BUD", "SKG", "ATH"},
	"CIA": {"DUB", "STN", "CRL", "BVA", "MAD", "BCN", "OPO", "WMI", "BUD", "SKG", "ATH"},
	"CRL": {"DUB", "STN", "MAN", "EDI", "BGY", "CIA", "MAD", "BCN", "AGP", "ALC", "PMI", "OPO", "FAO", "WMI", "KRK", "BUD", "SKG"},
	"BVA": {"DUB", "STN", "EDI", "CIA", "MAD", "BCN", "OPO", "FAO", "WMI", "KRK", "BUD"},
	"MAD": {"DUB", "STN", "MAN", "EDI", "BGY", "CIA", "CRL", "BVA", "OPO", "FAO", "WMI", "KRK", "BUD", "ATH"},
	"BCN": {"DUB", "STN", "MAN", "EDI", "BGY", "CIA", "CRL", "BVA", "OPO", "FAO", "BRE", "WMI", "KRK", "BUD", "SKG", "ATH"},
	"AGP": {"DUB", "STN", "MAN", "EDI", "BGY", "CRL", "OPO", "WMI", "KRK", "BUD"},
	"ALC": {"DUB", "STN", "MAN", "BGY", "CRL", "OPO", "KRK"},
	"PMI": {"DUB", "STN", "MAN", "EDI", "BGY", "CRL", "BRE", "HHN", "KRK", "BUD"},
	"OPO": {"DUB", "STN", "BGY", "CIA", "CRL", "BVA", "MAD", "BCN", "AGP", "ALC", "BRE"},
	"FAO": {"DUB", "STN", "MAN", "CRL", "BVA", "MAD", "BCN"},
	"BRE": {"STN", "BGY", "PMI", "OPO", "KRK", "BUD"},
	"HHN": {"STN", "PMI", "SKG", "ATH"},
	"WMI": {"STN", "BGY", "CIA", "CRL", "BVA", "MAD", "BCN", "AGP", "SKG", "ATH"},
	"KRK": {"DUB", "STN", "MAN", "EDI", "BGY", "CRL", "BVA", "MAD", "BCN", "AGP", "ALC", "PMI", "BRE", "ATH"},
	"BUD": {"DUB", "STN", "MAN", "BGY", "CIA", "CRL", "BVA", "MAD", "BCN", "AGP", "PMI", "BRE", "SKG", "ATH"},
	"SKG": {"STN", "BGY", "CIA", "CRL", "BCN", "HHN", "WMI", "BUD"},
	"ATH": {"STN", "BGY", "CIA", "MAD", "BCN", "HHN", "WMI", "KRK", "BUD"},
}
