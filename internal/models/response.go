package models

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	FlightOptions []FlightOption `json:"flight_options"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// AirportInfo describes one airport in the directory endpoints.
type AirportInfo struct {
	IATACode    string  `json:"iata_code"`
	Name        string  `json:"name"`
	CityName    string  `json:"city_name"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
