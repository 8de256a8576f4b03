package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyhop/flightconnect/internal/airports"
	"github.com/skyhop/flightconnect/internal/models"
)

// AirportsHandler serves the static directory lookups; no engine
// involvement.
type AirportsHandler struct {
	dir *airports.Directory
}

func NewAirportsHandler(dir *airports.Directory) *AirportsHandler {
	return &AirportsHandler{dir: dir}
}

func (h *AirportsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dir.All())
}

func (h *AirportsHandler) Destinations(c echo.Context) error {
	origin := strings.ToUpper(c.Param("origin"))
	if !h.dir.Known(origin) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Detail: "unknown origin airport " + origin,
		})
	}
	return c.JSON(http.StatusOK, h.dir.DestinationsFrom(origin))
}

func (h *AirportsHandler) IATALookup(c echo.Context) error {
	city := c.Param("cityName")
	matches := h.dir.LookupByCity(city)
	if len(matches) == 0 {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Detail: "no airports found for city " + city,
		})
	}
	return c.JSON(http.StatusOK, matches)
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
