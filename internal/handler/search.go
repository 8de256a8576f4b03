package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyhop/flightconnect/internal/models"
	"github.com/skyhop/flightconnect/internal/search"
)

// Searcher is implemented by the search orchestrator.
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.FlightOption, error)
}

type SearchHandler struct {
	searcher Searcher
	log      zerolog.Logger
	now      func() time.Time
}

func NewSearchHandler(s Searcher, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		searcher: s,
		log:      log.With().Str("component", "http").Logger(),
		now:      time.Now,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "failed to parse request body: " + err.Error(),
		})
	}

	if err := req.Validate(h.now()); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
	}

	options, err := h.searcher.Search(c.Request().Context(), req)
	if err != nil {
		return h.searchError(c, err)
	}

	if options == nil {
		options = []models.FlightOption{}
	}
	return c.JSON(http.StatusOK, models.SearchResponse{FlightOptions: options})
}

func (h *SearchHandler) searchError(c echo.Context, err error) error {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: ve.Error()})
	case errors.Is(err, search.ErrUpstreamUnavailable):
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Detail: "fare source is unavailable, please retry later",
		})
	default:
		h.log.Error().Err(err).Msg("search failed")
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "an unexpected error occurred while searching for flights",
		})
	}
}
