// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/types"
)

// AgesDependencies defines the interface for age distribution queries.
type AgesDependencies interface {
	AgeDistribution(ctx context.Context, year int, season model.Season) ([]types.AgeShare, error)
}

// AgesHandler handles age distribution requests.
type AgesHandler struct {
	deps AgesDependencies
}

// NewAgesHandler creates a new age distribution handler.
func NewAgesHandler(deps AgesDependencies) *AgesHandler {
	return &AgesHandler{deps: deps}
}

// HandleGetAges handles GET /datasets/ages requests. Optional year= and
// season= query parameters select a different Games edition than the
// configured default.
func (h *AgesHandler) HandleGetAges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	var year int
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		v, err := strconv.Atoi(yearStr)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "bad_year", ErrBadRequest)
			return
		}
		year = v
	}

	var season model.Season
	if seasonStr := r.URL.Query().Get("season"); seasonStr != "" {
		s, ok := model.ParseSeason(seasonStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "bad_season", ErrBadRequest)
			return
		}
		season = s
	}

	shares, err := h.deps.AgeDistribution(r.Context(), year, season)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
		return
	}
	writeJSON(w, http.StatusOK, shares)
}
