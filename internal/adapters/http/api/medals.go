// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/podiumlab/podium/internal/domain/types"
)

// MedalsDependencies defines the interface for leaderboard queries.
type MedalsDependencies interface {
	Medals(ctx context.Context, limit int) ([]types.MedalRow, error)
}

// MedalsHandler handles medal leaderboard requests.
type MedalsHandler struct {
	deps         MedalsDependencies
	defaultLimit int
	maxLimit     int
}

// NewMedalsHandler creates a new medal leaderboard handler.
func NewMedalsHandler(deps MedalsDependencies, defaultLimit, maxLimit int) *MedalsHandler {
	return &MedalsHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleGetMedals handles GET /datasets/medals?limit=N requests. The limit
// defaults to the configured leaderboard size when absent.
func (h *MedalsHandler) HandleGetMedals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	n := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if v > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
		n = v
	}

	rows, err := h.deps.Medals(r.Context(), n)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
