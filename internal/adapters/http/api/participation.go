// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/podiumlab/podium/internal/domain/types"
)

// ParticipationDependencies defines the interface for participation queries.
type ParticipationDependencies interface {
	Participation(ctx context.Context) ([]types.ParticipationPoint, error)
}

// ParticipationHandler handles participation trend requests.
type ParticipationHandler struct {
	deps ParticipationDependencies
}

// NewParticipationHandler creates a new participation handler.
func NewParticipationHandler(deps ParticipationDependencies) *ParticipationHandler {
	return &ParticipationHandler{deps: deps}
}

// HandleGetParticipation handles GET /datasets/participation requests.
func (h *ParticipationHandler) HandleGetParticipation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	points, err := h.deps.Participation(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}
