// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/podiumlab/podium/internal/domain/types"
)

// RecordsDependencies defines the interface for record interval queries.
type RecordsDependencies interface {
	RecordIntervals(ctx context.Context) ([]types.RecordSpan, time.Time, error)
	Palette() map[string]string
}

// RecordsHandler handles world-record interval requests.
type RecordsHandler struct {
	deps RecordsDependencies
}

// NewRecordsHandler creates a new record intervals handler.
func NewRecordsHandler(deps RecordsDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// recordsResponse carries the spans together with the reference time that
// closes the still-standing record and the nationality color palette.
type recordsResponse struct {
	AsOf    time.Time          `json:"as_of"`
	Palette map[string]string  `json:"palette,omitempty"`
	Spans   []types.RecordSpan `json:"spans"`
}

// HandleGetRecords handles GET /datasets/records requests.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	spans, asOf, err := h.deps.RecordIntervals(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
		return
	}
	writeJSON(w, http.StatusOK, recordsResponse{
		AsOf:    asOf,
		Palette: h.deps.Palette(),
		Spans:   spans,
	})
}
