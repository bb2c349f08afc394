// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/types"
)

// Dependencies required by HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the application service.
type Dependencies interface {
	// Participation returns the yearly participation trend rows.
	Participation(ctx context.Context) ([]types.ParticipationPoint, error)

	// Medals returns the top-limit medal leaderboard rows.
	Medals(ctx context.Context, limit int) ([]types.MedalRow, error)

	// AgeDistribution returns the sport-by-age-bucket shares for a Games
	// edition. Zero year or empty season selects the configured defaults.
	AgeDistribution(ctx context.Context, year int, season model.Season) ([]types.AgeShare, error)

	// RecordIntervals returns the record validity spans and the reference
	// time that closes the open-ended last span.
	RecordIntervals(ctx context.Context) ([]types.RecordSpan, time.Time, error)

	// Palette maps nationalities to display colors for the records view.
	Palette() map[string]string

	// Refresh reloads the sources and rebuilds all derived tables.
	Refresh(ctx context.Context) error
}

// Server wires HTTP routes for the dataset API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	participationHandler *ParticipationHandler
	medalsHandler        *MedalsHandler
	agesHandler          *AgesHandler
	recordsHandler       *RecordsHandler
	refreshHandler       *RefreshHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	cfg := newSettings(opts...)

	return &Server{
		healthHandler:        NewHealthHandler(),
		statsHandler:         NewStatsHandler(statsProvider),
		participationHandler: NewParticipationHandler(deps),
		medalsHandler:        NewMedalsHandler(deps, cfg.defaultLimit, cfg.maxLimit),
		agesHandler:          NewAgesHandler(deps),
		recordsHandler:       NewRecordsHandler(deps),
		refreshHandler:       NewRefreshHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/datasets/participation", MetricsMiddleware(s.participationHandler.HandleGetParticipation, "participation"))
	mux.HandleFunc("/datasets/medals", MetricsMiddleware(s.medalsHandler.HandleGetMedals, "medals"))
	mux.HandleFunc("/datasets/ages", MetricsMiddleware(s.agesHandler.HandleGetAges, "ages"))
	mux.HandleFunc("/datasets/records", MetricsMiddleware(s.recordsHandler.HandleGetRecords, "records"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
