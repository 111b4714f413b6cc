// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/riot"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// RenderTraditionalMatch produces a PNG report for a Summoner's Rift
	// style match payload.
	RenderTraditionalMatch(ctx context.Context, payload *riot.MatchPayload, tracked []model.TrackedPlayer) ([]byte, error)

	// RenderArenaMatch produces a PNG report for an arena match payload.
	RenderArenaMatch(ctx context.Context, payload *riot.MatchPayload, tracked []model.TrackedPlayer) ([]byte, error)
}

// Default cap on request body size; arena payloads run well under this.
const defaultMaxBodyBytes = 4 << 20

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	renderHandler *RenderHandler

	maxBodyBytes int64
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxBodyBytes caps the accepted request body size.
func WithMaxBodyBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		maxBodyBytes:  defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderHandler = NewRenderHandler(deps, s.maxBodyBytes)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/render/match", MetricsMiddleware(s.renderHandler.HandleRenderMatch, "render_match"))
	mux.HandleFunc("/render/arena", MetricsMiddleware(s.renderHandler.HandleRenderArena, "render_arena"))
}

// rankPayload mirrors the wire shape of a ranked-ladder snapshot.
type rankPayload struct {
	Tier     string `json:"tier"`
	Division string `json:"division"`
	LP       int    `json:"lp"`
}

// trackedPayload mirrors the wire shape of one tracked player.
type trackedPayload struct {
	PUUID      string       `json:"puuid"`
	GameName   string       `json:"game_name"`
	TagLine    string       `json:"tag_line"`
	RankBefore *rankPayload `json:"rank_before,omitempty"`
	RankAfter  *rankPayload `json:"rank_after,omitempty"`
	Wins       int          `json:"wins"`
	Losses     int          `json:"losses"`
	HasRecord  bool         `json:"has_season_record"`
}

func (t trackedPayload) toModel() model.TrackedPlayer {
	p := model.TrackedPlayer{
		PUUID:           t.PUUID,
		GameName:        t.GameName,
		TagLine:         t.TagLine,
		Wins:            t.Wins,
		Losses:          t.Losses,
		HasSeasonRecord: t.HasRecord,
	}
	if t.RankBefore != nil {
		p.RankBefore = &model.Rank{Tier: t.RankBefore.Tier, Division: t.RankBefore.Division, LP: t.RankBefore.LP}
	}
	if t.RankAfter != nil {
		p.RankAfter = &model.Rank{Tier: t.RankAfter.Tier, Division: t.RankAfter.Division, LP: t.RankAfter.LP}
	}
	return p
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

func writePNG(w http.ResponseWriter, img []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}
