// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/riftcard/riftcard/internal/app"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/riot"
)

// renderRequest mirrors the wire schema for the render endpoints.
type renderRequest struct {
	Match   *riot.MatchPayload `json:"match"`
	Tracked []trackedPayload   `json:"tracked"`
}

func (r renderRequest) validate() error {
	switch {
	case r.Match == nil:
		return errors.New("missing match")
	case len(r.Match.Info.Participants) == 0:
		return errors.New("match has no participants")
	}
	return nil
}

// RenderHandler handles render requests.
type RenderHandler struct {
	deps         Dependencies
	maxBodyBytes int64
}

// NewRenderHandler creates a new render handler.
func NewRenderHandler(deps Dependencies, maxBodyBytes int64) *RenderHandler {
	return &RenderHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// HandleRenderMatch handles POST /render/match requests.
func (h *RenderHandler) HandleRenderMatch(w http.ResponseWriter, r *http.Request) {
	h.handleRender(w, r, h.deps.RenderTraditionalMatch)
}

// HandleRenderArena handles POST /render/arena requests.
func (h *RenderHandler) HandleRenderArena(w http.ResponseWriter, r *http.Request) {
	h.handleRender(w, r, h.deps.RenderArenaMatch)
}

// renderOp is one of the service's two render operations.
type renderOp func(ctx context.Context, payload *riot.MatchPayload, tracked []model.TrackedPlayer) ([]byte, error)

func (h *RenderHandler) handleRender(w http.ResponseWriter, r *http.Request, render renderOp) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	tracked := make([]model.TrackedPlayer, 0, len(req.Tracked))
	for _, t := range req.Tracked {
		tracked = append(tracked, t.toModel())
	}

	img, err := render(r.Context(), req.Match, tracked)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, err)
		return
	}
	writePNG(w, img)
}

// statusFor maps a render failure onto an HTTP status and error code.
// Defective payloads and missing assets are unprocessable; everything else
// is a server fault.
func statusFor(err error) (int, string) {
	switch kind := service.ErrorKind(err); kind {
	case service.KindDataIntegrity, service.KindAssetMissing:
		return http.StatusUnprocessableEntity, kind
	default:
		return http.StatusInternalServerError, "render_failed"
	}
}
