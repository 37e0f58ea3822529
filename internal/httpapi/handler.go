// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/movierec/internal/enginerr"
	"github.com/tomtom215/movierec/internal/logging"
	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/tracking"
)

// Engine is the subset of *engine.Engine the HTTP layer depends on.
type Engine interface {
	Recommend(ctx context.Context, userID string, opts recommend.Options) ([]recommend.HybridRecord, error)
}

// Handler implements the HTTP endpoints. It holds no state of its own
// beyond its collaborators.
type Handler struct {
	engine   Engine
	tracking *tracking.Service
	defaults recommend.Options
	maxCount int
}

// NewHandler constructs a Handler. defaults seeds any Options field a
// request omits; maxCount caps whatever Count a request supplies.
func NewHandler(eng Engine, trk *tracking.Service, defaults recommend.Options, maxCount int) *Handler {
	return &Handler{engine: eng, tracking: trk, defaults: defaults, maxCount: maxCount}
}

// Health reports liveness. It does not touch the engine or its
// dependencies — a recommend-path failure should not flip a monitor red.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// GetRecommendations implements GET /v1/users/{userID}/recommendations.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userID is required")
		return
	}

	opts := h.defaults
	q := r.URL.Query()
	if v := q.Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Count = n
		}
	}
	if opts.Count > h.maxCount {
		opts.Count = h.maxCount
	}
	if v := q.Get("min_score"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MinScore = f
		}
	}
	if v := q.Get("diversity_factor"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.DiversityFactor = f
		}
	}
	if v := q.Get("exclude_rated"); v != "" {
		opts.ExcludeRated = v == "true"
	}
	if v := q.Get("exclude_watchlist"); v != "" {
		opts.ExcludeWatchlist = v == "true"
	}
	if v := q.Get("explain"); v != "" {
		opts.IncludeExplanations = v == "true"
	}

	results, err := h.engine.Recommend(r.Context(), userID, opts)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("failed to encode recommendations response")
	}
}

// PostAction implements POST /v1/actions, the ingest endpoint for the
// client-reported events that feed profile building (spec §3).
func (h *Handler) PostAction(w http.ResponseWriter, r *http.Request) {
	var raw tracking.RawAction
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	action, err := h.tracking.ValidateAction(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.tracking.Record(action)

	w.WriteHeader(http.StatusAccepted)
}

func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, enginerr.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "recommendation request timed out")
	case errors.Is(err, enginerr.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
