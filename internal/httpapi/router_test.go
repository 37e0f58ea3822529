// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/movierec/internal/config"
	"github.com/tomtom215/movierec/internal/recommend"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.CORSOrigins = []string{"*"}
	cfg.RateLimit.Disabled = true
	return cfg
}

func TestRouterServesHealthz(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	r := NewRouter(h, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouterServesMetrics(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	r := NewRouter(h, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRouterGetRecommendationsRoute(t *testing.T) {
	eng := &fakeEngine{results: []recommend.HybridRecord{{ItemID: 1, Score: 0.8}}}
	h := newTestHandler(eng)
	r := NewRouter(h, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/recommendations", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
}
