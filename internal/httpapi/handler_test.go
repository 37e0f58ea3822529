// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movierec/internal/enginerr"
	"github.com/tomtom215/movierec/internal/recommend"
	"github.com/tomtom215/movierec/internal/tracking"
)

type fakeEngine struct {
	results []recommend.HybridRecord
	err     error
	gotOpts recommend.Options
}

func (f *fakeEngine) Recommend(_ context.Context, _ string, opts recommend.Options) ([]recommend.HybridRecord, error) {
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func newTestHandler(eng Engine) *Handler {
	return NewHandler(eng, tracking.New(), recommend.DefaultOptions(), 100)
}

func withUserID(r *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", userID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHealthReturnsOK(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetRecommendationsRequiresUserID(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	req := httptest.NewRequest(http.MethodGet, "/v1/users//recommendations", nil)
	req = withUserID(req, "")
	rec := httptest.NewRecorder()

	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetRecommendationsAppliesCountCap(t *testing.T) {
	eng := &fakeEngine{results: []recommend.HybridRecord{{ItemID: 1, Score: 0.9}}}
	h := newTestHandler(eng)
	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/recommendations?count=500", nil)
	req = withUserID(req, "u1")
	rec := httptest.NewRecorder()

	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if eng.gotOpts.Count != 100 {
		t.Errorf("Count = %d, want capped to 100", eng.gotOpts.Count)
	}
}

func TestGetRecommendationsTimeoutMapsTo504(t *testing.T) {
	h := newTestHandler(&fakeEngine{err: enginerr.ErrTimeout})
	req := httptest.NewRequest(http.MethodGet, "/v1/users/u1/recommendations", nil)
	req = withUserID(req, "u1")
	rec := httptest.NewRecorder()

	h.GetRecommendations(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
}

func TestPostActionValidAction(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	body := bytes.NewBufferString(`{"userId":"u1","itemId":5,"actionType":"rate","value":8}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/actions", body)
	rec := httptest.NewRecorder()

	h.PostAction(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202, body=%s", rec.Code, rec.Body.String())
	}
}

func TestPostActionRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	req := httptest.NewRequest(http.MethodPost, "/v1/actions", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()

	h.PostAction(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPostActionRejectsInvalidActionType(t *testing.T) {
	h := newTestHandler(&fakeEngine{})
	body := bytes.NewBufferString(`{"userId":"u1","itemId":5,"actionType":"bogus"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/actions", body)
	rec := httptest.NewRecorder()

	h.PostAction(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
