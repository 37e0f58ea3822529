// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package collaborative

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestHTTPModelBackendPredictDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("server: decode request: %v", err)
		}
		if req.UserID != "u1" {
			t.Errorf("server: userID = %q, want u1", req.UserID)
		}
		_ = json.NewEncoder(w).Encode(map[int]float64{1: 7.5, 2: 3})
	}))
	defer srv.Close()

	backend := NewHTTPModelBackend(srv.URL, time.Second)
	got, err := backend.Predict(context.Background(), "u1", []int{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[1] != 7.5 || got[2] != 3 {
		t.Errorf("got %v, want {1:7.5, 2:3}", got)
	}
}

func TestHTTPModelBackendPredictErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	backend := NewHTTPModelBackend(srv.URL, time.Second)
	if _, err := backend.Predict(context.Background(), "u1", []int{1}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestDisabledBackendAlwaysErrors(t *testing.T) {
	var backend DisabledBackend
	if _, err := backend.Predict(context.Background(), "u1", []int{1}); err == nil {
		t.Fatal("expected DisabledBackend to always error")
	}
}
