// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package collaborative

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// HTTPModelBackend is the reference ModelBackend: it POSTs a
// {userId, itemIds} payload to an external matrix-factorization
// service and decodes a {itemId: score} response.
type HTTPModelBackend struct {
	url    string
	client *http.Client
}

// NewHTTPModelBackend wires a backend pointed at url, bounding every
// call to timeout.
func NewHTTPModelBackend(url string, timeout time.Duration) *HTTPModelBackend {
	return &HTTPModelBackend{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	UserID  string `json:"userId"`
	ItemIDs []int  `json:"itemIds"`
}

// Predict implements ModelBackend.
func (b *HTTPModelBackend) Predict(ctx context.Context, userID string, itemIDs []int) (map[int]float64, error) {
	payload, err := json.Marshal(predictRequest{UserID: userID, ItemIDs: itemIDs})
	if err != nil {
		return nil, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("predict request: unexpected status %d", resp.StatusCode)
	}

	var scores map[int]float64
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	return scores, nil
}

var _ ModelBackend = (*HTTPModelBackend)(nil)

// DisabledBackend always reports "no prediction available", used when
// a deployment has no matrix-factorization service configured
// (cfg.Predictor.Enabled == false). The collaborative scorer treats
// this identically to a live model miss: immediate fallback to
// user-based CF.
type DisabledBackend struct{}

// Predict implements ModelBackend.
func (DisabledBackend) Predict(_ context.Context, _ string, _ []int) (map[int]float64, error) {
	return nil, fmt.Errorf("matrix factorization predictor disabled")
}

var _ ModelBackend = DisabledBackend{}
