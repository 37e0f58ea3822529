// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package tracking implements the TrackingService boundary (spec §6):
// action ingest validation and the action-history reads the profile
// builder depends on. Service, an in-memory store, is the reference
// implementation; a production deployment swaps in a database-backed
// one behind the same recommend.Tracking interface.
package tracking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/tomtom215/movierec/internal/enginerr"
	"github.com/tomtom215/movierec/internal/recommend"
)

// readRateLimit/readBurst bound how often the profile builder's history
// reads may hit the tracking store, the same client-side throttling
// posture a real (networked) TrackingService implementation would need
// in front of it.
const (
	readRateLimit = 1000 // reads per second
	readBurst     = 100
)

// RawAction is the wire-level shape of an ingested event, validated
// before it becomes a recommend.Action (spec §6).
type RawAction struct {
	UserID     string                    `json:"userId" validate:"required"`
	ItemID     int                       `json:"itemId" validate:"required"`
	ActionType recommend.ActionType      `json:"actionType" validate:"required"`
	Value      float64                   `json:"value"`
	Metadata   *recommend.ActionMetadata `json:"metadata,omitempty"`
}

var recognizedActionTypes = map[recommend.ActionType]bool{
	recommend.ActionRate:         true,
	recommend.ActionWatchTime:    true,
	recommend.ActionAddWatchlist: true,
	recommend.ActionView:         true,
	recommend.ActionClick:        true,
}

// Service implements TrackingService ingest validation and the
// recommend.Tracking read contract over an in-memory action log.
type Service struct {
	validate *validator.Validate
	limiter  *rate.Limiter

	mu      sync.RWMutex
	actions map[string][]recommend.Action // userId -> actions, any order
}

// New returns an empty in-memory tracking service.
func New() *Service {
	return &Service{
		validate: validator.New(),
		limiter:  rate.NewLimiter(rate.Limit(readRateLimit), readBurst),
		actions:  make(map[string][]recommend.Action),
	}
}

// ValidateAction rejects malformed or unrecognized events (spec §6):
// missing userId/itemId/actionType, unknown action types, rate values
// outside [0,10], and negative watchTime values. A missing value is not
// detected: it decodes as 0 and is accepted.
func (s *Service) ValidateAction(raw RawAction) (recommend.Action, error) {
	if err := s.validate.Struct(raw); err != nil {
		return recommend.Action{}, enginerr.ErrInvalidAction
	}
	if !recognizedActionTypes[raw.ActionType] {
		return recommend.Action{}, enginerr.ErrInvalidAction
	}
	if raw.ActionType == recommend.ActionRate && (raw.Value < 0 || raw.Value > 10) {
		return recommend.Action{}, enginerr.ErrInvalidAction
	}
	if raw.ActionType == recommend.ActionWatchTime && raw.Value < 0 {
		return recommend.Action{}, enginerr.ErrInvalidAction
	}

	return recommend.Action{
		UserID:    raw.UserID,
		ItemID:    raw.ItemID,
		Type:      raw.ActionType,
		Value:     raw.Value,
		Timestamp: time.Now(),
		Metadata:  raw.Metadata,
	}, nil
}

// Record appends a validated action to the user's history.
func (s *Service) Record(action recommend.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions[action.UserID] = append(s.actions[action.UserID], action)
}

// GetUserActions returns up to limit actions of the given type
// (or every type, if actionType is ""), newest first.
func (s *Service) GetUserActions(ctx context.Context, userID string, limit int, actionType recommend.ActionType) ([]recommend.Action, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tracking: rate limited: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []recommend.Action
	for _, a := range s.actions[userID] {
		if actionType != "" && a.Type != actionType {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})
	if limit >= 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// GetRecentActions returns the user's full action history, newest
// first; the caller (profile builder) caps consumption at the
// sequence window.
func (s *Service) GetRecentActions(ctx context.Context, userID string) ([]recommend.Action, error) {
	return s.GetUserActions(ctx, userID, -1, "")
}

// AllUserIDs implements collaborative.RatingSource: every user with at
// least one recorded action.
func (s *Service) AllUserIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.actions))
	for userID := range s.actions {
		ids = append(ids, userID)
	}
	return ids
}

// Ratings implements collaborative.RatingSource: itemId -> rating
// value, most recent rate action per item.
func (s *Service) Ratings(ctx context.Context, userID string) (map[int]float64, error) {
	rateActions, err := s.GetUserActions(ctx, userID, -1, recommend.ActionRate)
	if err != nil {
		return nil, err
	}

	ratings := make(map[int]float64, len(rateActions))
	for _, a := range rateActions {
		if _, seen := ratings[a.ItemID]; !seen {
			ratings[a.ItemID] = a.Value
		}
	}
	return ratings, nil
}
