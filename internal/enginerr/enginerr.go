// movierec - hybrid movie recommendation engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

// Package enginerr defines the small set of sentinel errors the engine
// surfaces to callers. Every other failure mode in spec §7 (profile
// degradation, per-scorer failure, cache miss) is recovered internally
// and never reaches this taxonomy.
package enginerr

import "errors"

// ErrTimeout is returned when a recommend call is canceled or exceeds
// its deadline before the orchestrator can assemble a result.
var ErrTimeout = errors.New("engine: timeout")

// ErrInternal is returned for any unexpected failure escaping the
// orchestrator's own scope — never for a scorer-local or cache-read
// failure, both of which degrade silently instead.
var ErrInternal = errors.New("engine: internal error")

// ErrInvalidAction is returned at the tracking ingest boundary; it
// never reaches the recommendation engine itself.
var ErrInvalidAction = errors.New("tracking: invalid action")
