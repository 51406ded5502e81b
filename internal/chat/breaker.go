// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/metrics"
)

// BreakerName labels the LLM breaker in logs and metrics.
const BreakerName = "chat-llm"

// BreakerClient wraps a Completer with a circuit breaker. While the breaker
// is open calls fail fast with gobreaker.ErrOpenState.
type BreakerClient struct {
	next Completer
	cb   *gobreaker.CircuitBreaker[string]
}

// NewBreakerClient wraps next.
func NewBreakerClient(next Completer, cfg BreakerConfig) *BreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)

	minRequests := cfg.MinRequests
	ratio := cfg.FailureRatio
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= ratio {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})

	return &BreakerClient{next: next, cb: cb}
}

// Complete implements Completer.
func (b *BreakerClient) Complete(ctx context.Context, turns []Turn) (string, error) {
	reply, err := b.cb.Execute(func() (string, error) {
		return b.next.Complete(ctx, turns)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "failure").Inc()
	}
	return reply, err
}

// State returns the breaker state.
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}
