package backend

import (
	"context"

	"github.com/markguard/conflict-engine/internal/errors"
	"github.com/markguard/conflict-engine/model"
)

// Resilient wraps a Backend with caller-opted-in retry and circuit
// breaking. The engine never constructs one of these itself — it calls
// whatever Backend it is given exactly once per Conflicts invocation — but
// a caller standing up a long-lived service in front of a flaky full-text
// engine can wrap its Backend with a Resilient instead of reimplementing
// backoff and fail-fast logic.
type Resilient struct {
	inner   Backend
	cb      *errors.CircuitBreaker
	retries errors.RetryConfig
}

var _ Backend = (*Resilient)(nil)

// NewResilient wraps inner with cb and the given retry policy. Pass
// errors.DefaultRetryConfig() for a reasonable default backoff.
func NewResilient(inner Backend, cb *errors.CircuitBreaker, retries errors.RetryConfig) *Resilient {
	return &Resilient{inner: inner, cb: cb, retries: retries}
}

// Search retries transient failures with backoff, short-circuiting via the
// circuit breaker once the inner backend has failed too many times in a
// row.
func (r *Resilient) Search(ctx context.Context, query model.SearchQuery) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := errors.Retry(ctx, r.retries, func() error {
		return r.cb.Execute(func() error {
			var searchErr error
			candidates, searchErr = r.inner.Search(ctx, query)
			return searchErr
		})
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// HealthCheck runs the inner backend's probe through the same circuit
// breaker as Search, without retrying — a failed health check should be
// reported immediately, not masked by backoff.
func (r *Resilient) HealthCheck(ctx context.Context) error {
	return r.cb.Execute(func() error { return r.inner.HealthCheck(ctx) })
}

// Name returns the inner backend's stable identifier.
func (r *Resilient) Name() string { return r.inner.Name() }
