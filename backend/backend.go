// Package backend defines the contract that isolates the reasoning core
// from any particular full-text retrieval engine. Callers depend only on
// search/health_check/name — transport concerns never leak past this
// interface.
package backend

import (
	"context"

	"github.com/markguard/conflict-engine/model"
)

// Backend retrieves raw candidates for a query. It must not apply
// reranking; retrieval scores are purely retrieval confidences
// (non-negative, may exceed 1).
type Backend interface {
	// Search returns raw candidates or an error. Retrieval failures are
	// *errors.MarkError values of category BackendError; a query that
	// fails validation yields a QueryError.
	Search(ctx context.Context, query model.SearchQuery) ([]model.Candidate, error)

	// HealthCheck reports whether the backend is reachable and serving.
	HealthCheck(ctx context.Context) error

	// Name returns a stable identifier used by diagnostics and A/B
	// comparison.
	Name() string
}
