// Package engine provides the single entry point a caller uses to run one
// conflict-analysis call: one backend request (the only suspension point),
// followed by synchronous, internally-parallel reranking.
package engine

import (
	"context"

	"github.com/markguard/conflict-engine/backend"
	"github.com/markguard/conflict-engine/model"
	"github.com/markguard/conflict-engine/rerank"
)

// Engine ties a Backend to the reasoning core.
type Engine struct {
	backend backend.Backend
}

// New builds an Engine over the given backend.
func New(b backend.Backend) *Engine {
	return &Engine{backend: b}
}

// Conflicts runs the full reasoning pipeline: validate the query, retrieve
// candidates from the backend, and rerank them. It returns no partial
// results on backend failure.
func (e *Engine) Conflicts(ctx context.Context, query model.SearchQuery, cfg model.RerankConfig, opts rerank.Options) ([]model.CandidateHit, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := e.backend.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return rerank.Rerank(ctx, query, candidates, cfg, opts), nil
}

// Name returns the underlying backend's stable identifier, for
// diagnostics.
func (e *Engine) Name() string {
	return e.backend.Name()
}
