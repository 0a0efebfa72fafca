// Package querydialect translates a neutral model.SearchQuery into a
// backend-specific retrieval request without ever interpolating raw user
// text into executable syntax.
package querydialect

import "github.com/markguard/conflict-engine/model"

// Statement is a parameterized retrieval request: SQL (or SQL-like) text
// with positional placeholders and the arguments to bind to them.
type Statement struct {
	SQL  string
	Args []any
}

// Dialect translates a validated SearchQuery into a Statement for one
// backend's retrieval syntax.
type Dialect interface {
	// Translate returns the backend-specific Statement, or a QueryError
	// if query fails validation.
	Translate(query model.SearchQuery, cfg DialectConfig) (Statement, error)

	// Name identifies the dialect, for diagnostics.
	Name() string

	// Placeholder renders the i-th (1-based) positional placeholder in
	// this dialect's syntax, e.g. "$1" for ClickHouse/Postgres-style
	// dialects.
	Placeholder(i int) string
}

// DialectConfig bounds translation-time behavior shared across dialects.
type DialectConfig struct {
	// MaxLimit is the hard ceiling a dialect enforces regardless of the
	// query's requested limit.
	MaxLimit int
}

// DefaultDialectConfig returns the default result-count ceiling.
func DefaultDialectConfig() DialectConfig {
	return DialectConfig{MaxLimit: 1000}
}
