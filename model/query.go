package model

import (
	"strings"

	"github.com/markguard/conflict-engine/internal/errors"
)

// SearchQuery is the neutral retrieval intent passed to a Backend.
type SearchQuery struct {
	MarkText     string   `json:"mark_text"`
	Classes      []int    `json:"classes,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	Phonetic     bool     `json:"phonetic,omitempty"`
	Fuzzy        bool     `json:"fuzzy,omitempty"`
	StatusFilter []Status `json:"status_filter,omitempty"`
}

// DefaultLimit is applied when a SearchQuery omits Limit.
const DefaultLimit = 100

// TrimmedMarkText returns the query's mark_text with leading and trailing
// whitespace removed, used for the non-empty check in Validate.
func (q SearchQuery) TrimmedMarkText() string {
	return strings.TrimSpace(q.MarkText)
}

// EffectiveLimit returns Limit if positive, else DefaultLimit.
func (q SearchQuery) EffectiveLimit() int {
	if q.Limit > 0 {
		return q.Limit
	}
	return DefaultLimit
}

// EffectiveStatusFilter returns StatusFilter if set, else the default of
// Live and Pending only, rendered by the query dialect as
// `status IN ('LIVE','PENDING')`.
func (q SearchQuery) EffectiveStatusFilter() []Status {
	if len(q.StatusFilter) > 0 {
		return q.StatusFilter
	}
	return []Status{StatusLive, StatusPending}
}

// Validate checks the query's preconditions, returning a QueryError when
// violated. Called by the Query Dialect before translation.
func (q SearchQuery) Validate() error {
	if q.TrimmedMarkText() == "" {
		return errors.Query(errors.ErrCodeQueryEmpty, "mark_text must be non-empty after trimming")
	}
	if q.Limit < 0 {
		return errors.Query(errors.ErrCodeQueryLimitInvalid, "limit must not be negative")
	}
	for _, c := range q.Classes {
		if c < 1 || c > 45 {
			return errors.Query(errors.ErrCodeQueryLimitInvalid, "class must be between 1 and 45")
		}
	}
	return nil
}

// ClassSet returns Classes as a set; empty means "any".
func (q SearchQuery) ClassSet() map[int]struct{} {
	if len(q.Classes) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(q.Classes))
	for _, c := range q.Classes {
		set[c] = struct{}{}
	}
	return set
}
