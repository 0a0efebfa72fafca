package querydialect

import (
	"fmt"
	"strings"

	"github.com/markguard/conflict-engine/model"
)

// SQLDialect is the reference dialect: a parameterized, ClickHouse-flavored
// SQL statement against a `marks` table, using `$1, $2, ...` positional
// placeholders.
type SQLDialect struct{}

var _ Dialect = SQLDialect{}

func (SQLDialect) Name() string { return "clickhouse-sql" }

func (SQLDialect) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

// Translate builds the retrieval statement described in the component
// design: a MATCH/AGAINST clause over the escaped mark text, an optional
// classes array predicate, a status disjunction, and a bounded LIMIT.
func (d SQLDialect) Translate(query model.SearchQuery, cfg DialectConfig) (Statement, error) {
	if err := query.Validate(); err != nil {
		return Statement{}, err
	}

	var args []any
	next := func(v any) string {
		args = append(args, v)
		return d.Placeholder(len(args))
	}

	var b strings.Builder
	b.WriteString("SELECT serial, mark_text, status, classes, owner, filing_date, registration_date, goods_services FROM marks WHERE MATCH(mark_text) AGAINST (")
	b.WriteString(next(EscapeMatchText(query.TrimmedMarkText())))
	b.WriteString(")")

	if classes := query.Classes; len(classes) > 0 {
		b.WriteString(" AND (")
		b.WriteString(next(classes))
		b.WriteString("::int[] IS NULL OR classes && ")
		b.WriteString(d.Placeholder(len(args)))
		b.WriteString(")")
	}

	statuses := query.EffectiveStatusFilter()
	if len(statuses) > 0 {
		placeholders := make([]string, 0, len(statuses))
		for _, s := range statuses {
			placeholders = append(placeholders, next(strings.ToUpper(string(s))))
		}
		b.WriteString(" AND status IN (")
		b.WriteString(strings.Join(placeholders, ", "))
		b.WriteString(")")
	}

	limit := query.EffectiveLimit()
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	b.WriteString(" LIMIT ")
	b.WriteString(next(limit))

	return Statement{SQL: b.String(), Args: args}, nil
}
