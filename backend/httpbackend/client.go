// Package httpbackend is the reference Backend adapter: it targets an
// external full-text engine reachable over HTTP, translating dialect
// statements into a POSTed form body and parsing a ClickHouse-style JSON
// response back into candidates.
package httpbackend

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/markguard/conflict-engine/backend"
	"github.com/markguard/conflict-engine/internal/errors"
	"github.com/markguard/conflict-engine/internal/logging"
	"github.com/markguard/conflict-engine/model"
	"github.com/markguard/conflict-engine/querydialect"
)

const backendName = "clickhouse-http"

// Config configures the HTTP reference adapter.
type Config struct {
	// Endpoint is the full-text engine's query URL.
	Endpoint string
	// Timeout bounds each request; defaults to 5s.
	Timeout time.Duration
	// HTTPClient is reused across calls; defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Logger receives structured request/response events. The pure core
	// never logs; this adapter is the only I/O-performing component that
	// does.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.Logger == nil {
		c.Logger = logging.New(logging.DefaultConfig())
	}
	return c
}

// Client is the reference adapter over a SQL-like, ClickHouse-flavored
// full-text engine. It is stateless above the reusable *http.Client.
type Client struct {
	cfg     Config
	dialect querydialect.Dialect
}

var _ backend.Backend = (*Client)(nil)

// New builds a Client targeting cfg.Endpoint using the given dialect.
func New(cfg Config, dialect querydialect.Dialect) *Client {
	return &Client{cfg: cfg.withDefaults(), dialect: dialect}
}

// Name returns the adapter's stable identifier.
func (c *Client) Name() string { return backendName }

// Search translates query via the dialect, issues the request, and parses
// the tabular response into candidates.
func (c *Client) Search(ctx context.Context, query model.SearchQuery) ([]model.Candidate, error) {
	stmt, err := c.dialect.Translate(query, querydialect.DefaultDialectConfig())
	if err != nil {
		return nil, err
	}

	body, err := c.post(ctx, renderStatement(stmt))
	if err != nil {
		return nil, err
	}

	return parseCandidates(body)
}

// HealthCheck issues a lightweight probe and maps any failure to
// BackendUnavailable.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.post(ctx, "SELECT 1")
	if err != nil {
		return errors.Backend(errors.BackendUnavailable, "health check failed", err)
	}
	return nil
}

// post sends the rendered statement as a URL-encoded `query` field and
// returns the raw response body, mapping transport/status failures to
// BackendError kinds.
func (c *Client) post(ctx context.Context, sql string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	form := url.Values{"query": {sql}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Backend(errors.BackendUnreachable, "building request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.cfg.Logger.Debug("backend request", slog.String("name", backendName), slog.String("endpoint", c.cfg.Endpoint))

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		var mapped error
		if ctx.Err() != nil {
			mapped = errors.Backend(errors.BackendTimeout, "request timed out", err)
		} else {
			mapped = errors.Backend(errors.BackendUnreachable, "sending request", err)
		}
		c.logBackendError(mapped)
		return nil, mapped
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		mapped := errors.Backend(errors.BackendParse, "reading response body", err)
		c.logBackendError(mapped)
		return nil, mapped
	}

	if resp.StatusCode >= 300 {
		mapped := errors.BackendStatus(resp.StatusCode, fmt.Sprintf("backend returned status %d", resp.StatusCode))
		c.logBackendError(mapped)
		return nil, mapped
	}

	return respBody, nil
}

// logBackendError emits a structured attributes log for a failed request,
// keyed the same way whether the failure came from transport or status.
func (c *Client) logBackendError(err error) {
	fields := errors.LogFields(err)
	attrs := make([]slog.Attr, 0, len(fields)+1)
	attrs = append(attrs, slog.String("name", backendName))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	c.cfg.Logger.LogAttrs(context.Background(), slog.LevelError, "backend request failed", attrs...)
}

// renderStatement substitutes stmt's positional args into literal values,
// since the wire protocol carries a single textual query field rather than
// a true parameterized request.
func renderStatement(stmt querydialect.Statement) string {
	sql := stmt.SQL
	for i := len(stmt.Args); i >= 1; i-- {
		placeholder := fmt.Sprintf("$%d", i)
		sql = strings.ReplaceAll(sql, placeholder, literal(stmt.Args[i-1]))
	}
	return sql
}

func literal(v any) string {
	switch t := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(t, "'", "''") + "'"
	case int:
		return strconv.Itoa(t)
	case []int:
		parts := make([]string, len(t))
		for i, c := range t {
			parts[i] = strconv.Itoa(c)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// rawRow is one decoded response row, keyed by the backend's column names.
type rawRow map[string]any

func parseCandidates(body []byte) ([]model.Candidate, error) {
	var envelope []struct {
		Data    []rawRow `json:"data"`
		Columns []any    `json:"columns"`
	}
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Backend(errors.BackendParse, "decoding response", err)
	}
	if len(envelope) == 0 {
		return nil, nil
	}

	rows := envelope[0].Data
	candidates := make([]model.Candidate, 0, len(rows))
	for _, row := range rows {
		rec, score, err := rowToCandidate(row)
		if err != nil {
			return nil, errors.Backend(errors.BackendParse, "decoding row", err)
		}
		candidates = append(candidates, model.Candidate{Record: rec, RetrievalScore: score})
	}
	return candidates, nil
}

func rowToCandidate(row rawRow) (model.TrademarkRecord, float64, error) {
	rec := model.TrademarkRecord{
		Serial: stringField(row, "serial"),
		Owner:  stringField(row, "owner"),
	}
	rec.MarkText = firstNonEmpty(stringField(row, "mark_text"), stringField(row, "mark_identification"))
	rec.Status = model.ParseStatus(stringField(row, "status"))
	rec.GoodsServices = stringField(row, "goods_services")
	rec.Classes = classesFromRow(row)
	rec.Canonicalize()

	if rec.Serial == "" || rec.MarkText == "" {
		return model.TrademarkRecord{}, 0, fmt.Errorf("row missing serial or mark_text")
	}

	score := floatField(row, "retrieval_score")
	return rec, score, nil
}

func classesFromRow(row rawRow) []int {
	raw, ok := row["classes"]
	if !ok {
		return nil
	}
	encoded, err := sonic.Marshal(raw)
	if err != nil {
		return nil
	}
	return model.ParseClassesField(encoded)
}

func stringField(row rawRow, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func floatField(row rawRow, key string) float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return 0
	}
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
