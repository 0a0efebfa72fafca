package errors

import "fmt"

// MarkError is the structured error type returned by the Query Dialect and
// Backend components. The reranker and explain generator never fail —
// only query translation and candidate retrieval produce errors.
type MarkError struct {
	// Code is the unique error code (e.g. "ERR_302_BACKEND_TIMEOUT").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is QUERY, BACKEND, or FEATURE.
	Category Category

	// Kind carries the BackendError sub-variant (Unreachable, Timeout,
	// BadStatus, Parse, Unavailable); empty for QueryError.
	Kind string

	// StatusCode is set when Kind is BadStatus.
	StatusCode int

	// Cause is the underlying error, if any.
	Cause error

	// Retryable indicates whether the caller may reasonably retry.
	Retryable bool
}

// Error implements the error interface.
func (e *MarkError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("[%s:%s] %s", e.Code, e.Kind, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/As against the underlying cause.
func (e *MarkError) Unwrap() error {
	return e.Cause
}

// Is matches another *MarkError by code, so errors.Is(err, Query(...)) works
// without comparing messages or causes.
func (e *MarkError) Is(target error) bool {
	t, ok := target.(*MarkError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code, message string, cause error) *MarkError {
	return &MarkError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Query builds a QueryError for an empty mark_text, invalid limit, or
// unsupported dialect feature.
func Query(code, message string) *MarkError {
	return newError(code, message, nil)
}

// BackendKind enumerates BackendError sub-variants.
type BackendKind string

const (
	BackendUnreachable BackendKind = "Unreachable"
	BackendTimeout     BackendKind = "Timeout"
	BackendBadStatus   BackendKind = "BadStatus"
	BackendParse       BackendKind = "Parse"
	BackendUnavailable BackendKind = "Unavailable"
)

// Backend builds a BackendError of the given kind.
func Backend(kind BackendKind, message string, cause error) *MarkError {
	code := map[BackendKind]string{
		BackendUnreachable: ErrCodeBackendUnreachable,
		BackendTimeout:     ErrCodeBackendTimeout,
		BackendBadStatus:   ErrCodeBackendBadStatus,
		BackendParse:       ErrCodeBackendParse,
		BackendUnavailable: ErrCodeBackendUnavailable,
	}[kind]
	if code == "" {
		code = ErrCodeBackendUnreachable
	}
	err := newError(code, message, cause)
	err.Kind = string(kind)
	return err
}

// BackendStatus builds a BadStatus BackendError carrying the HTTP status code.
func BackendStatus(statusCode int, message string) *MarkError {
	err := Backend(BackendBadStatus, message, nil)
	err.StatusCode = statusCode
	return err
}

// IsRetryable reports whether err is a *MarkError marked retryable.
func IsRetryable(err error) bool {
	me, ok := err.(*MarkError)
	return ok && me.Retryable
}

// Code extracts the error code, or "" if err is not a *MarkError.
func Code(err error) string {
	if me, ok := err.(*MarkError); ok {
		return me.Code
	}
	return ""
}
