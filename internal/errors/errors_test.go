package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *MarkError
		expected string
	}{
		{
			name:     "query error",
			err:      Query(ErrCodeQueryEmpty, "mark_text is empty"),
			expected: "[ERR_101_QUERY_EMPTY] mark_text is empty",
		},
		{
			name:     "backend error with kind",
			err:      Backend(BackendTimeout, "request timed out", nil),
			expected: "[ERR_302_BACKEND_TIMEOUT:Timeout] request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestMarkError_Unwrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := Backend(BackendUnreachable, "could not reach index", cause)

	require.NotNil(t, err)
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestMarkError_Is_MatchesByCode(t *testing.T) {
	a := Backend(BackendTimeout, "first", nil)
	b := Backend(BackendTimeout, "second, different message", nil)
	c := Query(ErrCodeQueryEmpty, "mark_text is empty")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestCategoryFromCode(t *testing.T) {
	assert.Equal(t, CategoryQuery, categoryFromCode(ErrCodeQueryEmpty))
	assert.Equal(t, CategoryBackend, categoryFromCode(ErrCodeBackendTimeout))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(Backend(BackendTimeout, "timeout", nil)))
	assert.True(t, IsRetryable(Backend(BackendUnreachable, "unreachable", nil)))
	assert.False(t, IsRetryable(Backend(BackendBadStatus, "bad status", nil)))
	assert.False(t, IsRetryable(Query(ErrCodeQueryEmpty, "empty")))
	assert.False(t, IsRetryable(stderrors.New("plain error")))
}

func TestBackendStatus_CarriesStatusCode(t *testing.T) {
	err := BackendStatus(500, "index returned 500")
	require.NotNil(t, err)
	assert.Equal(t, 500, err.StatusCode)
	assert.Equal(t, string(BackendBadStatus), err.Kind)
	assert.False(t, err.Retryable)
}

func TestLogFields(t *testing.T) {
	err := Backend(BackendTimeout, "request timed out", stderrors.New("context deadline exceeded"))
	fields := LogFields(err)

	assert.Equal(t, ErrCodeBackendTimeout, fields["error_code"])
	assert.Equal(t, "Timeout", fields["kind"])
	assert.Equal(t, true, fields["retryable"])
	assert.Equal(t, "context deadline exceeded", fields["cause"])

	assert.Nil(t, LogFields(nil))
}
