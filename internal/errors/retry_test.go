package errors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry_SucceedsAfterTransientBackendError(t *testing.T) {
	attempts := 0
	fn := func() error {
		attempts++
		if attempts < 3 {
			return Backend(BackendTimeout, "transient timeout", nil)
		}
		return nil
	}

	cfg := DefaultRetryConfig()
	cfg.InitialDelay = 5 * time.Millisecond

	err := Retry(context.Background(), cfg, fn)

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_StopsImmediatelyOnNonRetryableError(t *testing.T) {
	attempts := 0
	fn := func() error {
		attempts++
		return BackendStatus(400, "bad request")
	}

	cfg := DefaultRetryConfig()
	cfg.InitialDelay = 5 * time.Millisecond

	err := Retry(context.Background(), cfg, fn)

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_FailsAfterMaxRetries(t *testing.T) {
	attempts := 0
	fn := func() error {
		attempts++
		return Backend(BackendUnreachable, "still down", nil)
	}

	cfg := RetryConfig{
		MaxRetries:   2,
		InitialDelay: 5 * time.Millisecond,
		MaxDelay:     20 * time.Millisecond,
		Multiplier:   2.0,
	}

	err := Retry(context.Background(), cfg, fn)

	assert.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	fn := func() error {
		attempts++
		return Backend(BackendTimeout, "timeout", nil)
	}

	err := Retry(ctx, DefaultRetryConfig(), fn)

	assert.Error(t, err)
	assert.Equal(t, 0, attempts)
}
