package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun/driver/pgdriver"
)

// RetryConfig defines retry behavior
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	EnableRetry  bool
}

// DefaultRetryConfig returns sensible defaults for retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
		EnableRetry:  true,
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry context errors (timeout, cancellation)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	// Don't retry "no rows" errors
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}

	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case "23000", // integrity_constraint_violation
			"23502", // not_null_violation
			"23503", // foreign_key_violation
			"23505", // unique_violation
			"23514": // check_violation
			// Constraint violations never resolve on retry
			return false

		case "40001", // serialization_failure
			"40P01": // deadlock_detected
			// Retryable transaction conflicts
			return true

		case "08000", // connection_exception
			"08003", // connection_does_not_exist
			"08006", // connection_failure
			"08001", // sqlclient_unable_to_establish_sqlconnection
			"08P01": // protocol_violation
			return true

		case "53000", // insufficient_resources
			"53200", // out_of_memory
			"53300": // too_many_connections
			return true

		case "57P03": // cannot_connect_now
			return true

		default:
			return false
		}
	}

	// Check error message for common transient issues
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "no such host") ||
		strings.Contains(errMsg, "network is unreachable") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "eof") ||
		strings.Contains(errMsg, "connection closed") ||
		strings.Contains(errMsg, "bad connection") {
		return true
	}

	if strings.Contains(errMsg, "too many clients") ||
		strings.Contains(errMsg, "server is not accepting") ||
		strings.Contains(errMsg, "connection pool exhausted") ||
		strings.Contains(errMsg, "temporary failure") {
		return true
	}

	return false
}

// RetryWithBackoff executes a function with exponential backoff retry logic
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation func() error) error {
	if !config.EnableRetry {
		return operation()
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return err
		}

		if attempt >= config.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * config.Multiplier)
			if delay > config.MaxDelay {
				delay = config.MaxDelay
			}
		}
	}

	return lastErr
}

// WithRetry wraps a database operation with retry logic
func WithRetry(ctx context.Context, fn func() error) error {
	return RetryWithBackoff(ctx, DefaultRetryConfig(), fn)
}
