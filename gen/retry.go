package gen

import (
	"context"
	"time"

	"github.com/zjregee/knowlix"
)

// DescribeFunc is the signature for a doc generation function.
type DescribeFunc func(ctx context.Context, item knowlix.Item) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for generation retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// DescribeWithRetry attempts to generate a doc with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// The logger function, if provided, is called for each retry attempt.
func DescribeWithRetry(ctx context.Context, item knowlix.Item, describe DescribeFunc, logger LogFunc) (string, error) {
	return DescribeWithRetryDelays(ctx, item, describe, logger, DefaultRetryDelays())
}

// DescribeWithRetryDelays is like DescribeWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
func DescribeWithRetryDelays(ctx context.Context, item knowlix.Item, describe DescribeFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := describe(ctx, item)
		if err == nil {
			return content, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", item.ID, attempt+2, err)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
