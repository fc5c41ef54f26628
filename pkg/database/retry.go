package database

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const retryBaseDelay = 20 * time.Millisecond

// RetryTx calls fn until it succeeds, returns a non-retryable error, or
// maxRetries replays are used up. fn is retried when shouldRetry(err) is true;
// a nil shouldRetry falls back to IsRetryable. onRetry, when non-nil, sees
// every retryable failure, including the last one when retries run out.
//
// fn must run its own transaction (typically via WithTx) so each attempt
// starts from a clean snapshot.
func RetryTx(ctx context.Context, maxRetries uint64, shouldRetry func(error) bool, onRetry func(attempt int, err error), fn func(ctx context.Context) error) error {
	if shouldRetry == nil {
		shouldRetry = IsRetryable
	}

	backoff := retry.WithMaxRetries(maxRetries, retry.WithJitterPercent(20, retry.NewExponential(retryBaseDelay)))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !shouldRetry(err) {
			return err
		}
		if onRetry != nil {
			onRetry(attempt, err)
		}
		return retry.RetryableError(err)
	})
}

// RetryPolicy configures RetryTx for repositories that hand out sequential
// numbers.
type RetryPolicy struct {
	MaxRetries uint64
	OnRetry    func(attempt int, err error)
}
