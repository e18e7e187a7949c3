package fdc

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog"
)

// RetryPolicy is an explicit, injectable retry policy for a single
// outbound call: the attempt budget, the backoff schedule, and an
// optional per-retry notification.
// Calls that fail with a permanent error (client errors, invalid input)
// are never retried
type RetryPolicy struct {
	MaxAttempts uint
	NewBackOff  func() backoff.BackOff
	Notify      backoff.Notify
}

// DefaultRetryPolicy returns the production policy:
// 3 attempts with exponential backoff capped at 10 seconds,
// logging each retry wait through the given logger
func DefaultRetryPolicy(logger zerolog.Logger) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		NewBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 1 * time.Second
			b.MaxInterval = 10 * time.Second
			return b
		},
		Notify: func(err error, wait time.Duration) {
			logger.Warn().
				Err(err).
				Str("retry_in", durafmt.Parse(wait).LimitFirstN(2).String()).
				Msg("FoodData Central request failed; retrying")
		},
	}
}

// Execute runs the operation under the policy and returns its result
// or the last error once the attempt budget is exhausted
func (p RetryPolicy) Execute(ctx context.Context, operation func() ([]byte, error)) ([]byte, error) {
	opts := []backoff.RetryOption{
		backoff.WithBackOff(p.NewBackOff()),
		backoff.WithMaxTries(p.MaxAttempts),
	}
	if p.Notify != nil {
		opts = append(opts, backoff.WithNotify(p.Notify))
	}

	return backoff.Retry(ctx, operation, opts...)
}
