package multimatic

import (
	"context"
	"errors"
	"time"
)

// ErrorMatcher reports whether an error is of a kind a RetryPolicy should
// retry on.
type ErrorMatcher func(error) bool

// MatchErr builds a matcher for a sentinel error, using errors.Is.
func MatchErr(target error) ErrorMatcher {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// RetryPolicy configures how an operation is retried. It is immutable for
// the lifetime of the wrapped operation.
//
// An error is retryable when it matches any OnErrors matcher OR carries a
// status (via a StatusCode() int method anywhere in its chain) listed in
// OnStatuses. Each criterion is checked independently; either suffices.
// Every other error is fatal and surfaces immediately.
type RetryPolicy struct {
	// NumTries is the total number of attempts, including the first.
	// Values below 1 behave like 1.
	NumTries int
	// BackoffBase is the base delay between attempts. The wait before
	// attempt n+1 is BackoffBase multiplied by n (linear schedule). Zero
	// disables sleeping entirely.
	BackoffBase time.Duration
	// OnErrors lists error-kind matchers that trigger a retry.
	OnErrors []ErrorMatcher
	// OnStatuses lists HTTP status codes that trigger a retry.
	OnStatuses []int
}

// Retryable classifies err against the policy.
func (p RetryPolicy) Retryable(err error) bool {
	for _, match := range p.OnErrors {
		if match(err) {
			return true
		}
	}

	if status, ok := StatusOf(err); ok {
		for _, code := range p.OnStatuses {
			if status == code {
				return true
			}
		}
	}

	return false
}

func (p RetryPolicy) tries() int {
	if p.NumTries < 1 {
		return 1
	}

	return p.NumTries
}

// backoff waits before the next attempt. attempt is 1-based and counts the
// attempts already made. Returns early when the context is cancelled.
func (p RetryPolicy) backoff(ctx context.Context, attempt int) error {
	if p.BackoffBase <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.BackoffBase * time.Duration(attempt))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WithRetry wraps op with the retry policy. The wrapped operation invokes op
// up to policy.NumTries times; a retryable failure that survives the last
// attempt is returned unchanged, never wrapped.
func WithRetry(policy RetryPolicy, op func(context.Context) error) func(context.Context) error {
	wrapped := WithRetryValue(policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return func(ctx context.Context) error {
		_, err := wrapped(ctx)

		return err
	}
}

// WithRetryValue is WithRetry for operations returning a value.
func WithRetryValue[T any](policy RetryPolicy, op func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var (
			result  T
			lastErr error
		)

		tries := policy.tries()
		for attempt := 1; attempt <= tries; attempt++ {
			result, lastErr = op(ctx)
			if lastErr == nil {
				return result, nil
			}

			if !policy.Retryable(lastErr) {
				return result, lastErr
			}

			if attempt == tries {
				break
			}

			if err := policy.backoff(ctx, attempt); err != nil {
				return result, err
			}
		}

		return result, lastErr
	}
}
