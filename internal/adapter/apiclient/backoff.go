package apiclient

import (
	"context"
	"time"
)

// Backoff retries a call with exponentially growing pauses.
type Backoff struct {
	base       time.Duration
	maxRetries int
}

func NewBackoff(base time.Duration, maxRetries int) Backoff {
	return Backoff{base: base, maxRetries: maxRetries}
}

// Do runs fn until it succeeds, retry reports false for its error, the
// retries are used up or ctx is done. The last error is returned.
func (b Backoff) Do(ctx context.Context, retry func(error) bool, fn func(attempt int) error) error {
	var err error
	for i := 0; ; i++ {
		if err = fn(i); err == nil || i >= b.maxRetries || !retry(err) {
			return err
		}
		t := time.NewTimer(time.Duration(1<<i) * b.base)
		select {
		case <-ctx.Done():
			t.Stop()
			return err
		case <-t.C:
		}
	}
}
