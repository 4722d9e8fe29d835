package trade

import (
	"context"
	"time"
)

const (
	defaultMaxAttempts = 10
	defaultBackoff     = 500 * time.Millisecond
	defaultMaxBackoff  = 5 * time.Second
)

// RetryPolicy bounds the attempts to complete a trade the provider does not
// know about yet. The wait between attempts doubles from Backoff up to
// MaxBackoff.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{defaultMaxAttempts, defaultBackoff, defaultMaxBackoff}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.Backoff < 0 {
		p.Backoff = 0
	}
	if p.MaxBackoff < p.Backoff {
		p.MaxBackoff = p.Backoff
	}
	return p
}

// wait returns the time to wait before the given attempt, starting from 1.
func (p RetryPolicy) wait(attempt int) time.Duration {
	d := p.Backoff
	for i := 1; i < attempt && d < p.MaxBackoff; i++ {
		d *= 2
	}
	if d > p.MaxBackoff {
		d = p.MaxBackoff
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
