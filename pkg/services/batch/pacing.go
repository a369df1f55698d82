package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

const (
	PacingFixed       = "fixed"
	PacingTokenBucket = "token_bucket"
)

// Policy describes how fast the runner may call the worker. Only sequential
// processing is supported, so Concurrency must be 1.
type Policy struct {
	Delay       time.Duration
	Concurrency int
}

func DefaultPolicy() Policy {
	return Policy{
		Delay:       time.Second,
		Concurrency: 1,
	}
}

func (p Policy) Validate() error {
	if p.Concurrency != 1 {
		return fmt.Errorf("unsupported concurrency %d: items are processed one at a time", p.Concurrency)
	}
	if p.Delay < 0 {
		return fmt.Errorf("delay must not be negative: %s", p.Delay)
	}
	return nil
}

// Pacer is consulted by the runner after every item.
type Pacer interface {
	Pause(ctx context.Context)
}

func NewPacer(kind string, policy Policy) (Pacer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case "", PacingFixed:
		return NewFixedDelay(policy), nil
	case PacingTokenBucket:
		return NewTokenBucket(policy), nil
	default:
		return nil, fmt.Errorf("unknown pacing %q", kind)
	}
}

// FixedDelay sleeps for the policy delay every time it is asked to pause.
type FixedDelay struct {
	delay time.Duration
}

func NewFixedDelay(policy Policy) *FixedDelay {
	return &FixedDelay{delay: policy.Delay}
}

func (f *FixedDelay) Pause(ctx context.Context) {
	if f.delay <= 0 {
		return
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// TokenBucket spaces pauses at least Delay apart using a token bucket with burst 1.
// The bucket starts empty, so the first pause waits like FixedDelay does.
type TokenBucket struct {
	limiter *rate.Limiter
}

func NewTokenBucket(policy Policy) *TokenBucket {
	limit := rate.Inf
	if policy.Delay > 0 {
		limit = rate.Every(policy.Delay)
	}
	limiter := rate.NewLimiter(limit, 1)
	limiter.Allow()
	return &TokenBucket{limiter: limiter}
}

func (t *TokenBucket) Pause(ctx context.Context) {
	// Wait only fails once ctx is done, which ends the pause anyway.
	_ = t.limiter.Wait(ctx)
}
