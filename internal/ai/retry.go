package ai

import (
	"context"
	"log"
	"time"
)

const (
	maxAttempts = 3
	baseBackoff = 2 * time.Second
)

// RetryingGenerator wraps a TextGenerator with quota-aware retry. Quota-class
// errors are retried up to maxAttempts times with exponential backoff (2s, 4s,
// 8s after each failed attempt); any other error propagates immediately.
type RetryingGenerator struct {
	inner TextGenerator

	// sleep is replaceable in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewRetryingGenerator(inner TextGenerator) *RetryingGenerator {
	return &RetryingGenerator{inner: inner, sleep: sleepCtx}
}

func (g *RetryingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := g.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if !IsQuotaError(err) {
			return "", err
		}

		delay := baseBackoff << (attempt - 1)
		log.Printf("generation rate limited (attempt %d/%d), backing off %s: %v", attempt, maxAttempts, delay, err)
		if serr := g.sleep(ctx, delay); serr != nil {
			return "", serr
		}
	}
	return "", &QuotaError{Attempts: maxAttempts}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
