package database

import (
	"context"
	"time"

	"workshop_xpto/internal/logger"

	"github.com/cenkalti/backoff/v4"
)

// WaitReady retries ping with exponential backoff until it succeeds or
// maxWait elapses. A zero maxWait tries exactly once.
func WaitReady(ctx context.Context, name string, maxWait time.Duration, ping func(context.Context) error, log *logger.Logger) error {
	if maxWait <= 0 {
		return ping(ctx)
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxWait

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := ping(ctx)
		if err != nil {
			log.Warnf("[store][startup] %s not ready attempt=%d err=%v", name, attempt, err)
		}
		return err
	}, backoff.WithContext(b, ctx))
}
