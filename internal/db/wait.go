package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// WaitForDB pings the pool with exponential backoff until it answers or
// maxWait passes.
func WaitForDB(ctx context.Context, pool *pgxpool.Pool, maxWait time.Duration) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxWait

	err := backoff.RetryNotify(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(b, ctx),
		func(err error, next time.Duration) {
			log.Warnf("db not reachable yet, retrying in %s: %s", next, err)
		},
	)
	if err != nil {
		return fmt.Errorf("db not reachable after %s: %w", maxWait, err)
	}
	return nil
}
