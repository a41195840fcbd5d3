package store

import (
	"context"
	"fmt"
	"time"

	"interviewcoach/internal/platform/store/cache"
	chx "interviewcoach/internal/platform/store/ch"
	"interviewcoach/internal/platform/store/pg"
)

// sleep is swapped in tests
var sleep = time.Sleep

// openPG publishes the adapter only once a ping succeeds
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	pool, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		AppName:  cfg.AppName,
		LogSQL:   cfg.PG.LogSQL,
		Slow:     time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond,
		Log:      s.Log,
	})
	if err != nil {
		return nil, err
	}

	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	err = retry(ctx, max(cfg.PG.ConnectRetries, 1), 150*time.Millisecond, 2*time.Second, func() error {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return pool.Ping(pctx)
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	return newPGAdapter(pool), nil
}

// retry runs fn up to attempts times with doubling backoff capped at ceiling
func retry(ctx context.Context, attempts int, backoff, ceiling time.Duration, fn func() error) error {
	var last error
	for i := 0; i < attempts; i++ {
		if last = fn(); last == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if i < attempts-1 {
			sleep(backoff)
			backoff = min(backoff*2, ceiling)
		}
	}
	return fmt.Errorf("ping failed after %d attempts: %w", attempts, last)
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientInfo: chx.BuildClientInfo(cfg.AppName, "api"),
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}

func openCache(ctx context.Context, cfg Config, _ *Store) (Cache, error) {
	c, err := cache.Open(ctx, cache.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
		Prefix:   cfg.AppName,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
