// Package pg opens the pgx pool behind the store's TxRunner
package pg

import (
	"context"
	"time"

	"interviewcoach/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures the pool
type Config struct {
	URL      string
	MaxConns int32
	AppName  string

	// LogSQL installs a statement tracer on every connection
	LogSQL bool
	// Slow lifts traced statements at or over it to warn
	Slow time.Duration
	Log  logger.Logger
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool without pinging; pgxpool connects lazily
func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if cfg.LogSQL {
		pc.ConnConfig.Tracer = NewTracer(cfg.Log, cfg.Slow)
	}
	return newPool(ctx, pc)
}
