// Package store opens the optional backends behind small seams.
// A zero Store is valid: every backend is nil and callers skip it.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interviewcoach/internal/platform/logger"
)

// Store holds whichever backends were enabled
type Store struct {
	Log logger.Logger

	// PG persists evaluations and role keyword sets
	PG TxRunner

	// CH receives one analytics row per evaluation
	CH Clickhouse

	// Cache memoizes evaluation results by input hash
	Cache Cache
}

// Row is the single-row scan contract
type Row interface {
	Scan(dest ...any) error
}

// Rows is the result-set contract shared by pg and clickhouse
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what an Exec did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repos use
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn in a transaction, committing when it returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar sink; rows are positional in table column order
type Clickhouse interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Cache is a byte cache with TTL; a miss is (nil, false, nil)
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Close() error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Open connects every backend enabled in cfg
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: logger.Nop()}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		pgc, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, fmt.Errorf("open pg: %w", err)
		}
		s.PG = pgc
	}
	if cfg.CH.Enabled {
		chc, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("open clickhouse: %w", err)
		}
		s.CH = chc
	}
	if cfg.Redis.Enabled {
		c, err := openCache(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("open redis: %w", err)
		}
		s.Cache = c
	}
	return s, nil
}

type backend struct {
	name string
	conn any
}

// open lists the backends in close order; unset ones are skipped
func (s *Store) open() []backend {
	var out []backend
	for _, b := range []backend{{"redis", s.Cache}, {"clickhouse", s.CH}, {"pg", s.PG}} {
		if b.conn != nil {
			out = append(out, b)
		}
	}
	return out
}

// Guard pings every open backend that can be pinged
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, b := range s.open() {
		p, ok := b.conn.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every open backend
func (s *Store) Close(_ context.Context) error {
	var errs []error
	for _, b := range s.open() {
		if c, ok := b.conn.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
