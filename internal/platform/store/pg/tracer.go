package pg

import (
	"context"
	"strings"
	"time"

	"interviewcoach/internal/platform/logger"

	"github.com/jackc/pgx/v5"
)

// Tracer logs each statement when it finishes. Failures log at error, slow ones at warn
type Tracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*Tracer)(nil)

// NewTracer tags log with component=pg; slow <= 0 never warns
func NewTracer(log logger.Logger, slow time.Duration) *Tracer {
	return &Tracer{log: log.With().Str("component", "pg").Logger(), slow: slow, now: time.Now}
}

type startKey struct{}

type started struct {
	sql string
	at  time.Time
}

func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, startKey{}, started{sql: data.SQL, at: t.now()})
}

func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(startKey{}).(started)
	if !ok {
		return
	}
	took := t.now().Sub(st.at)
	slow := t.slow > 0 && took >= t.slow

	evt := t.log.Debug()
	switch {
	case data.Err != nil:
		evt = t.log.Error().Err(data.Err)
	case slow:
		evt = t.log.Warn()
	}
	evt.Dur("took", took).
		Bool("slow", slow).
		Int64("rows", data.CommandTag.RowsAffected()).
		Str("sql", compact(st.sql)).
		Msg("pg query")
}

// compact folds runs of whitespace into single spaces
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
