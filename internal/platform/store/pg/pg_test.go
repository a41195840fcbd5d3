package pg

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/platform/testkit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ParseError(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpen_AppliesConfigBeforePool(t *testing.T) {
	testkit.Serial(t)
	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return nil, errors.New("no db in unit tests")
	})

	_, err := Open(context.Background(), Config{
		URL:      "postgres://u:p@localhost:5432/coach?sslmode=disable",
		MaxConns: 3,
		AppName:  "interviewcoach",
		LogSQL:   true,
		Log:      logger.Nop(),
	})
	if err == nil {
		t.Fatalf("expected pool error")
	}
	if seen == nil || seen.MaxConns != 3 {
		t.Fatalf("MaxConns not applied: %+v", seen)
	}
	if got := seen.ConnConfig.RuntimeParams["application_name"]; got != "interviewcoach" {
		t.Fatalf("application_name = %q", got)
	}
	if _, ok := seen.ConnConfig.Tracer.(*Tracer); !ok {
		t.Fatalf("tracer = %T", seen.ConnConfig.Tracer)
	}
}

func TestCompact(t *testing.T) {
	in := "select id,\n\t  kind\n from evaluations   where id = $1"
	if got := compact(in); got != "select id, kind from evaluations where id = $1" {
		t.Fatalf("compact = %q", got)
	}
}

func TestTracer_Levels(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(logger.New(logger.Options{Level: "debug", Format: "json", Writer: &buf}), 100*time.Millisecond)

	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return clock }
	run := func(sql string, took time.Duration, end pgx.TraceQueryEndData) string {
		buf.Reset()
		ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql})
		clock = clock.Add(took)
		tr.TraceQueryEnd(ctx, nil, end)
		return buf.String()
	}

	out := run("insert into evaluations\n  values ($1)", time.Millisecond, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("INSERT 0 1")})
	testkit.MustContain(t, out, `"level":"debug"`)
	testkit.MustContain(t, out, `"rows":1`)
	testkit.MustContain(t, out, `"sql":"insert into evaluations values ($1)"`)
	testkit.MustContain(t, out, `"component":"pg"`)

	testkit.MustContain(t, run("select pg_sleep(1)", time.Second, pgx.TraceQueryEndData{}), `"level":"warn"`)
	testkit.MustContain(t, run("select x", 0, pgx.TraceQueryEndData{Err: errors.New("column x does not exist")}), `"level":"error"`)

	buf.Reset()
	tr.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	if buf.Len() != 0 {
		t.Fatalf("end without start logged %q", buf.String())
	}
}
