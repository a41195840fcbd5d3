package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/testkit"
)

type fakeCache struct {
	pingErr error
	closed  bool
}

func (f *fakeCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (f *fakeCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (f *fakeCache) Ping(context.Context) error                               { return f.pingErr }
func (f *fakeCache) Close() error                                             { f.closed = true; return nil }

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil || s.Cache != nil {
		t.Fatalf("no backend should be open: %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close on empty store: %v", err)
	}
}

func TestOpen_OptionError(t *testing.T) {
	boom := errors.New("bad option")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestGuardAndClose_Cache(t *testing.T) {
	fc := &fakeCache{pingErr: errors.New("redis down")}
	s := &Store{Cache: fc}

	err := s.Guard(context.Background())
	testkit.MustContain(t, err.Error(), "redis: redis down")

	if err := s.Close(context.Background()); err != nil || !fc.closed {
		t.Fatalf("Close err=%v closed=%v", err, fc.closed)
	}

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatalf("nil store must fail Guard")
	}
}

func TestRetry(t *testing.T) {
	testkit.Serial(t)
	var slept []time.Duration
	testkit.Swap(t, &sleep, func(d time.Duration) { slept = append(slept, d) })

	calls := 0
	err := retry(context.Background(), 5, 100*time.Millisecond, 250*time.Millisecond, func() error {
		calls++
		if calls < 4 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 4 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 250 * time.Millisecond}
	if len(slept) != len(want) {
		t.Fatalf("slept = %v", slept)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("slept = %v, want %v", slept, want)
		}
	}

	err = retry(context.Background(), 2, time.Millisecond, time.Millisecond, func() error { return errors.New("down") })
	testkit.MustContain(t, err.Error(), "after 2 attempts: down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := retry(ctx, 5, time.Millisecond, time.Millisecond, func() error { return errors.New("x") }); !errors.Is(err, context.Canceled) {
		t.Fatalf("canceled ctx: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PG_ENABLED", "true")
	t.Setenv("PG_MAX_CONNS", "4")
	t.Setenv("CH_URL", "clickhouse://ch:9000/coach")
	t.Setenv("REDIS_DB", "2")

	c := ConfigFromEnv(config.New(), "interviewcoach")
	if !c.PG.Enabled || c.PG.MaxConns != 4 || c.PG.ConnectRetries != 20 {
		t.Fatalf("pg = %+v", c.PG)
	}
	if c.CH.Enabled || c.CH.URL != "clickhouse://ch:9000/coach" {
		t.Fatalf("ch = %+v", c.CH)
	}
	if c.Redis.DB != 2 || c.Redis.Addr != "localhost:6379" || c.AppName != "interviewcoach" {
		t.Fatalf("redis = %+v", c.Redis)
	}
}
