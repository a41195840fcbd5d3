package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestKeyPrefix(t *testing.T) {
	c := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "interviewcoach")
	t.Cleanup(func() { _ = c.Close() })
	if got := c.key("eval:abc"); got != "interviewcoach:eval:abc" {
		t.Fatalf("key = %q", got)
	}
	bare := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "")
	t.Cleanup(func() { _ = bare.Close() })
	if got := bare.key("k"); got != "k" {
		t.Fatalf("bare key = %q", got)
	}
}

func TestOpen_UnreachableFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := Open(ctx, Config{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatalf("expected connection error")
	}
}
