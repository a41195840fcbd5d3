//go:build integration_redis

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("6379/tcp"),
				wait.ForLog("Ready to accept connections"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestCache_RoundTrip_Integration(t *testing.T) {
	addr := startRedis(t)
	ctx := context.Background()

	c, err := Open(ctx, Config{Addr: addr, Prefix: "coach-test"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("miss = hit:%v err:%v", hit, err)
	}
	if err := c.Set(ctx, "eval:1", []byte(`{"overall_score":72.5}`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, hit, err := c.Get(ctx, "eval:1")
	if err != nil || !hit || string(got) != `{"overall_score":72.5}` {
		t.Fatalf("Get = %q hit:%v err:%v", got, hit, err)
	}
	if err := c.Delete(ctx, "eval:1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "eval:1"); hit {
		t.Fatalf("key survived Delete")
	}
}
