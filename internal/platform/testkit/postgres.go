//go:build integration_pg

package testkit

import (
	"context"
	"net/url"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "coach"
	pgPassword = "coach"
	pgDB       = "interviewcoach"
)

// StartPostgres runs a throwaway postgres:16 for the test and returns its DSN.
// The container is terminated in t.Cleanup
func StartPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	// postgres logs "ready" once for the init server and again for the real one
	ready := wait.ForLog("database system is ready to accept connections").WithOccurrence(2)
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env:          map[string]string{"POSTGRES_USER": pgUser, "POSTGRES_PASSWORD": pgPassword, "POSTGRES_DB": pgDB},
		WaitingFor:   wait.ForAll(wait.ForListeningPort("5432/tcp"), ready).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("postgres container: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	hostPort, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		t.Fatalf("postgres endpoint: %v", err)
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgUser, pgPassword),
		Host:     hostPort,
		Path:     "/" + pgDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}
