package module

import (
	"net/http"
	"testing"
	"time"

	"interviewcoach/internal/modkit"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_EVAL_WORKERS", "2")
	t.Setenv("CORE_EVAL_CACHE_TTL", "1m")
	t.Setenv("CORE_EVAL_MAX_IN_FLIGHT", "8")

	o := FromConfig(config.New())
	if o.Workers != 2 || o.CacheTTL != time.Minute || o.MaxInFlight != 8 || !o.Persist || o.StatsDays != 30 {
		t.Fatalf("options = %+v", o)
	}
}

func TestNew_ModuleMiddleware(t *testing.T) {
	deps := modkit.Deps{Cfg: config.New(), Log: logger.Nop()}
	noop := func(next http.Handler) http.Handler { return next }

	m := New(deps, modkit.WithMiddlewares(noop)).(*Module)
	if len(m.b.Mw) != 1 || m.b.Prefix != "/evaluations" {
		t.Fatalf("built = %+v", m.b)
	}

	t.Setenv("CORE_EVAL_MAX_IN_FLIGHT", "4")
	m = New(deps, modkit.WithMiddlewares(noop)).(*Module)
	if len(m.b.Mw) != 2 {
		t.Fatalf("throttle not installed: %d middlewares", len(m.b.Mw))
	}
}
