package module

import (
	"time"

	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/modkit"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/net/middleware"
	"interviewcoach/internal/services/api/evaluations/service"
)

// Options holds the evaluations module configuration
type Options struct {
	Workers     int
	CacheTTL    time.Duration
	Persist     bool
	StatsDays   int
	DefaultRole string
	// MaxInFlight caps concurrent requests on this module's routes; 0 leaves only the API-wide cap
	MaxInFlight int
}

// FromConfig reads CORE_EVAL_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_EVAL_")
	return Options{
		Workers:     c.MayInt("WORKERS", 4),
		CacheTTL:    c.MayDuration("CACHE_TTL", 10*time.Minute),
		Persist:     c.MayBool("PERSIST", true),
		StatsDays:   c.MayInt("STATS_DAYS", 30),
		DefaultRole: c.MayString("DEFAULT_ROLE", engine.DefaultJobRole),
		MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 0),
	}
}

// middleware is prepended to the caller's options so explicit WithMiddlewares still apply
func (o Options) middleware() []modkit.Option {
	if o.MaxInFlight <= 0 {
		return nil
	}
	return []modkit.Option{modkit.WithMiddlewares(middleware.Throttle(o.MaxInFlight))}
}

func (o Options) service() service.Config {
	return service.Config{Workers: o.Workers, CacheTTL: o.CacheTTL, Persist: o.Persist, StatsDays: o.StatsDays}
}

// Inputs are what the evaluations module needs from its host
type Inputs struct {
	Engine *engine.Engine
}

// WithEngine injects a configured engine
func WithEngine(e *engine.Engine) modkit.Option {
	return modkit.WithPorts(Inputs{Engine: e})
}
