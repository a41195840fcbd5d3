// Package http serves liveness, readiness and build metadata
package http

import (
	"net/http"
	"strconv"
	"time"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/version"
	"interviewcoach/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Resources   *lexicon.Resources
	// Backends are probed in order by /ready; a nil Conn reports skipped
	Backends []Backend
	Now      func() time.Time
}

type handlers struct {
	Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{Deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/lexicon", h.lexicon)
}

// HealthResponse answers liveness probes
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Service string `json:"service" example:"interviewcoach-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now" example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse reports process uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name" example:"interviewcoach-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime" example:"300"`
}

// LexiconResponse reports the linguistic resources the engine runs on
type LexiconResponse struct {
	Version  int               `json:"version" example:"1"`
	Degraded bool              `json:"degraded"`
	Roles    int               `json:"roles" example:"12"`
	Build    version.BuildInfo `json:"build"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(h.Now())}, nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Process uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	up := h.Now().Sub(h.StartedAt) / time.Second
	return ServiceResponse{Name: h.ServiceName, Started: stamp(h.StartedAt), Uptime: int64(up)}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build info with the lexicon version
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(*http.Request) (any, error) {
	return h.build(), nil
}

// swagger:route GET /meta/lexicon Meta metaLexicon
// @Summary Linguistic resource version and build
// @Tags Meta
// @Produce json
// @Success 200 {object} LexiconResponse "ok"
// @Router /meta/lexicon [get]
func (h *handlers) lexicon(*http.Request) (any, error) {
	out := LexiconResponse{Build: h.build()}
	if res := h.Resources; res != nil {
		out.Version, out.Degraded, out.Roles = res.Version, res.Degraded, len(res.Roles)
	}
	return out, nil
}

// build stamps the lexicon version, suffixed -fallback when degraded
func (h *handlers) build() version.BuildInfo {
	b := version.Info()
	if h.ServiceName != "" {
		b.Service = h.ServiceName
	}
	res := h.Resources
	if res == nil {
		return b
	}
	v := strconv.Itoa(res.Version)
	if res.Degraded {
		v += "-fallback"
	}
	return b.WithLexicon(v)
}
