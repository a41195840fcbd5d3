package http

import (
	"context"
	"net/http"
	"time"
)

// Probe states
const (
	StatusOK       = "ok"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
	StatusUnknown  = "unknown"
	StatusDegraded = "degraded"
)

const probeTimeout = 2 * time.Second

// Pinger is implemented by store adapters that can report reachability
type Pinger interface {
	Ping(context.Context) error
}

// Backend names one optional dependency
type Backend struct {
	Name string
	Conn any
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name   string `json:"name" example:"pg"`
	Status string `json:"status" example:"ok" enums:"ok,fail,skipped,unknown"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse rolls the probes up; skipped backends do not lower the status
type ReadyResponse struct {
	Status string       `json:"status" example:"ok" enums:"ok,degraded,fail"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now" example:"2026-10-01T13:05:00Z"`
}

func probe(ctx context.Context, b Backend) ReadyCheck {
	rc := ReadyCheck{Name: b.Name}
	switch p, ok := b.Conn.(Pinger); {
	case b.Conn == nil:
		rc.Status = StatusSkipped
	case !ok:
		rc.Status = StatusUnknown
	default:
		if err := p.Ping(ctx); err != nil {
			rc.Status, rc.Error = StatusFail, err.Error()
		} else {
			rc.Status = StatusOK
		}
	}
	return rc
}

// rollup keeps the worst state seen
func rollup(checks []ReadyCheck, degraded bool) string {
	status := StatusOK
	if degraded {
		status = StatusDegraded
	}
	for _, c := range checks {
		switch {
		case c.Status == StatusFail:
			return StatusFail
		case c.Status == StatusUnknown:
			status = StatusDegraded
		}
	}
	return status
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness with a ping per enabled backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	checks := make([]ReadyCheck, 0, len(h.Backends))
	for _, b := range h.Backends {
		checks = append(checks, probe(ctx, b))
	}
	degraded := h.Resources != nil && h.Resources.Degraded
	return ReadyResponse{Status: rollup(checks, degraded), Checks: checks, Now: stamp(h.Now())}, nil
}
