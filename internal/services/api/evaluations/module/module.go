// Package module wires evaluations into the API using modkit
package module

import (
	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/modkit/module"
	"interviewcoach/internal/services/api/evaluations/domain"
	evalhttp "interviewcoach/internal/services/api/evaluations/http"
	"interviewcoach/internal/services/api/evaluations/repo"
	"interviewcoach/internal/services/api/evaluations/service"
)

// Ports exposes the service port for cross-module lookups
type Ports struct {
	Service domain.ServicePort
}

// Module implements the evaluations module
type Module struct {
	b     modkit.Built
	svc   service.Service
	ports Ports
}

// New constructs the evaluations module. Without WithEngine it builds an engine on the shared resources
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	o := FromConfig(deps.Cfg)
	base := append([]modkit.Option{modkit.WithName("evaluations"), modkit.WithPrefix("/evaluations")}, o.middleware()...)
	b := modkit.Build(append(base, opts...)...)

	var eng *engine.Engine
	if in, ok := b.Ports.(Inputs); ok {
		eng = in.Engine
	}
	if eng == nil {
		eng = engine.New(engine.WithLogger(deps.Log), engine.WithDefaultRole(o.DefaultRole))
	}

	var events repo.Events
	if deps.CH != nil {
		events = repo.CHEvents{CH: deps.CH}
	}

	svc := service.New(eng, deps.PG, repo.NewPG(), events, deps.Cache, o.service())
	deps.Log.Info().
		Bool("pg", deps.PG != nil).
		Bool("clickhouse", events != nil).
		Bool("cache", deps.Cache != nil && o.CacheTTL > 0).
		Int("workers", o.Workers).
		Msg("evaluations: module ready")

	return &Module{b: b, svc: svc, ports: Ports{Service: svc}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { evalhttp.Register(sub, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

var _ module.Module = (*Module)(nil)
