// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/version"
	modkit "interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"

	metahttp "interviewcoach/internal/services/api/meta/http"
)

// Inputs are what the meta module needs from its host
type Inputs struct {
	Resources *lexicon.Resources
}

// WithResources reports res on /meta/lexicon and in build info
func WithResources(res *lexicon.Resources) modkit.Option {
	return modkit.WithPorts(Inputs{Resources: res})
}

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	var res *lexicon.Resources
	if in, ok := b.Ports.(Inputs); ok {
		res = in.Resources
	}

	m := &Module{b: b, startedAt: time.Now()}
	m.deps = metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   m.startedAt,
		Resources:   res,
		Backends: []metahttp.Backend{
			{Name: "pg", Conn: deps.PG},
			{Name: "ch", Conn: deps.CH},
			{Name: "redis", Conn: deps.Cache},
		},
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { metahttp.Register(sub, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
