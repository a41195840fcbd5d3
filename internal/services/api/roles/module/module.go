// Package module wires the role keyword directory into the API using modkit
package module

import (
	"context"
	"time"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/modkit/module"
	"interviewcoach/internal/services/api/roles/domain"
	roleshttp "interviewcoach/internal/services/api/roles/http"
	rolesrepo "interviewcoach/internal/services/api/roles/repo"
	rolessvc "interviewcoach/internal/services/api/roles/service"
)

// Module implements the roles module
type Module struct {
	b     modkit.Built
	svc   rolessvc.Service
	ports Ports
}

// New constructs the roles module. Without WithResources it seeds from lexicon.Shared
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("roles"), modkit.WithPrefix("/roles")}, opts...)...)

	var res *lexicon.Resources
	if in, ok := b.Ports.(Inputs); ok {
		res = in.Resources
	}
	if res == nil {
		var err error
		if res, err = lexicon.Shared(); err != nil {
			deps.Log.Warn().Err(err).Msg("roles: embedded resources unavailable, directory is empty")
			res = lexicon.Fallback()
		}
	}

	o := FromConfig(deps.Cfg)
	svc := rolessvc.New(res, o.Source, deps.PG, rolesrepo.NewPG(), deps.Log)
	if o.Source == domain.SourcePG && deps.PG != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := svc.Reload(ctx); err != nil {
			deps.Log.Error().Err(err).Msg("roles: initial reload failed, serving embedded keywords")
		}
		cancel()
	}

	return &Module{b: b, svc: svc, ports: Ports{Directory: svc}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { roleshttp.Register(sub, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

var _ module.Module = (*Module)(nil)
