// Package api provides the HTTP API for the application
package api

import (
	_ "embed"

	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/platform/store"

	"interviewcoach/internal/modkit"
	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/modkit/module"
	"interviewcoach/internal/modkit/swaggerkit"

	evalmod "interviewcoach/internal/services/api/evaluations/module"
	metamod "interviewcoach/internal/services/api/meta/module"
	rolesmod "interviewcoach/internal/services/api/roles/module"
)

//go:embed docs/openapi.json
var openapi []byte

// Options are the API options
type Options struct {
	// Config is the root view; modules read their own CORE_* prefixes from it
	Config config.Conf
	// Store may be nil or partially open
	Store  *store.Store
	Logger *logger.Logger
	// Resources default to the shared embedded set
	Resources      *lexicon.Resources
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := logger.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	deps := modkit.DepsFromStore(opt.Config, log, opt.Store)

	res := opt.Resources
	if res == nil {
		var err error
		if res, err = lexicon.Shared(); err != nil {
			log.Error().Err(err).Msg("embedded linguistic resources failed to load; running degraded")
			res = lexicon.Fallback()
		}
	}

	// Construct the roles module first and hand its directory to the engine
	roles := rolesmod.New(deps, rolesmod.WithResources(res))
	dir := module.MustPortsOf[rolesmod.Ports](roles).Directory

	evalOpts := evalmod.FromConfig(deps.Cfg)
	eng := engine.New(
		engine.WithLogger(log.With().Str("component", "engine").Logger()),
		engine.WithResources(res),
		engine.WithDirectory(dir),
		engine.WithDefaultRole(evalOpts.DefaultRole),
	)

	mods := []module.Module{
		metamod.New(deps, metamod.WithResources(res)),
		roles,
		evalmod.New(deps, evalmod.WithEngine(eng)),
	}

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 64),
		Timeout:     apiCfg.MayDuration("TIMEOUT", 0),
	})

	swaggerkit.Mount(r, opt.EnableSwagger, openapi)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
