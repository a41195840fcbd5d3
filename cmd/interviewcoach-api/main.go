// @title         Interview Coach API
// @version       0.1.0
// @description   Scores interview answers, speech transcripts and resumes

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/version"
	"interviewcoach/internal/modkit/repokit"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/platform/net/middleware"
	"interviewcoach/internal/platform/store"

	"interviewcoach/internal/services/api"
)

func main() {
	// a missing .env is fine; the environment wins over it
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	lo := logger.FromEnv()
	lo.Component = "api"
	logger.Init(lo)
	l := logger.Get()
	l.Info().Str("build", version.Info().String()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// every backend is optional (PG_ENABLED, CH_ENABLED, REDIS_ENABLED)
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "interviewcoach"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	res, err := lexicon.LoadWithOverlay(root.MayString("CORE_LEXICON_OVERLAY", ""))
	if err != nil {
		l.Panic().Err(err).Msg("lexicon overlay failed to load")
	}
	if res.Degraded {
		_, cause := lexicon.Shared()
		l.Error().Err(cause).Msg("embedded linguistic resources failed to load; running degraded")
	}

	// http server (reads API_PORT)
	srv := phttp.NewServer(root, phttp.WithMiddleware(middleware.Edge()...))

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Resources:      res,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
