package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	readHeaderTimeout = 10 * time.Second
	drainTimeout      = 15 * time.Second
)

// Server owns the root chi mux and the listener
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer listens on API_PORT, :4000 by default. opts run against the mux before any route mounts
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	mux := chi.NewRouter()
	for _, o := range opts {
		o(mux)
	}
	return &Server{
		mux: mux,
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("API_PORT", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// WithMiddleware installs mw on the root mux
func WithMiddleware(mw ...func(stdhttp.Handler) stdhttp.Handler) func(*chi.Mux) {
	return func(m *chi.Mux) { m.Use(mw...) }
}

func (s *Server) Router() Router { return chiRouter{s.mux} }

func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	drained := make(chan error, 1)
	stop := context.AfterFunc(ctx, func() {
		log.Info().Dur("drain", drainTimeout).Msg("http shutting down")
		dctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		drained <- s.srv.Shutdown(dctx)
	})
	defer stop()

	log.Info().Str("addr", s.srv.Addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return <-drained
}
