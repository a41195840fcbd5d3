package modkit

import (
	"interviewcoach/internal/modkit/repokit"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/platform/store"
)

// Deps are the shared dependencies handed to every module.
// Backends are nil when disabled; modules must degrade without them.
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	CH    store.Clickhouse
	Cache store.Cache
}

// DepsFromStore copies the open backends of s into Deps
func DepsFromStore(cfg config.Conf, log logger.Logger, s *store.Store) Deps {
	d := Deps{Cfg: cfg, Log: log}
	if s != nil {
		d.PG, d.CH, d.Cache = s.PG, s.CH, s.Cache
	}
	return d
}
