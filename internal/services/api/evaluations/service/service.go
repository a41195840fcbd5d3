// Package service runs evaluations through the engine and handles caching, batching and persistence
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/modkit/repokit"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/platform/store"
	"interviewcoach/internal/services/api/evaluations/domain"
	"interviewcoach/internal/services/api/evaluations/repo"
)

// Service defines the evaluations service contract
type Service interface {
	domain.ServicePort
}

// Evaluator is the engine surface the service drives
type Evaluator interface {
	EvaluateInterviewAnswer(ctx context.Context, in engine.InterviewInput) (engine.InterviewResult, error)
	EvaluateFluency(ctx context.Context, transcript string, durationSeconds, pronunciation *float64) (engine.FluencyResult, error)
	AnalyzeResume(ctx context.Context, text, jobRole string) (engine.ResumeResult, error)
	Summarize(results []engine.InterviewResult) engine.SessionSummary
	DirectoryRevision() uint64
}

// Config tunes the service
type Config struct {
	// Workers bounds concurrent evaluations inside one batch
	Workers int
	// CacheTTL of zero disables result caching
	CacheTTL time.Duration
	// Persist stores every evaluation in postgres and clickhouse when they are open
	Persist bool
	// StatsDays is the default analytics window
	StatsDays int
}

// Svc implements the evaluations service. Every backend is optional
type Svc struct {
	eng    Evaluator
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	events repo.Events
	cache  store.Cache
	cfg    Config

	now   func() time.Time
	newID func() string
}

// New constructs the service; db, events and cache may be nil
func New(eng Evaluator, db repokit.TxRunner, binder repokit.Binder[repo.Repo], events repo.Events, cache store.Cache, cfg Config) *Svc {
	if eng == nil {
		panic("evaluations.Service requires a non nil Evaluator")
	}
	if db != nil && binder == nil {
		panic("evaluations.Service requires a Repo binder with a TxRunner")
	}
	if cfg.StatsDays <= 0 {
		cfg.StatsDays = 30
	}
	return &Svc{
		eng: eng, db: db, binder: binder, events: events, cache: cache, cfg: cfg,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Interview scores one interview answer
func (s *Svc) Interview(ctx context.Context, in domain.InterviewRequest) (domain.InterviewEvaluation, error) {
	ctx = logger.WithKind(ctx, engine.KindInterview)
	input := engine.InterviewInput{Question: in.Question, Answer: in.Answer, JobRole: in.JobRole, SkillLevel: in.SkillLevel}

	key := cacheKey(engine.KindInterview, in.Question, in.Answer, in.JobRole, in.SkillLevel, s.revisionPart())
	res, cached, err := cachedEval(ctx, s, key, func() (engine.InterviewResult, error) {
		return s.eng.EvaluateInterviewAnswer(ctx, input)
	})
	if err != nil {
		return domain.InterviewEvaluation{}, evalErr(err, engine.KindInterview)
	}
	id := s.persist(ctx, engine.KindInterview, res.JobRole, res.OverallScore, res.Completeness.WordCount, res)
	return domain.InterviewEvaluation{ID: id, Kind: engine.KindInterview, Cached: cached, Result: res}, nil
}

// Fluency scores a transcript and builds its fluency test record
func (s *Svc) Fluency(ctx context.Context, in domain.FluencyRequest) (domain.FluencyEvaluation, error) {
	ctx = logger.WithKind(ctx, engine.KindFluency)

	key := cacheKey(engine.KindFluency, in.Transcript, floatPart(in.AudioDuration), floatPart(in.PronunciationScore))
	res, cached, err := cachedEval(ctx, s, key, func() (engine.FluencyResult, error) {
		return s.eng.EvaluateFluency(ctx, in.Transcript, in.AudioDuration, in.PronunciationScore)
	})
	if err != nil {
		return domain.FluencyEvaluation{}, evalErr(err, engine.KindFluency)
	}
	id := s.persist(ctx, engine.KindFluency, "", res.Test.OverallScore, res.Analysis.WordCount, res)
	return domain.FluencyEvaluation{ID: id, Kind: engine.KindFluency, Cached: cached, Result: res}, nil
}

// Resume scores resume text against a job role
func (s *Svc) Resume(ctx context.Context, in domain.ResumeRequest) (domain.ResumeEvaluation, error) {
	ctx = logger.WithKind(ctx, engine.KindResume)

	key := cacheKey(engine.KindResume, in.ResumeText, in.JobRole, s.revisionPart())
	res, cached, err := cachedEval(ctx, s, key, func() (engine.ResumeResult, error) {
		return s.eng.AnalyzeResume(ctx, in.ResumeText, in.JobRole)
	})
	if err != nil {
		return domain.ResumeEvaluation{}, evalErr(err, engine.KindResume)
	}
	id := s.persist(ctx, engine.KindResume, res.JobRole, res.OverallScore, res.Analysis.WordCount, res)
	return domain.ResumeEvaluation{ID: id, Kind: engine.KindResume, Cached: cached, Result: res}, nil
}

// Get loads a persisted evaluation
func (s *Svc) Get(ctx context.Context, id string) (domain.Record, error) {
	if s.db == nil {
		return domain.Record{}, perr.Unavailablef("evaluation persistence is disabled")
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.Record{}, perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}

	var (
		rec domain.Record
		ok  bool
	)
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		var err error
		rec, ok, err = s.binder.Bind(q).Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Record{}, perr.FromPostgres(err, "load evaluation")
	}
	if !ok {
		return domain.Record{}, perr.NotFoundf("evaluation %s not found", id)
	}
	return rec, nil
}

// Stats aggregates analytics events per kind
func (s *Svc) Stats(ctx context.Context, in domain.StatsRequest) ([]domain.KindStat, error) {
	if s.events == nil {
		return nil, perr.Unavailablef("evaluation analytics are disabled")
	}
	days := in.Days
	if days <= 0 {
		days = s.cfg.StatsDays
	}
	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	out, err := s.events.Summary(ctx, since)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "query evaluation stats")
	}
	return out, nil
}

// persist stores the result and appends its event. Failures are logged, never returned.
// The id is empty when nothing was written
func (s *Svc) persist(ctx context.Context, kind, role string, overall float64, words int, result any) string {
	if !s.cfg.Persist || (s.db == nil && s.events == nil) {
		return ""
	}
	id := s.newID()
	created := s.now().UTC()
	log := logger.C(ctx)
	wrote := false

	if s.db != nil {
		payload, err := json.Marshal(result)
		if err != nil {
			log.Error().Err(err).Msg("evaluations: marshal payload")
		} else {
			rec := domain.Record{ID: id, Kind: kind, JobRole: role, OverallScore: overall, Payload: payload, CreatedAt: created}
			err = s.insert(ctx, rec)
			if err != nil {
				log.Error().Err(err).Str("id", id).Msg("evaluations: insert record failed")
			} else {
				wrote = true
			}
		}
	}

	if s.events != nil {
		ev := domain.Event{ID: id, Kind: kind, JobRole: role, OverallScore: overall, WordCount: words, CreatedAt: created}
		if err := s.events.Append(ctx, ev); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("evaluations: append event failed")
		} else {
			wrote = true
		}
	}

	if !wrote {
		return ""
	}
	return id
}

// insert retries once when the server reports contention or a restart
func (s *Svc) insert(ctx context.Context, rec domain.Record) error {
	write := func(q repokit.Queryer) error { return s.binder.Bind(q).Insert(ctx, rec) }
	err := repokit.WithTx(ctx, s.db, write)
	if perr.Retryable(err) {
		logger.C(ctx).Debug().Err(err).Str("id", rec.ID).Msg("evaluations: retrying insert")
		err = repokit.WithTx(ctx, s.db, write)
	}
	return err
}

func evalErr(err error, kind string) error {
	if errors.Is(err, engine.ErrEvaluationFailed) {
		return perr.Wrapf(err, perr.ErrorCodeEvaluation, "%s evaluation failed", kind)
	}
	return perr.Wrapf(err, perr.ErrorCodeUnknown, "%s evaluation", kind)
}
