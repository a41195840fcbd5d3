package service

import (
	"context"
	"sync"

	"interviewcoach/internal/core/engine"
	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	"interviewcoach/internal/services/api/evaluations/domain"
)

// InterviewBatch scores every answer of a session on a bounded worker pool.
// Results keep request order; the first failed item fails the batch
func (s *Svc) InterviewBatch(ctx context.Context, in domain.BatchRequest) (domain.BatchResult, error) {
	n := len(in.Items)
	out := make([]domain.InterviewEvaluation, n)
	errs := make([]error, n)

	w := min(max(s.cfg.Workers, 1), max(n, 1))
	var wg sync.WaitGroup
	sem := make(chan struct{}, w)

	for i, it := range in.Items {
		if ctx.Err() != nil {
			wg.Wait()
			return domain.BatchResult{}, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "batch cancelled")
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return domain.BatchResult{}, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "batch cancelled")
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func() {
			defer func() { <-sem; wg.Done() }()
			out[i], errs[i] = s.Interview(ctx, domain.InterviewRequest{
				Question:   it.Question,
				Answer:     it.Answer,
				JobRole:    in.JobRole,
				SkillLevel: in.SkillLevel,
			})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			logger.C(ctx).Error().Err(err).Int("item", i).Msg("evaluations: batch item failed")
			return domain.BatchResult{}, perr.WithField(err, "items")
		}
	}

	results := make([]engine.InterviewResult, n)
	for i, e := range out {
		results[i] = e.Result
	}
	return domain.BatchResult{Results: out, Summary: s.eng.Summarize(results)}, nil
}
