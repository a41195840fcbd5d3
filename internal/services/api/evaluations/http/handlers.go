// Package http provides HTTP transport for interview, fluency and resume evaluations
package http

import (
	stdhttp "net/http"

	"interviewcoach/internal/modkit/httpkit"
	"interviewcoach/internal/services/api/evaluations/domain"
	svc "interviewcoach/internal/services/api/evaluations/service"
)

// Register mounts evaluation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.InterviewRequest](r, "/interview", h.interview)
	httpkit.PostJSON[domain.BatchRequest](r, "/interview/batch", h.interviewBatch)
	httpkit.PostJSON[domain.FluencyRequest](r, "/fluency", h.fluency)
	httpkit.PostJSON[domain.ResumeRequest](r, "/resume", h.resume)
	httpkit.PostJSON[domain.StatsRequest](r, "/stats", h.stats)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /evaluations/interview Evaluations evaluationsInterview
// @Summary Score an interview answer
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param payload body domain.InterviewRequest true "Answer"
// @Success 200 {object} domain.InterviewEvaluation "ok"
// @Failure 400 {object} ErrorResponse "validation failed"
// @Failure 422 {object} ErrorResponse "evaluation failed"
// @Router /evaluations/interview [post]
func (h *handlers) interview(r *stdhttp.Request, in domain.InterviewRequest) (any, error) {
	return h.svc.Interview(r.Context(), in)
}

// swagger:route POST /evaluations/interview/batch Evaluations evaluationsInterviewBatch
// @Summary Score every answer of an interview session
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param payload body domain.BatchRequest true "Session"
// @Success 200 {object} domain.BatchResult "ok"
// @Router /evaluations/interview/batch [post]
func (h *handlers) interviewBatch(r *stdhttp.Request, in domain.BatchRequest) (any, error) {
	return h.svc.InterviewBatch(r.Context(), in)
}

// swagger:route POST /evaluations/fluency Evaluations evaluationsFluency
// @Summary Analyze speech fluency of a transcript
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param payload body domain.FluencyRequest true "Transcript"
// @Success 200 {object} domain.FluencyEvaluation "ok"
// @Router /evaluations/fluency [post]
func (h *handlers) fluency(r *stdhttp.Request, in domain.FluencyRequest) (any, error) {
	return h.svc.Fluency(r.Context(), in)
}

// swagger:route POST /evaluations/resume Evaluations evaluationsResume
// @Summary Analyze resume text for a job role
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param payload body domain.ResumeRequest true "Resume"
// @Success 200 {object} domain.ResumeEvaluation "ok"
// @Router /evaluations/resume [post]
func (h *handlers) resume(r *stdhttp.Request, in domain.ResumeRequest) (any, error) {
	return h.svc.Resume(r.Context(), in)
}

// swagger:route POST /evaluations/stats Evaluations evaluationsStats
// @Summary Evaluation counts and averages per kind
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param payload body domain.StatsRequest true "Window"
// @Success 200 {array} domain.KindStat "ok"
// @Failure 503 {object} ErrorResponse "analytics disabled"
// @Router /evaluations/stats [post]
func (h *handlers) stats(r *stdhttp.Request, in domain.StatsRequest) (any, error) {
	return h.svc.Stats(r.Context(), in)
}

// swagger:route GET /evaluations/{id} Evaluations evaluationsGet
// @Summary Load a stored evaluation
// @Tags Evaluations
// @Produce json
// @Param id path string true "Evaluation id"
// @Success 200 {object} domain.Record "ok"
// @Failure 404 {object} ErrorResponse "not found"
// @Failure 503 {object} ErrorResponse "persistence disabled"
// @Router /evaluations/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.URLParam(r, "id"))
}
