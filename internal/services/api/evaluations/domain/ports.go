package domain

import "context"

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Interview(ctx context.Context, in InterviewRequest) (InterviewEvaluation, error)
	InterviewBatch(ctx context.Context, in BatchRequest) (BatchResult, error)
	Fluency(ctx context.Context, in FluencyRequest) (FluencyEvaluation, error)
	Resume(ctx context.Context, in ResumeRequest) (ResumeEvaluation, error)
	Get(ctx context.Context, id string) (Record, error)
	Stats(ctx context.Context, in StatsRequest) ([]KindStat, error)
}
