// Package domain holds DTOs and ports for evaluation endpoints
package domain

import (
	"encoding/json"
	"time"

	"interviewcoach/internal/core/engine"
)

// InterviewRequest scores one answer
type InterviewRequest struct {
	Question   string `json:"question" validate:"required,notblank,max=2000" example:"What is OOP?"`
	Answer     string `json:"answer" validate:"max=20000" example:"Object oriented programming organizes code around objects."`
	JobRole    string `json:"job_role,omitempty" validate:"omitempty,max=100" example:"Software Engineer"`
	SkillLevel string `json:"skill_level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced" example:"Beginner"`
}

// BatchItem is one question and answer of a session
type BatchItem struct {
	Question string `json:"question" validate:"required,notblank,max=2000"`
	Answer   string `json:"answer" validate:"max=20000"`
}

// BatchRequest scores a whole interview session
type BatchRequest struct {
	JobRole    string      `json:"job_role,omitempty" validate:"omitempty,max=100" example:"Data Scientist"`
	SkillLevel string      `json:"skill_level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Items      []BatchItem `json:"items" validate:"required,min=1,max=50,dive"`
}

// FluencyRequest scores a speech transcript
type FluencyRequest struct {
	Transcript         string   `json:"transcript" validate:"required,notblank,max=50000" example:"Um, so, I think this is, like, good."`
	AudioDuration      *float64 `json:"audio_duration,omitempty" validate:"omitempty,gte=0,lte=7200" example:"42.5"`
	PronunciationScore *float64 `json:"pronunciation_score,omitempty" validate:"omitempty,gte=0,lte=100" example:"85"`
}

// ResumeRequest scores resume text
type ResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,notblank,max=100000"`
	JobRole    string `json:"job_role,omitempty" validate:"omitempty,max=100" example:"Software Engineer"`
}

// Evaluation wraps an engine result with its record id
type Evaluation[T any] struct {
	// ID is empty when persistence is disabled
	ID     string `json:"id,omitempty" example:"0b6c1f7e-5a5e-4f4e-9c39-0f2d2c1e8a11"`
	Kind   string `json:"kind" example:"interview"`
	Cached bool   `json:"cached"`
	Result T      `json:"result"`
}

// InterviewEvaluation is the response of POST /evaluations/interview
type InterviewEvaluation = Evaluation[engine.InterviewResult]

// FluencyEvaluation is the response of POST /evaluations/fluency
type FluencyEvaluation = Evaluation[engine.FluencyResult]

// ResumeEvaluation is the response of POST /evaluations/resume
type ResumeEvaluation = Evaluation[engine.ResumeResult]

// BatchResult is the response of POST /evaluations/interview/batch
type BatchResult struct {
	Results []InterviewEvaluation `json:"results"`
	Summary engine.SessionSummary `json:"summary"`
}

// Record is a persisted evaluation
type Record struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	JobRole      string          `json:"job_role,omitempty"`
	OverallScore float64         `json:"overall_score"`
	Payload      json.RawMessage `json:"payload" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Event is the analytics row appended per evaluation
type Event struct {
	ID           string
	Kind         string
	JobRole      string
	OverallScore float64
	WordCount    int
	CreatedAt    time.Time
}

// StatsRequest bounds the analytics window
type StatsRequest struct {
	Days int `json:"days" validate:"omitempty,min=1,max=365" example:"30"`
}

// KindStat aggregates evaluation events of one kind
type KindStat struct {
	Kind         string  `json:"kind" example:"interview"`
	Evaluations  uint64  `json:"evaluations" example:"120"`
	AverageScore float64 `json:"average_score" example:"71.4"`
	AverageWords float64 `json:"average_words" example:"86.2"`
}
