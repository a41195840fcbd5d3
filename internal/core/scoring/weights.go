// Package scoring holds the per-domain weight sets and the dimension scorers they combine
package scoring

import (
	"fmt"
	"math"

	"interviewcoach/internal/core/numeric"
)

const weightTolerance = 1e-9

// InterviewWeights weights the four interview-answer dimensions
type InterviewWeights struct {
	Relevance    float64 `json:"relevance"`
	Grammar      float64 `json:"grammar"`
	Completeness float64 `json:"completeness"`
	Sentiment    float64 `json:"sentiment"`
}

// FluencyTestWeights weights the fluency test record. It is separate from the
// fluency score formula, which already folds pacing and grammar in
type FluencyTestWeights struct {
	Fluency       float64 `json:"fluency"`
	Pronunciation float64 `json:"pronunciation"`
	Grammar       float64 `json:"grammar"`
}

// ResumeWeights weights the four resume dimensions
type ResumeWeights struct {
	Grammar   float64 `json:"grammar"`
	Structure float64 `json:"structure"`
	ATS       float64 `json:"ats_compatibility"`
	Keywords  float64 `json:"keywords"`
}

// Presets
var (
	Interview   = must(NewInterviewWeights(0.35, 0.20, 0.25, 0.20))
	FluencyTest = must(NewFluencyTestWeights(0.35, 0.30, 0.35))
	Resume      = must(NewResumeWeights(0.25, 0.20, 0.25, 0.30))
)

// NewInterviewWeights validates and returns an interview weight set
func NewInterviewWeights(relevance, grammar, completeness, sentiment float64) (InterviewWeights, error) {
	w := InterviewWeights{relevance, grammar, completeness, sentiment}
	return w, validate("interview", relevance, grammar, completeness, sentiment)
}

// NewFluencyTestWeights validates and returns a fluency test weight set
func NewFluencyTestWeights(fluency, pronunciation, grammar float64) (FluencyTestWeights, error) {
	w := FluencyTestWeights{fluency, pronunciation, grammar}
	return w, validate("fluency test", fluency, pronunciation, grammar)
}

// NewResumeWeights validates and returns a resume weight set
func NewResumeWeights(grammar, structure, ats, keywords float64) (ResumeWeights, error) {
	w := ResumeWeights{grammar, structure, ats, keywords}
	return w, validate("resume", grammar, structure, ats, keywords)
}

// Overall combines interview dimension scores, rounded to 2 places
func (w InterviewWeights) Overall(relevance, grammar, completeness, sentiment float64) float64 {
	return numeric.Score(relevance*w.Relevance + grammar*w.Grammar +
		completeness*w.Completeness + sentiment*w.Sentiment)
}

// Overall combines fluency test dimension scores, rounded to 2 places
func (w FluencyTestWeights) Overall(fluency, pronunciation, grammar float64) float64 {
	return numeric.Score(fluency*w.Fluency + pronunciation*w.Pronunciation + grammar*w.Grammar)
}

// Overall combines resume dimension scores, rounded to 2 places
func (w ResumeWeights) Overall(grammar, structure, ats, keywords float64) float64 {
	return numeric.Score(grammar*w.Grammar + structure*w.Structure + ats*w.ATS + keywords*w.Keywords)
}

func validate(domain string, ws ...float64) error {
	sum := 0.0
	for _, w := range ws {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("scoring: %s weight %v is negative or NaN", domain, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("scoring: %s weights sum to %v, want 1", domain, sum)
	}
	return nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
