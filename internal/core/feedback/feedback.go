// Package feedback turns scored dimensions into ordered, user-facing comments.
// Output is never empty
package feedback

import (
	"fmt"
	"strings"

	"interviewcoach/internal/core/scoring"
)

// Interview is the input to the interview answer comments
type Interview struct {
	Overall      float64
	Relevance    scoring.Relevance
	Grammar      scoring.Grammar
	Completeness scoring.Completeness
	Sentiment    float64
}

// Interview answer thresholds
const (
	relevanceLow   = 60
	briefWords     = 20
	verboseWords   = 200
	confidenceLow  = 50
	confidenceHigh = 75
	strongOverall  = 75
	shownKeywords  = 3
)

// ForInterview returns comments in fixed order: overall band, relevance, grammar,
// length, confidence, reinforcement
func ForInterview(in Interview) []string {
	out := []string{interviewBand(in.Overall)}

	switch {
	case in.Relevance.Score < relevanceLow:
		out = append(out, "Try to address the question more directly and use relevant technical terms.")
	case len(in.Relevance.MatchedKeywords) > 0:
		kws := in.Relevance.MatchedKeywords
		if len(kws) > shownKeywords {
			kws = kws[:shownKeywords]
		}
		out = append(out, "Good use of relevant keywords: "+strings.Join(kws, ", "))
	}

	if n := in.Grammar.ErrorCount; n > 0 {
		out = append(out, fmt.Sprintf("Watch out for grammar issues. Found %d potential errors.", n))
	}

	switch w := in.Completeness.WordCount; {
	case w < briefWords:
		out = append(out, "Your answer is too brief. Provide more details and examples.")
	case w > verboseWords:
		out = append(out, "Good detailed answer! Make sure to stay focused on the key points.")
	}

	switch {
	case in.Sentiment < confidenceLow:
		out = append(out, "Show more confidence in your responses. Use assertive language.")
	case in.Sentiment >= confidenceHigh:
		out = append(out, "Great confidence level in your answer!")
	}

	if in.Overall >= strongOverall {
		out = append(out, "Keep up the good work! Your interview skills are strong.")
	}
	return out
}

func interviewBand(overall float64) string {
	switch {
	case overall >= 90:
		return "Excellent answer! You demonstrated strong understanding."
	case overall >= 75:
		return "Good answer with solid content."
	case overall >= 60:
		return "Adequate answer, but there's room for improvement."
	}
	return "Your answer needs more development and clarity."
}
