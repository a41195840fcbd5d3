package sentiment

import "interviewcoach/internal/core/numeric"

// Indicators are the cue counts behind a confidence score.
// Each count is the number of distinct lexicon entries present in the text
type Indicators struct {
	HesitationCount  int    `json:"hesitation_count"`
	AssertiveCount   int    `json:"assertive_count"`
	UncertaintyCount int    `json:"uncertainty_count"`
	Sentiment        string `json:"sentiment"`
}

// Confidence is a 0..100 estimate of how assured the text sounds
type Confidence struct {
	Score      float64    `json:"score"`
	Level      string     `json:"level"`
	Indicators Indicators `json:"indicators"`
}

const (
	confidenceBase     = 70
	hesitationPenalty  = 5
	uncertaintyPenalty = 10
	assertiveBonus     = 5
	polarityAdjust     = 10
)

// Confidence scores text from lexical cues plus the polarity label
func (a *Analyzer) Confidence(text string) Confidence {
	ind := Indicators{
		HesitationCount:  a.hesitation.PresentCount(text),
		AssertiveCount:   a.assertive.PresentCount(text),
		UncertaintyCount: a.uncertain.PresentCount(text),
		Sentiment:        a.Analyze(text).Label,
	}

	score := float64(confidenceBase -
		hesitationPenalty*ind.HesitationCount -
		uncertaintyPenalty*ind.UncertaintyCount +
		assertiveBonus*ind.AssertiveCount)
	switch ind.Sentiment {
	case Positive:
		score += polarityAdjust
	case Negative:
		score -= polarityAdjust
	}
	score = numeric.Score(score)

	lvl := Low
	switch {
	case score >= 75:
		lvl = High
	case score >= 50:
		lvl = Medium
	}
	return Confidence{Score: score, Level: lvl, Indicators: ind}
}

// Combined blends polarity and confidence into the 0..100 "sentiment" dimension:
// 40% compound rescaled to 0..100, 60% confidence score
func (a *Analyzer) Combined(text string) float64 {
	compound := a.Analyze(text).Compound
	scaled := (compound + 1) / 2 * 100
	return numeric.Round(scaled*0.4+a.Confidence(text).Score*0.6, 2)
}
