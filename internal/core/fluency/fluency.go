// Package fluency computes pacing, filler and pause metrics for speech transcripts
package fluency

import (
	"math"
	"regexp"
	"unicode/utf8"

	"interviewcoach/internal/core/grammar"
	"interviewcoach/internal/core/normalize"
	"interviewcoach/internal/core/numeric"
	"interviewcoach/internal/core/phrase"
)

// AssumedWPM is the speaking rate used when no duration is supplied
const AssumedWPM = 130

// FillerDetail is the count for one filler phrase
type FillerDetail struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Fillers summarizes filler phrase usage
type Fillers struct {
	TotalCount int            `json:"total_count"`
	Details    []FillerDetail `json:"details"`
	Density    float64        `json:"density"`
}

// Pauses lists detected pause markers by rune offset
type Pauses struct {
	Count     int   `json:"count"`
	Locations []int `json:"locations"`
}

// Analysis is the full fluency report for one transcript
type Analysis struct {
	FluencyScore    float64  `json:"fluency_score"`
	WPM             float64  `json:"wpm"`
	WordCount       int      `json:"word_count"`
	DurationSeconds float64  `json:"duration_seconds"`
	FillerWords     Fillers  `json:"filler_words"`
	Pauses          Pauses   `json:"pauses"`
	GrammarErrors   []string `json:"grammar_errors"`
	Feedback        []string `json:"feedback"`
}

// two or more periods, or three or more whitespace characters (\v, \x1c-\x1f and NEL included)
var pauseRE = regexp.MustCompile(`\.{2,}|[\s\v\x1c-\x1f\x85\p{Z}]{3,}`)

// Calculator is safe for concurrent use
type Calculator struct {
	n       *normalize.Normalizer
	g       *grammar.Checker
	fillers *phrase.Matcher
}

// New builds a Calculator. The filler lexicon comes from the normalizer's resources
func New(n *normalize.Normalizer, g *grammar.Checker) *Calculator {
	return &Calculator{n: n, g: g, fillers: phrase.New(n.Resources().Fillers)}
}

// WPM returns words per minute rounded to 2 places. It is 0 when durationSeconds <= 0,
// or when the duration is so small or malformed that the rate is not finite
func (c *Calculator) WPM(text string, durationSeconds float64) float64 {
	if durationSeconds <= 0 || math.IsNaN(durationSeconds) {
		return 0
	}
	return numeric.Finite(numeric.Round(float64(c.n.WordCount(text))/(durationSeconds/60), 2))
}

// Fillers counts each filler phrase as a non-overlapping substring of the lower-cased text.
// Details keep lexicon order and omit phrases that do not occur
func (c *Calculator) Fillers(text string) Fillers {
	counts := c.fillers.Count(text)
	pats := c.fillers.Patterns()
	f := Fillers{Details: []FillerDetail{}}
	for i, n := range counts {
		if n == 0 {
			continue
		}
		f.Details = append(f.Details, FillerDetail{Word: pats[i], Count: n})
		f.TotalCount += n
	}
	f.Density = numeric.Round(numeric.Density(f.TotalCount, c.n.WordCount(text)), 2)
	return f
}

// DetectPauses finds ellipses and long whitespace runs
func DetectPauses(text string) Pauses {
	idx := pauseRE.FindAllStringIndex(text, -1)
	p := Pauses{Count: len(idx), Locations: make([]int, len(idx))}
	for i, m := range idx {
		p.Locations[i] = utf8.RuneCountInString(text[:m[0]])
	}
	return p
}

// Score combines pacing and disfluency densities into a 0..100 fluency score.
// Ideal pace (120..150 wpm) earns a flat +5 before clamping
func Score(wpm float64, fillerCount, pauseCount, grammarErrors, wordCount int) float64 {
	s := 100.0
	switch {
	case wpm < 80:
		s -= (80 - wpm) * 0.3
	case wpm > 180:
		s -= (wpm - 180) * 0.2
	case wpm >= 120 && wpm <= 150:
		s += 5
	}
	s -= numeric.Density(fillerCount, wordCount) * 2
	s -= numeric.Density(pauseCount, wordCount) * 3
	s -= numeric.Density(grammarErrors, wordCount) * 5
	return numeric.Score(s)
}

// Analyze runs the full fluency pass. A nil duration is synthesized from AssumedWPM,
// in which case wpm is reported as AssumedWPM
func (c *Calculator) Analyze(text string, durationSeconds *float64) Analysis {
	words := c.n.WordCount(text)

	var wpm, dur float64
	if durationSeconds == nil {
		wpm = AssumedWPM
		dur = float64(words) / AssumedWPM * 60
	} else {
		dur = numeric.Finite(*durationSeconds)
		wpm = c.WPM(text, dur)
	}

	fillers := c.Fillers(text)
	pauses := DetectPauses(text)
	errs := c.g.Check(text).Issues

	a := Analysis{
		WPM:             wpm,
		WordCount:       words,
		DurationSeconds: numeric.Round(dur, 2),
		FillerWords:     fillers,
		Pauses:          pauses,
		GrammarErrors:   errs,
	}
	a.FluencyScore = Score(wpm, fillers.TotalCount, pauses.Count, len(errs), words)
	a.Feedback = Feedback(a)
	return a
}
