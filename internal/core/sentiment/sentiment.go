// Package sentiment scores polarity with a VADER-style lexicon model and estimates
// speaker confidence from hesitation, assertive and uncertainty cues
package sentiment

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/numeric"
	"interviewcoach/internal/core/phrase"
)

// Labels and levels
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"

	High   = "high"
	Medium = "medium"
	Low    = "low"
)

// model constants
const (
	capIncrement    = 0.733
	negationScalar  = -0.74
	normalizeAlpha  = 15.0
	exclaimStep     = 0.292
	exclaimMax      = 4
	questionStep    = 0.18
	questionCeiling = 0.96
	butBefore       = 0.5
	butAfter        = 1.5
)

// Result is the polarity breakdown of a text
type Result struct {
	Positive        float64 `json:"positive"`
	Negative        float64 `json:"negative"`
	Neutral         float64 `json:"neutral"`
	Compound        float64 `json:"compound"`
	Label           string  `json:"sentiment"`
	ConfidenceLevel string  `json:"confidence_level"`
}

// NeutralResult is returned for empty text and when the lexicon is unavailable
func NeutralResult() Result {
	return Result{Neutral: 1, Label: Neutral, ConfidenceLevel: Low}
}

// Analyzer is safe for concurrent use
type Analyzer struct {
	res        *lexicon.Resources
	hesitation *phrase.Matcher
	assertive  *phrase.Matcher
	uncertain  *phrase.Matcher
}

// New builds an Analyzer over res. A nil or degraded set yields neutral results
func New(res *lexicon.Resources) *Analyzer {
	if res == nil {
		res = lexicon.Fallback()
	}
	return &Analyzer{
		res:        res,
		hesitation: phrase.New(res.Hesitation),
		assertive:  phrase.New(res.Assertive),
		uncertain:  phrase.New(res.Uncertainty),
	}
}

// Available reports whether the sentiment lexicon loaded
func (a *Analyzer) Available() bool { return len(a.res.Valence) > 0 }

// Analyze scores text polarity. Proportions and compound are rounded to 3 places
func (a *Analyzer) Analyze(text string) Result {
	if !a.Available() {
		return NeutralResult()
	}
	words := splitWords(text)
	if len(words) == 0 {
		return NeutralResult()
	}
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	capDiff := capDifferential(words)

	vals := make([]float64, len(words))
	for i := range words {
		if _, ok := a.res.Boosters[lower[i]]; ok {
			continue
		}
		if lower[i] == "kind" && i+1 < len(words) && lower[i+1] == "of" {
			continue
		}
		vals[i] = a.valence(words, lower, i, capDiff)
	}
	applyBut(lower, vals)
	return a.score(vals, text)
}

func (a *Analyzer) valence(words, lower []string, i int, capDiff bool) float64 {
	v, ok := a.res.Valence[lower[i]]
	if !ok {
		return 0
	}
	if capDiff && isAllCaps(words[i]) {
		if v > 0 {
			v += capIncrement
		} else {
			v -= capIncrement
		}
	}
	for back := range 3 {
		j := i - (back + 1)
		if j < 0 {
			break
		}
		if _, inLex := a.res.Valence[lower[j]]; inLex {
			continue
		}
		s := a.boost(words[j], lower[j], v, capDiff)
		switch {
		case back == 1 && s != 0:
			s *= 0.95
		case back == 2 && s != 0:
			s *= 0.9
		}
		v += s
		v = a.negate(lower, i, back, v)
	}
	return a.least(lower, i, v)
}

// boost returns the scalar a booster word at lower contributes to valence v
func (a *Analyzer) boost(word, lower string, v float64, capDiff bool) float64 {
	b, ok := a.res.Boosters[lower]
	if !ok {
		return 0
	}
	if v < 0 {
		b = -b
	}
	if capDiff && isAllCaps(word) {
		if v > 0 {
			b += capIncrement
		} else {
			b -= capIncrement
		}
	}
	return b
}

// negate applies the negation window for the word back+1 positions before i.
// "never so/this" intensifies and "without doubt" is left alone instead of flipping
func (a *Analyzer) negate(lower []string, i, back int, v float64) float64 {
	j := i - (back + 1)
	soThis := func(w string) bool { return w == "so" || w == "this" }
	switch back {
	case 1:
		if lower[j] == "never" && soThis(lower[i-1]) {
			return v * 1.25
		}
		if lower[j] == "without" && lower[i-1] == "doubt" {
			return v
		}
	case 2:
		// a so/this right before the word intensifies even without "never"
		if lower[j] == "never" && soThis(lower[i-2]) || soThis(lower[i-1]) {
			return v * 1.25
		}
		if lower[j] == "without" && (lower[i-2] == "doubt" || lower[i-1] == "doubt") {
			return v
		}
	}
	if a.res.IsNegation(lower[j]) {
		return v * negationScalar
	}
	return v
}

// least flips v after "least", except in "at least" and "very least"
func (a *Analyzer) least(lower []string, i int, v float64) float64 {
	if i == 0 || lower[i-1] != "least" {
		return v
	}
	if _, inLex := a.res.Valence["least"]; inLex {
		return v
	}
	if i > 1 && (lower[i-2] == "at" || lower[i-2] == "very") {
		return v
	}
	return v * negationScalar
}

// applyBut dampens sentiment before the first "but" and amplifies it after
func applyBut(lower []string, vals []float64) {
	bi := -1
	for i, w := range lower {
		if w == "but" {
			bi = i
			break
		}
	}
	if bi < 0 {
		return
	}
	for i := range vals {
		switch {
		case i < bi:
			vals[i] *= butBefore
		case i > bi:
			vals[i] *= butAfter
		}
	}
}

func (a *Analyzer) score(vals []float64, text string) Result {
	amp := punctuationEmphasis(text)

	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	switch {
	case sum > 0:
		sum += amp
	case sum < 0:
		sum -= amp
	}
	compound := numeric.Clamp(sum/math.Sqrt(sum*sum+normalizeAlpha), -1, 1)

	var pos, neg, neu float64
	for _, v := range vals {
		switch {
		case v > 0:
			pos += v + 1
		case v < 0:
			neg += v - 1
		default:
			neu++
		}
	}
	switch {
	case pos > math.Abs(neg):
		pos += amp
	case pos < math.Abs(neg):
		neg -= amp
	}
	total := pos + math.Abs(neg) + neu

	r := Result{
		Positive: numeric.Round(math.Abs(pos/total), 3),
		Negative: numeric.Round(math.Abs(neg/total), 3),
		Neutral:  numeric.Round(math.Abs(neu/total), 3),
		Compound: numeric.Round(compound, 3),
	}
	r.Label = label(compound)
	r.ConfidenceLevel = level(compound)
	return r
}

func label(compound float64) string {
	switch {
	case compound >= 0.05:
		return Positive
	case compound <= -0.05:
		return Negative
	}
	return Neutral
}

func level(compound float64) string {
	c := math.Abs(compound)
	switch {
	case c >= 0.6:
		return High
	case c >= 0.3:
		return Medium
	}
	return Low
}

func punctuationEmphasis(text string) float64 {
	ex := min(strings.Count(text, "!"), exclaimMax)
	amp := float64(ex) * exclaimStep
	if q := strings.Count(text, "?"); q > 1 {
		if q <= 3 {
			amp += float64(q) * questionStep
		} else {
			amp += questionCeiling
		}
	}
	return amp
}

// splitWords splits on whitespace and strips surrounding punctuation from words
// longer than two characters, so "ok." stays intact while "good!" becomes "good"
func splitWords(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, f := range fields {
		s := strings.TrimFunc(f, unicode.IsPunct)
		if utf8.RuneCountInString(s) > 2 {
			f = s
		}
		out = append(out, f)
	}
	return out
}

// isAllCaps reports whether w has cased letters and all of them are upper case
func isAllCaps(w string) bool {
	cased := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// capDifferential is true when some, but not all, words are in all caps
func capDifferential(words []string) bool {
	caps := 0
	for _, w := range words {
		if isAllCaps(w) {
			caps++
		}
	}
	return caps > 0 && caps < len(words)
}
