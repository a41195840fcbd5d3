// Package lexicon loads the read-only linguistic resources used by the evaluation engine.
// Resources come from the embedded resources.json and roles.json and may be extended by
// an operator overlay file. A loaded *Resources is immutable and safe for concurrent readers
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed resources.json
var embeddedResources []byte

//go:embed roles.json
var embeddedRoles []byte

type rawLemma struct {
	Exceptions map[string]string `json:"exceptions"`
	Invariants []string          `json:"invariants"`
}

type rawSentiment struct {
	Valence   map[string]float64 `json:"valence"`
	Boosters  map[string]float64 `json:"boosters"`
	Negations []string           `json:"negations"`
}

type rawConfidence struct {
	Hesitation  []string `json:"hesitation"`
	Assertive   []string `json:"assertive"`
	Uncertainty []string `json:"uncertainty"`
}

type rawResources struct {
	Version         int           `json:"version"`
	Stopwords       []string      `json:"stopwords"`
	Abbreviations   []string      `json:"abbreviations"`
	Lemma           rawLemma      `json:"lemma"`
	Sentiment       rawSentiment  `json:"sentiment"`
	Fillers         []string      `json:"fillers"`
	Confidence      rawConfidence `json:"confidence"`
	RepeatWhitelist []string      `json:"repeat_whitelist"`
}

// Resources is the compiled, read-only resource set
type Resources struct {
	Version int

	Stopwords     map[string]struct{}
	Abbreviations map[string]struct{}

	// Lemmatizer tables
	LemmaExceptions map[string]string
	LemmaInvariants map[string]struct{}

	// Sentiment lexicon, booster scalars and negation words
	Valence   map[string]float64
	Boosters  map[string]float64
	Negations map[string]struct{}

	// Ordered phrase lexicons; order is reported back to callers
	Fillers     []string
	Hesitation  []string
	Assertive   []string
	Uncertainty []string

	RepeatWhitelist map[string]struct{}

	// Role Keyword Directory defaults
	Roles map[string][]string

	// Degraded is set on the fallback set returned when loading failed
	Degraded bool
}

// Load compiles the embedded resources
func Load() (*Resources, error) {
	var rr rawResources
	if err := json.Unmarshal(embeddedResources, &rr); err != nil {
		return nil, fmt.Errorf("lexicon: parse resources.json: %w", err)
	}
	var roles map[string][]string
	if err := json.Unmarshal(embeddedRoles, &roles); err != nil {
		return nil, fmt.Errorf("lexicon: parse roles.json: %w", err)
	}
	if len(rr.Stopwords) == 0 || len(rr.Sentiment.Valence) == 0 {
		return nil, fmt.Errorf("lexicon: resources.json is missing stopwords or valence table")
	}

	r := &Resources{
		Version:         rr.Version,
		Stopwords:       setOf(rr.Stopwords),
		Abbreviations:   setOf(rr.Abbreviations),
		LemmaExceptions: lowerKeys(rr.Lemma.Exceptions),
		LemmaInvariants: setOf(rr.Lemma.Invariants),
		Valence:         lowerFloatKeys(rr.Sentiment.Valence),
		Boosters:        lowerFloatKeys(rr.Sentiment.Boosters),
		Negations:       setOf(rr.Sentiment.Negations),
		Fillers:         lowerList(rr.Fillers),
		Hesitation:      lowerList(rr.Confidence.Hesitation),
		Assertive:       lowerList(rr.Confidence.Assertive),
		Uncertainty:     lowerList(rr.Confidence.Uncertainty),
		RepeatWhitelist: setOf(rr.RepeatWhitelist),
		Roles:           make(map[string][]string, len(roles)),
	}
	for role, kws := range roles {
		r.Roles[strings.TrimSpace(role)] = lowerList(kws)
	}
	return r, nil
}

var shared = sync.OnceValues(Load)

// Shared returns the process-wide resource set, compiling it on first use.
// Concurrent first callers share a single compilation
func Shared() (*Resources, error) { return shared() }

// Fallback returns a degraded resource set: no stopwords, no sentiment lexicon,
// no abbreviations. Components treat it as "resource unavailable"
func Fallback() *Resources {
	return &Resources{
		Stopwords:       map[string]struct{}{},
		Abbreviations:   map[string]struct{}{},
		LemmaExceptions: map[string]string{},
		LemmaInvariants: map[string]struct{}{},
		Valence:         map[string]float64{},
		Boosters:        map[string]float64{},
		Negations:       map[string]struct{}{},
		RepeatWhitelist: map[string]struct{}{"very": {}, "really": {}},
		Roles:           map[string][]string{},
		Degraded:        true,
	}
}

// IsStopword reports whether the lower-cased token is a stopword
func (r *Resources) IsStopword(tok string) bool {
	_, ok := r.Stopwords[tok]
	return ok
}

// IsAbbreviation reports whether w (without its trailing period) is a known abbreviation
func (r *Resources) IsAbbreviation(w string) bool {
	_, ok := r.Abbreviations[strings.ToLower(strings.TrimSuffix(w, "."))]
	return ok
}

// IsNegation reports whether w is a negation word or a n't contraction
func (r *Resources) IsNegation(w string) bool {
	w = strings.ToLower(w)
	if _, ok := r.Negations[w]; ok {
		return true
	}
	return strings.Contains(w, "n't")
}

// RoleKeywords returns a copy of the keyword list for role, or nil for an unknown role
func (r *Resources) RoleKeywords(role string) []string {
	kws, ok := r.Roles[strings.TrimSpace(role)]
	if !ok {
		return nil
	}
	return append([]string(nil), kws...)
}

// RoleNames returns the known role names in sorted order
func (r *Resources) RoleNames() []string {
	out := make([]string, 0, len(r.Roles))
	for k := range r.Roles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func setOf(xs []string) map[string]struct{} {
	m := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		x = strings.ToLower(strings.TrimSpace(x))
		if x != "" {
			m[x] = struct{}{}
		}
	}
	return m
}

func lowerList(xs []string) []string {
	out := make([]string, 0, len(xs))
	seen := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		x = strings.ToLower(strings.TrimSpace(x))
		if x == "" {
			continue
		}
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = strings.ToLower(v)
	}
	return out
}

func lowerFloatKeys(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
