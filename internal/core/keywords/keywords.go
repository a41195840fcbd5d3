// Package keywords extracts frequency-ranked keywords and matches them against a role keyword directory
package keywords

import (
	"sort"
	"strings"
	"unicode/utf8"

	"interviewcoach/internal/core/normalize"
)

// Keyword is a term and its frequency in the source text
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Set is ordered by descending frequency, ties by first occurrence
type Set []Keyword

// Terms returns the keyword terms in rank order
func (s Set) Terms() []string {
	out := make([]string, len(s))
	for i, k := range s {
		out[i] = k.Term
	}
	return out
}

// minTermRunes drops very short tokens
const minTermRunes = 3

// Extractor is safe for concurrent use
type Extractor struct {
	n *normalize.Normalizer
}

// New returns an Extractor over n
func New(n *normalize.Normalizer) *Extractor { return &Extractor{n: n} }

// Extract runs tokenize, punctuation strip, stopword removal and lemmatization,
// then returns the topN most frequent terms of at least three characters
func (e *Extractor) Extract(text string, topN int) Set {
	if topN <= 0 {
		return Set{}
	}
	toks := normalize.StripPunctuation(e.n.Tokenize(text))
	toks = e.n.RemoveStopwords(toks)
	toks = e.n.Lemmatize(toks)

	counts := make(map[string]int, len(toks))
	var order []string
	for _, t := range toks {
		if utf8.RuneCountInString(t) < minTermRunes {
			continue
		}
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	set := make(Set, len(order))
	for i, t := range order {
		set[i] = Keyword{Term: t, Count: counts[t]}
	}
	// order is first-occurrence order, so a stable sort keeps that as the tie-break
	sort.SliceStable(set, func(i, j int) bool { return set[i].Count > set[j].Count })
	if len(set) > topN {
		set = set[:topN]
	}
	return set
}

// Directory maps a job role to its keyword list. Unknown roles yield an empty list
type Directory interface {
	Keywords(role string) []string
}

// Revisioned is implemented by directories that can change at runtime.
// The revision moves whenever any keyword list does
type Revisioned interface {
	Revision() uint64
}

// RevisionOf returns d's revision, 0 for static directories
func RevisionOf(d Directory) uint64 {
	if r, ok := d.(Revisioned); ok {
		return r.Revision()
	}
	return 0
}

// DirectoryFunc adapts a function to Directory
type DirectoryFunc func(role string) []string

// Keywords implements Directory
func (f DirectoryFunc) Keywords(role string) []string { return f(role) }

// Match pairs an extracted term with the role keyword it matched
type Match struct {
	Term        string `json:"term"`
	RoleKeyword string `json:"role_keyword"`
}

// MatchRole matches each term against the role keywords, case-insensitively, when either
// string contains the other. Each term matches at most once; the first role keyword wins
func MatchRole(terms, roleKeywords []string) []Match {
	return match(terms, roleKeywords, func(term, kw string) bool {
		return strings.Contains(term, kw) || strings.Contains(kw, term)
	})
}

// MatchContained is MatchRole restricted to terms contained in a role keyword
func MatchContained(terms, roleKeywords []string) []Match {
	return match(terms, roleKeywords, strings.Contains)
}

// MatchAgainstRole looks the role up in dir and applies MatchRole
func MatchAgainstRole(dir Directory, terms []string, role string) []Match {
	if dir == nil {
		return nil
	}
	return MatchRole(terms, dir.Keywords(role))
}

// RoleKeywords returns the matched role keywords in match order
func RoleKeywords(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.RoleKeyword
	}
	return out
}

func match(terms, roleKeywords []string, hit func(term, kw string) bool) []Match {
	if len(terms) == 0 || len(roleKeywords) == 0 {
		return nil
	}
	lowered := make([]string, len(roleKeywords))
	for i, k := range roleKeywords {
		lowered[i] = strings.ToLower(k)
	}
	var out []Match
	for _, t := range terms {
		lt := strings.ToLower(t)
		if lt == "" {
			continue
		}
		for i, k := range lowered {
			if k != "" && hit(lt, k) {
				out = append(out, Match{Term: t, RoleKeyword: roleKeywords[i]})
				break
			}
		}
	}
	return out
}
