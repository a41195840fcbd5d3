// Package phrase counts fixed phrases in text with a single Aho-Corasick pass.
// Matching is plain case-insensitive substring matching; "like" also matches inside "likely"
package phrase

import "strings"

// Matcher is immutable after New and safe for concurrent use
type Matcher struct {
	patterns []string
	lens     []int
	ac       *automaton
}

// New compiles the patterns (lower-cased). Pattern order is preserved in results
func New(patterns []string) *Matcher {
	m := &Matcher{
		patterns: make([]string, len(patterns)),
		lens:     make([]int, len(patterns)),
		ac:       newAutomaton(),
	}
	for i, p := range patterns {
		p = strings.ToLower(p)
		m.patterns[i] = p
		m.lens[i] = len(p)
		m.ac.add([]byte(p), i)
	}
	m.ac.build()
	return m
}

// Patterns returns the compiled patterns in their original order
func (m *Matcher) Patterns() []string { return append([]string(nil), m.patterns...) }

// Count returns, per pattern, the number of non-overlapping occurrences in text,
// scanning left to right the way strings.Count does
func (m *Matcher) Count(text string) []int {
	counts := make([]int, len(m.patterns))
	if text == "" || len(m.patterns) == 0 {
		return counts
	}
	nextFree := make([]int, len(m.patterns))
	m.ac.scan([]byte(strings.ToLower(text)), func(end, id int) {
		start := end - m.lens[id]
		if start < nextFree[id] {
			return
		}
		counts[id]++
		nextFree[id] = end
	})
	return counts
}

// Present reports, per pattern, whether it occurs anywhere in text
func (m *Matcher) Present(text string) []bool {
	out := make([]bool, len(m.patterns))
	for i, c := range m.Count(text) {
		out[i] = c > 0
	}
	return out
}

// PresentCount is the number of distinct patterns that occur in text
func (m *Matcher) PresentCount(text string) int {
	n := 0
	for _, ok := range m.Present(text) {
		if ok {
			n++
		}
	}
	return n
}
