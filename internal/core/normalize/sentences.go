package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const closers = `"')]}`

// Sentences splits text into trimmed sentences.
// A run of . ! ? ends a sentence when followed by whitespace or the end of text, except
// a single period after a known abbreviation or an initial, and an ellipsis followed by a
// lower-case word. Without an abbreviation table it degrades to splitting on periods
func (n *Normalizer) Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(n.res.Abbreviations) == 0 {
		return splitOnPeriods(text)
	}

	var out []string
	start := 0
	for i := 0; i < len(text); {
		if !isTerminator(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isTerminator(text[j]) {
			j++
		}
		for j < len(text) && strings.IndexByte(closers, text[j]) >= 0 {
			j++
		}
		if j < len(text) {
			if r, _ := utf8.DecodeRuneInString(text[j:]); !unicode.IsSpace(r) {
				i = j
				continue
			}
		}
		if n.isBoundary(text, start, i, j) {
			if s := strings.TrimSpace(text[start:j]); s != "" {
				out = append(out, s)
			}
			start = j
		}
		i = j
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// isBoundary decides whether the terminator run text[i:j] closes the sentence begun at start
func (n *Normalizer) isBoundary(text string, start, i, j int) bool {
	term := strings.TrimRight(text[i:j], closers)
	if strings.ContainsAny(term, "!?") {
		return true
	}
	if len(term) > 1 {
		next := strings.TrimLeftFunc(text[j:], unicode.IsSpace)
		r, _ := utf8.DecodeRuneInString(next)
		return next == "" || !unicode.IsLower(r)
	}

	prev := text[start:i]
	if k := strings.LastIndexFunc(prev, unicode.IsSpace); k >= 0 {
		prev = prev[k+1:]
	}
	prev = strings.TrimLeftFunc(prev, isPunct)
	if n.res.IsAbbreviation(prev) {
		return false
	}
	if utf8.RuneCountInString(prev) == 1 {
		r, _ := utf8.DecodeRuneInString(prev)
		return r == 'I' || !unicode.IsUpper(r)
	}
	return true
}

func isTerminator(b byte) bool { return b == '.' || b == '!' || b == '?' }

func splitOnPeriods(text string) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
