// Package normalize provides the text normalizer every evaluation component builds on.
// Pipeline order for word tokens
// 1 Sanitize control characters and repair UTF-8
// 2 Unicode NFKC normalization
// 3 Remove format characters (ZWJ, ZWNJ, BOM)
// 4 Width fold fullwidth forms
// 5 English lower-casing
// 6 Typographic quote folding
// 7 Treebank-style split: punctuation peeled off, clitics split (do n't, it 's)
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/numeric"
)

// Normalizer is safe for concurrent use; it only reads its resources
type Normalizer struct {
	res *lexicon.Resources
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			cases.Lower(language.English),
		)
	},
}

var quoteFold = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'", "\u201b", "'", "\u2032", "'",
	"\u201c", `"`, "\u201d", `"`, "\u201e", `"`,
)

// clitics split from the end of a word, longest first
var clitics = []string{"'ll", "'re", "'ve", "'s", "'d", "'m"}

// New constructs a Normalizer. A nil resource set falls back to lexicon.Fallback
func New(res *lexicon.Resources) *Normalizer {
	if res == nil {
		res = lexicon.Fallback()
	}
	return &Normalizer{res: res}
}

// Resources exposes the resource set the normalizer reads
func (n *Normalizer) Resources() *lexicon.Resources { return n.res }

// Clean returns the lower-cased, Unicode-normalized form of s.
// ok is false when the transform chain failed and a plain lower-casing was used instead
func (n *Normalizer) Clean(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return strings.ToLower(s), false
	}
	return quoteFold.Replace(out), true
}

// Tokenize lower-cases text and splits it into word and punctuation tokens.
// If normalization fails it degrades to whitespace splitting
func (n *Normalizer) Tokenize(text string) []string {
	clean, ok := n.Clean(text)
	if !ok {
		return strings.Fields(clean)
	}
	fields := strings.Fields(clean)
	out := make([]string, 0, len(fields)+len(fields)/4)
	for _, f := range fields {
		out = splitChunk(out, f)
	}
	return out
}

// splitChunk appends the tokens of one whitespace-delimited chunk
func splitChunk(out []string, c string) []string {
	// leading punctuation
	for c != "" {
		r, size := utf8.DecodeRuneInString(c)
		if !isPunct(r) {
			break
		}
		if r == '.' {
			j := strings.IndexFunc(c, func(r rune) bool { return r != '.' })
			if j < 0 {
				j = len(c)
			}
			out = append(out, c[:j])
			c = c[j:]
			continue
		}
		out = append(out, c[:size])
		c = c[size:]
	}
	if c == "" {
		return out
	}

	// trailing punctuation, collected right to left
	var tail []string
	for c != "" {
		r, size := utf8.DecodeLastRuneInString(c)
		if !isPunct(r) {
			break
		}
		if r == '.' {
			j := strings.LastIndexFunc(c, func(r rune) bool { return r != '.' }) + 1
			tail = append(tail, c[j:])
			c = c[:j]
			continue
		}
		tail = append(tail, c[len(c)-size:])
		c = c[:len(c)-size]
	}

	out = append(out, splitClitics(c)...)
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}

func splitClitics(w string) []string {
	switch {
	case w == "can't":
		return []string{"ca", "n't"}
	case w == "won't":
		return []string{"wo", "n't"}
	case len(w) > 3 && strings.HasSuffix(w, "n't"):
		return []string{w[:len(w)-3], "n't"}
	}
	for _, cl := range clitics {
		if len(w) > len(cl) && strings.HasSuffix(w, cl) {
			return []string{w[:len(w)-len(cl)], cl}
		}
	}
	return []string{w}
}

func isPunct(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) }

// IsPunctuation reports whether tok consists only of punctuation or symbol characters
func IsPunctuation(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isPunct(r) {
			return false
		}
	}
	return true
}

// StripPunctuation returns tokens without punctuation-only entries
func StripPunctuation(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsPunctuation(t) {
			out = append(out, t)
		}
	}
	return out
}

// RemoveStopwords returns tokens without stopwords
func (n *Normalizer) RemoveStopwords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !n.res.IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}

// Lemmatize maps each token to its noun lemma
func (n *Normalizer) Lemmatize(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = n.Lemma(t)
	}
	return out
}

// Lemma reduces a lower-cased noun to its singular form.
// Irregular forms and invariant words come from the lexicon; the rest follow suffix rules
func (n *Normalizer) Lemma(w string) string {
	if v, ok := n.res.LemmaExceptions[w]; ok {
		return v
	}
	if _, ok := n.res.LemmaInvariants[w]; ok {
		return w
	}
	if len(w) <= 3 || !isWordy(w) {
		return w
	}
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case hasAnySuffix(w, "sses", "ches", "shes", "xes", "zes"):
		return w[:len(w)-2]
	case hasAnySuffix(w, "ss", "us", "is"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

func isWordy(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasAnySuffix(w string, sufs ...string) bool {
	for _, s := range sufs {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

// Words returns the punctuation-free tokens of text
func (n *Normalizer) Words(text string) []string {
	return StripPunctuation(n.Tokenize(text))
}

// WordCount counts punctuation-free tokens
func (n *Normalizer) WordCount(text string) int {
	return len(n.Words(text))
}

// SentenceCount counts sentences as split by Sentences
func (n *Normalizer) SentenceCount(text string) int {
	return len(n.Sentences(text))
}

// AverageWordLength is the mean rune length of the punctuation-free tokens, rounded to 2 places
func (n *Normalizer) AverageWordLength(text string) float64 {
	words := n.Words(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return numeric.Round(float64(total)/float64(len(words)), 2)
}
