// Package similarity scores topical overlap between two texts with TF-IDF cosine similarity.
// The vector space is built from exactly the two input documents
package similarity

import (
	"math"
	"regexp"
	"strings"

	"interviewcoach/internal/core/numeric"
)

// terms are runs of two or more letters, digits or underscores
var termRE = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Terms returns the lower-cased index terms of s
func Terms(s string) []string {
	return termRE.FindAllString(strings.ToLower(s), -1)
}

// Cosine returns the cosine similarity of a and b in [0,1], rounded to 4 places.
// Empty vocabulary or a zero vector yields 0
func Cosine(a, b string) float64 {
	ta, tb := Terms(a), Terms(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	ca, cb := tf(ta), tf(tb)

	// smooth idf over n=2 documents: ln((1+n)/(1+df)) + 1
	idf := func(t string) float64 {
		df := 0
		if ca[t] > 0 {
			df++
		}
		if cb[t] > 0 {
			df++
		}
		return math.Log(3/float64(1+df)) + 1
	}

	wa := weigh(ca, idf)
	wb := weigh(cb, idf)
	na, nb := norm(wa), norm(wb)
	if na == 0 || nb == 0 {
		return 0
	}

	dot := 0.0
	for t, w := range wa {
		dot += w * wb[t]
	}
	return numeric.Round(numeric.Clamp(dot/(na*nb), 0, 1), 4)
}

func tf(terms []string) map[string]float64 {
	m := make(map[string]float64, len(terms))
	for _, t := range terms {
		m[t]++
	}
	return m
}

func weigh(counts map[string]float64, idf func(string) float64) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for t, c := range counts {
		out[t] = c * idf(t)
	}
	return out
}

func norm(v map[string]float64) float64 {
	s := 0.0
	for _, w := range v {
		s += w * w
	}
	return math.Sqrt(s)
}
