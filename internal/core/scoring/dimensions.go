package scoring

import "interviewcoach/internal/core/numeric"

// maxMatchedKeywords caps the matched keyword list reported for relevance
const maxMatchedKeywords = 5

// Relevance is the interview relevance dimension
type Relevance struct {
	Score               float64  `json:"score"`
	SimilarityScore     float64  `json:"similarity_score"`
	KeywordScore        float64  `json:"keyword_score"`
	MatchedKeywords     []string `json:"matched_keywords"`
	TotalKeywordMatches int      `json:"total_keyword_matches"`
}

// Grammar is the interview grammar dimension
type Grammar struct {
	Score         float64  `json:"score"`
	Errors        []string `json:"errors"`
	ErrorCount    int      `json:"error_count"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

// Completeness is the interview completeness dimension
type Completeness struct {
	Score         float64 `json:"score"`
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	IsAdequate    bool    `json:"is_adequate"`
}

// KeywordScore is the share of extracted keywords that matched, as 0..100
func KeywordScore(matched, extracted int) float64 {
	return min(100, float64(matched)/float64(max(extracted, 1))*100)
}

// RelevanceOf blends question/answer similarity (0..1) with role keyword coverage:
// 60% similarity, 40% keyword score
func RelevanceOf(similarity float64, extracted int, matched []string) Relevance {
	kw := KeywordScore(len(matched), extracted)
	shown := matched
	if len(shown) > maxMatchedKeywords {
		shown = shown[:maxMatchedKeywords]
	}
	return Relevance{
		Score:               numeric.Score(similarity*100*0.6 + kw*0.4),
		SimilarityScore:     numeric.Round(similarity*100, 2),
		KeywordScore:        numeric.Round(kw, 2),
		MatchedKeywords:     append([]string{}, shown...),
		TotalKeywordMatches: len(matched),
	}
}

// InterviewGrammar starts at 100, takes 5 per issue, 20 more for fewer than 10 words
// and 30 more when no sentence was found
func InterviewGrammar(errors []string, words, sentences int) Grammar {
	s := max(0, 100-5*float64(len(errors)))
	if words < 10 {
		s -= 20
	}
	if sentences == 0 {
		s -= 30
	}
	return Grammar{
		Score:         numeric.Score(s),
		Errors:        append([]string{}, errors...),
		ErrorCount:    len(errors),
		WordCount:     words,
		SentenceCount: sentences,
	}
}

// CompletenessOf scores answer length and structure from a base of 50
func CompletenessOf(words, sentences int) Completeness {
	s := 50.0
	switch {
	case words >= 50:
		s += 30
	case words >= 30:
		s += 20
	case words >= 15:
		s += 10
	default:
		s -= 20
	}
	switch {
	case sentences >= 3:
		s += 20
	case sentences >= 2:
		s += 10
	}
	return Completeness{
		Score:         numeric.Score(s),
		WordCount:     words,
		SentenceCount: sentences,
		IsAdequate:    words >= 20 && sentences >= 2,
	}
}

// Structure is the tiered resume structure score
func Structure(words, sentences int) float64 {
	switch {
	case words >= 200 && sentences >= 10:
		return 90
	case words >= 150:
		return 75
	case words >= 100:
		return 60
	}
	return 40
}

// ATS is the applicant-tracking compatibility proxy: 80, less 20 with fewer than 5 keywords
func ATS(keywordCount int) float64 {
	if keywordCount < 5 {
		return 60
	}
	return 80
}

// ResumeGrammar is 100 less 5 per issue, floored at 0
func ResumeGrammar(errors int) float64 {
	return numeric.Score(100 - 5*float64(errors))
}

// FluencyTestGrammar is the grammar sub-score of a fluency test record
func FluencyTestGrammar(errors int) float64 {
	return numeric.Score(100 - 5*float64(errors))
}

// SessionAverage is the mean overall score of a session, 0 when empty
func SessionAverage(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return numeric.Round(sum/float64(len(scores)), 2)
}
