package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"interviewcoach/internal/core/fluency"
	"interviewcoach/internal/core/keywords"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/testkit"
)

const oopAnswer = "Object oriented programming organizes software around objects. " +
	"Each class bundles data with the methods that operate on it. " +
	"Inheritance lets one class reuse the behavior of another class. " +
	"Polymorphism allows different objects to respond to the same message in their own way. " +
	"Encapsulation hides internal state behind a clear interface. " +
	"Together these ideas make large codebases easier to extend and test."

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	res, err := lexicon.Load()
	if err != nil {
		t.Fatal(err)
	}
	return New(append([]Option{WithResources(res)}, opts...)...)
}

func inRange(t *testing.T, name string, v float64) {
	t.Helper()
	if v < 0 || v > 100 {
		t.Fatalf("%s = %v out of [0,100]", name, v)
	}
}

func TestEvaluateInterviewAnswer_OOP(t *testing.T) {
	e := newEngine(t)
	r, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{
		Question:   "What is OOP?",
		Answer:     oopAnswer,
		JobRole:    "Software Engineer",
		SkillLevel: "Beginner",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Completeness.Score < 90 || !r.Completeness.IsAdequate {
		t.Fatalf("completeness = %+v", r.Completeness)
	}
	if r.Relevance.KeywordScore <= 0 || r.Relevance.TotalKeywordMatches < 2 {
		t.Fatalf("relevance = %+v", r.Relevance)
	}
	if len(r.Relevance.MatchedKeywords) > 5 {
		t.Fatalf("matched keywords not capped: %v", r.Relevance.MatchedKeywords)
	}
	if r.Grammar.ErrorCount != 0 || r.Grammar.Score != 100 {
		t.Fatalf("grammar = %+v", r.Grammar)
	}
	for name, v := range map[string]float64{
		"overall":   r.OverallScore,
		"relevance": r.Relevance.Score,
		"sentiment": r.SentimentScore,
	} {
		inRange(t, name, v)
	}
	if !strings.HasSuffix(r.AnswerPreview, "...") || len([]rune(r.AnswerPreview)) != 103 {
		t.Fatalf("preview = %q", r.AnswerPreview)
	}
	if r.SkillLevel != "Beginner" || r.JobRole != "Software Engineer" || r.Question != "What is OOP?" {
		t.Fatalf("echoed fields = %q %q %q", r.SkillLevel, r.JobRole, r.Question)
	}
	if len(r.Feedback) == 0 {
		t.Fatal("empty feedback")
	}
}

func TestEvaluateInterviewAnswer_Empty(t *testing.T) {
	e := newEngine(t)
	r, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{Question: "Why?"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Grammar.WordCount != 0 || r.Completeness.WordCount != 0 {
		t.Fatalf("word counts = %d %d", r.Grammar.WordCount, r.Completeness.WordCount)
	}
	if r.Relevance.Score != 0 || r.Relevance.MatchedKeywords == nil {
		t.Fatalf("relevance = %+v", r.Relevance)
	}
	if r.Grammar.Score != 50 {
		t.Fatalf("grammar = %v", r.Grammar.Score)
	}
	if r.JobRole != DefaultJobRole || r.AnswerPreview != "" {
		t.Fatalf("role %q preview %q", r.JobRole, r.AnswerPreview)
	}
	if len(r.Feedback) == 0 {
		t.Fatal("empty feedback")
	}
	inRange(t, "overall", r.OverallScore)
}

func TestAnalyzeSpeechFluency(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	a, err := e.AnalyzeSpeechFluency(ctx, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.WordCount != 0 || len(a.Feedback) == 0 {
		t.Fatalf("empty transcript = %+v", a)
	}

	zero := 0.0
	a, err = e.AnalyzeSpeechFluency(ctx, "Um, so, I think this is, like, good.", &zero)
	if err != nil {
		t.Fatal(err)
	}
	if a.WPM != 0 || a.FillerWords.TotalCount < 3 {
		t.Fatalf("wpm %v fillers %d", a.WPM, a.FillerWords.TotalCount)
	}
	inRange(t, "fluency", a.FluencyScore)
}

func TestFluencyTest(t *testing.T) {
	e := newEngine(t)
	rec := e.FluencyTest(fluency.Analysis{FluencyScore: 100}, nil)
	if rec.PronunciationScore != DefaultPronunciation || rec.GrammarScore != 100 || rec.OverallScore != 95.5 {
		t.Fatalf("record = %+v", rec)
	}

	p := 140.0
	rec = e.FluencyTest(fluency.Analysis{FluencyScore: 50, GrammarErrors: []string{"a", "b"}}, &p)
	// 50*.35 + 100*.30 + 90*.35
	if rec.PronunciationScore != 100 || rec.OverallScore != 79 {
		t.Fatalf("record = %+v", rec)
	}

	res, err := e.EvaluateFluency(context.Background(), "Hello there.", nil, nil)
	if err != nil || res.Test.FluencyScore != res.Analysis.FluencyScore {
		t.Fatalf("EvaluateFluency = %+v, %v", res, err)
	}
}

func TestAnalyzeResume(t *testing.T) {
	e := newEngine(t)
	text := "Software engineer with five years of experience. Built database services and API gateways. " +
		"Led testing and code review for the platform team."
	r, err := e.AnalyzeResume(context.Background(), text, "")
	if err != nil {
		t.Fatal(err)
	}
	if r.JobRole != DefaultJobRole {
		t.Fatalf("role = %q", r.JobRole)
	}
	a := r.Analysis
	if a.StructureScore != 40 || a.GrammarScore != 100 || a.ATSScore != 80 {
		t.Fatalf("analysis = %+v", a)
	}
	if a.MatchedKeywords == 0 || a.KeywordScore <= 0 {
		t.Fatalf("keywords = %v matched %d", a.KeywordsFound, a.MatchedKeywords)
	}
	n := len(r.Suggestions)
	if n < 2 || !strings.HasPrefix(r.Suggestions[n-1], "Quantify") {
		t.Fatalf("suggestions = %q", r.Suggestions)
	}
	inRange(t, "overall", r.OverallScore)

	empty, err := e.AnalyzeResume(context.Background(), "", "Data Scientist")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Analysis.WordCount != 0 || empty.Analysis.ATSScore != 60 || empty.Analysis.KeywordsFound == nil {
		t.Fatalf("empty = %+v", empty.Analysis)
	}
}

func TestSummarize(t *testing.T) {
	e := newEngine(t)
	s := e.Summarize([]InterviewResult{{OverallScore: 80}, {OverallScore: 60}})
	if s.Answers != 2 || s.OverallScore != 70 {
		t.Fatalf("summary = %+v", s)
	}
	if s := e.Summarize(nil); s.OverallScore != 0 || s.Answers != 0 {
		t.Fatalf("empty summary = %+v", s)
	}
}

func TestDirectoryOverride(t *testing.T) {
	dir := keywords.DirectoryFunc(func(role string) []string {
		if role == "Gardener" {
			return []string{"soil", "compost"}
		}
		return nil
	})
	e := newEngine(t, WithDirectory(dir), WithDefaultRole("Gardener"))
	r, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{
		Question: "How do you improve soil?",
		Answer:   "I add compost to the soil every spring and turn the compost pile weekly.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.JobRole != "Gardener" || r.Relevance.TotalKeywordMatches != 2 {
		t.Fatalf("role %q relevance %+v", r.JobRole, r.Relevance)
	}
}

func TestPanicBecomesEvaluationFailed(t *testing.T) {
	boom := keywords.DirectoryFunc(func(string) []string { panic("directory exploded") })
	e := newEngine(t, WithDirectory(boom))

	var err error
	testkit.MustNotPanic(t, func() {
		_, err = e.EvaluateInterviewAnswer(context.Background(), InterviewInput{Answer: "Some answer here."})
	})
	if !errors.Is(err, ErrEvaluationFailed) {
		t.Fatalf("err = %v", err)
	}
	testkit.MustContain(t, err.Error(), "directory exploded")
}

func TestDegradedResources(t *testing.T) {
	e := New(WithResources(lexicon.Fallback()))
	r, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{
		Question: "Tell me about yourself.",
		Answer:   "I am great at this. I really love it.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Confidence.Indicators.Sentiment != "neutral" {
		t.Fatalf("sentiment label = %q", r.Confidence.Indicators.Sentiment)
	}
	if len(r.Feedback) == 0 {
		t.Fatal("empty feedback")
	}
}

func TestConcurrentUse(t *testing.T) {
	e := newEngine(t)
	want, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{Question: "What is OOP?", Answer: oopAnswer})
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{Question: "What is OOP?", Answer: oopAnswer})
			if err != nil || got.OverallScore != want.OverallScore {
				t.Errorf("concurrent result %v, %v", got.OverallScore, err)
			}
		}()
	}
	wg.Wait()
}
