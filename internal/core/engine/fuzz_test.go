package engine

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"interviewcoach/internal/core/lexicon"
)

func fuzzEngine(f *testing.F) *Engine {
	f.Helper()
	res, err := lexicon.Load()
	if err != nil {
		f.Fatal(err)
	}
	return New(WithResources(res))
}

func bounded(t *testing.T, scores map[string]float64) {
	t.Helper()
	for name, v := range scores {
		if math.IsNaN(v) || v < 0 || v > 100 {
			t.Fatalf("%s = %v out of [0,100]", name, v)
		}
	}
}

func encodable(t *testing.T, v any) {
	t.Helper()
	if _, err := json.Marshal(v); err != nil {
		t.Fatalf("result does not encode: %v", err)
	}
}

func FuzzEvaluateFluency(f *testing.F) {
	f.Add("Um, so, I think this is, like, good.", 12.5, 85.0)
	f.Add("", 0.0, -3.0)
	f.Add("one two three four five six seven eight nine ten.", 1e-306, 200.0)
	f.Add("Well...   I   guess.", math.Inf(1), math.NaN())
	e := fuzzEngine(f)

	f.Fuzz(func(t *testing.T, transcript string, dur, pron float64) {
		r, err := e.EvaluateFluency(context.Background(), transcript, &dur, &pron)
		if err != nil {
			t.Fatal(err)
		}
		a := r.Analysis
		if a.WPM < 0 || math.IsInf(a.WPM, 0) || math.IsNaN(a.WPM) {
			t.Fatalf("wpm = %v", a.WPM)
		}
		bounded(t, map[string]float64{
			"fluency":       a.FluencyScore,
			"pronunciation": r.Test.PronunciationScore,
			"grammar":       r.Test.GrammarScore,
			"overall":       r.Test.OverallScore,
		})
		if len(a.Feedback) == 0 {
			t.Fatal("empty feedback")
		}
		encodable(t, r)
	})
}

func FuzzEvaluateInterviewAnswer(f *testing.F) {
	f.Add("What is OOP?", oopAnswer, "Software Engineer")
	f.Add("", "", "")
	f.Add("Why?", "NOT GOOD!!! but... never so bad", "data scientist")
	e := fuzzEngine(f)

	f.Fuzz(func(t *testing.T, question, answer, role string) {
		r, err := e.EvaluateInterviewAnswer(context.Background(), InterviewInput{Question: question, Answer: answer, JobRole: role})
		if err != nil {
			t.Fatal(err)
		}
		bounded(t, map[string]float64{
			"overall":      r.OverallScore,
			"relevance":    r.Relevance.Score,
			"keywords":     r.Relevance.KeywordScore,
			"grammar":      r.Grammar.Score,
			"completeness": r.Completeness.Score,
			"sentiment":    r.SentimentScore,
			"confidence":   r.Confidence.Score,
		})
		if len(r.Feedback) == 0 {
			t.Fatal("empty feedback")
		}
		encodable(t, r)
	})
}

func FuzzAnalyzeResume(f *testing.F) {
	f.Add("Software engineer with five years of experience.", "Software Engineer")
	f.Add("", "")
	e := fuzzEngine(f)

	f.Fuzz(func(t *testing.T, text, role string) {
		r, err := e.AnalyzeResume(context.Background(), text, role)
		if err != nil {
			t.Fatal(err)
		}
		a := r.Analysis
		bounded(t, map[string]float64{
			"overall":   r.OverallScore,
			"grammar":   a.GrammarScore,
			"structure": a.StructureScore,
			"ats":       a.ATSScore,
			"keywords":  a.KeywordScore,
		})
		if len(r.Suggestions) == 0 {
			t.Fatal("empty suggestions")
		}
		encodable(t, r)
	})
}
