// Package engine wires the feature extractors into the interview, fluency and resume evaluators.
// Every entry point returns a complete result for any text, including the empty string.
// The only error is ErrEvaluationFailed, raised when an extractor panics
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"interviewcoach/internal/core/feedback"
	"interviewcoach/internal/core/fluency"
	"interviewcoach/internal/core/grammar"
	"interviewcoach/internal/core/keywords"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/core/normalize"
	"interviewcoach/internal/core/numeric"
	"interviewcoach/internal/core/scoring"
	"interviewcoach/internal/core/sentiment"
	"interviewcoach/internal/core/similarity"
	"interviewcoach/internal/platform/logger"
	pstrings "interviewcoach/internal/platform/strings"
)

// ErrEvaluationFailed wraps any unexpected failure inside an evaluator
var ErrEvaluationFailed = errors.New("engine: evaluation failed")

const (
	interviewKeywords = 10
	resumeKeywords    = 15
	previewRunes      = 100
)

// Engine is immutable after New and safe for concurrent use
type Engine struct {
	log         logger.Logger
	res         *lexicon.Resources
	norm        *normalize.Normalizer
	kw          *keywords.Extractor
	gram        *grammar.Checker
	sent        *sentiment.Analyzer
	flu         *fluency.Calculator
	dir         keywords.Directory
	defaultRole string
}

// New builds an Engine. Without WithResources it uses lexicon.Shared and falls back to
// lexicon.Fallback, with a warning, when the embedded resources cannot be loaded
func New(opts ...Option) *Engine {
	cfg := config{log: logger.Nop(), defaultRole: DefaultJobRole}
	for _, o := range opts {
		o(&cfg)
	}

	res := cfg.res
	if res == nil {
		var err error
		if res, err = lexicon.Shared(); err != nil {
			cfg.log.Warn().Err(err).Msg("linguistic resources unavailable, using fallbacks")
			res = lexicon.Fallback()
		}
	}
	if res.Degraded {
		cfg.log.Warn().Msg("engine running on degraded resources: neutral sentiment, naive sentence split")
	}

	dir := cfg.dir
	if dir == nil {
		dir = keywords.DirectoryFunc(res.RoleKeywords)
	}

	n := normalize.New(res)
	g := grammar.New(res)
	return &Engine{
		log:         cfg.log,
		res:         res,
		norm:        n,
		kw:          keywords.New(n),
		gram:        g,
		sent:        sentiment.New(res),
		flu:         fluency.New(n, g),
		dir:         dir,
		defaultRole: cfg.defaultRole,
	}
}

// Resources returns the resource set the engine runs on
func (e *Engine) Resources() *lexicon.Resources { return e.res }

// Directory returns the role keyword directory
func (e *Engine) Directory() keywords.Directory { return e.dir }

// DirectoryRevision is the directory's current revision, 0 when it is static
func (e *Engine) DirectoryRevision() uint64 { return keywords.RevisionOf(e.dir) }

// EvaluateInterviewAnswer scores an answer on relevance, grammar, completeness and sentiment
func (e *Engine) EvaluateInterviewAnswer(ctx context.Context, in InterviewInput) (out InterviewResult, err error) {
	defer e.recoverInto(ctx, KindInterview, &err)

	role := e.role(in.JobRole)
	answer := in.Answer

	terms := e.kw.Extract(answer, interviewKeywords).Terms()
	matched := keywords.RoleKeywords(keywords.MatchRole(terms, e.dir.Keywords(role)))
	rel := scoring.RelevanceOf(similarity.Cosine(in.Question, answer), len(terms), matched)

	words := e.norm.WordCount(answer)
	sentences := e.norm.SentenceCount(answer)
	gram := scoring.InterviewGrammar(e.gram.Check(answer).Issues, words, sentences)
	comp := scoring.CompletenessOf(words, sentences)

	conf := e.sent.Confidence(answer)
	sent := e.sent.Combined(answer)

	overall := scoring.Interview.Overall(rel.Score, gram.Score, comp.Score, sent)
	return InterviewResult{
		OverallScore:   overall,
		Relevance:      rel,
		Grammar:        gram,
		Completeness:   comp,
		SentimentScore: sent,
		Confidence:     conf,
		Feedback: feedback.ForInterview(feedback.Interview{
			Overall:      overall,
			Relevance:    rel,
			Grammar:      gram,
			Completeness: comp,
			Sentiment:    sent,
		}),
		Question:      in.Question,
		AnswerPreview: pstrings.Preview(answer, previewRunes),
		JobRole:       role,
		SkillLevel:    in.SkillLevel,
	}, nil
}

// AnalyzeSpeechFluency measures pacing, fillers, pauses and grammar of a transcript.
// A nil duration is synthesized at fluency.AssumedWPM
func (e *Engine) AnalyzeSpeechFluency(ctx context.Context, transcript string, durationSeconds *float64) (out fluency.Analysis, err error) {
	defer e.recoverInto(ctx, KindFluency, &err)
	return e.flu.Analyze(transcript, durationSeconds), nil
}

// FluencyTest turns an analysis into a weighted test record.
// A nil pronunciation score uses DefaultPronunciation
func (e *Engine) FluencyTest(a fluency.Analysis, pronunciation *float64) FluencyTestResult {
	p := DefaultPronunciation
	if pronunciation != nil {
		p = numeric.Score(*pronunciation)
	}
	g := scoring.FluencyTestGrammar(len(a.GrammarErrors))
	return FluencyTestResult{
		FluencyScore:       a.FluencyScore,
		PronunciationScore: p,
		GrammarScore:       g,
		OverallScore:       scoring.FluencyTest.Overall(a.FluencyScore, p, g),
	}
}

// EvaluateFluency runs AnalyzeSpeechFluency and FluencyTest together
func (e *Engine) EvaluateFluency(ctx context.Context, transcript string, durationSeconds, pronunciation *float64) (FluencyResult, error) {
	a, err := e.AnalyzeSpeechFluency(ctx, transcript, durationSeconds)
	if err != nil {
		return FluencyResult{}, err
	}
	return FluencyResult{Analysis: a, Test: e.FluencyTest(a, pronunciation)}, nil
}

// AnalyzeResume scores resume text on grammar, structure, ATS compatibility and role keywords
func (e *Engine) AnalyzeResume(ctx context.Context, text, jobRole string) (out ResumeResult, err error) {
	defer e.recoverInto(ctx, KindResume, &err)

	role := e.role(jobRole)
	words := e.norm.WordCount(text)
	sentences := e.norm.SentenceCount(text)
	terms := e.kw.Extract(text, resumeKeywords).Terms()
	issues := e.gram.Check(text).Issues
	matched := len(keywords.MatchContained(terms, e.dir.Keywords(role)))

	a := ResumeAnalysis{
		GrammarScore:    scoring.ResumeGrammar(len(issues)),
		StructureScore:  scoring.Structure(words, sentences),
		ATSScore:        scoring.ATS(len(terms)),
		KeywordScore:    numeric.Round(scoring.KeywordScore(matched, len(terms)), 2),
		WordCount:       words,
		SentenceCount:   sentences,
		KeywordsFound:   terms,
		MatchedKeywords: matched,
		GrammarErrors:   issues,
	}
	return ResumeResult{
		OverallScore: scoring.Resume.Overall(a.GrammarScore, a.StructureScore, a.ATSScore, a.KeywordScore),
		JobRole:      role,
		Analysis:     a,
		Suggestions: feedback.ForResume(feedback.Resume{
			JobRole:         role,
			GrammarScore:    a.GrammarScore,
			StructureScore:  a.StructureScore,
			ATSScore:        a.ATSScore,
			KeywordScore:    a.KeywordScore,
			WordCount:       a.WordCount,
			MatchedKeywords: a.MatchedKeywords,
		}),
	}, nil
}

// Summarize averages the overall scores of a session's answers
func (e *Engine) Summarize(results []InterviewResult) SessionSummary {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.OverallScore
	}
	return SessionSummary{Answers: len(results), OverallScore: scoring.SessionAverage(scores)}
}

func (e *Engine) role(r string) string {
	if r = strings.TrimSpace(r); r != "" {
		return r
	}
	return e.defaultRole
}

// recoverInto converts a panic in an evaluator into ErrEvaluationFailed
func (e *Engine) recoverInto(ctx context.Context, kind string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	e.log.Error().
		Ctx(ctx).
		Str("kind", kind).
		Interface("panic", r).
		Bytes("stack", debug.Stack()).
		Msg("evaluation panicked")
	*err = fmt.Errorf("%w: %s: %v", ErrEvaluationFailed, kind, r)
}
