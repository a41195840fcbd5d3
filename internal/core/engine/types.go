package engine

import (
	"interviewcoach/internal/core/fluency"
	"interviewcoach/internal/core/scoring"
	"interviewcoach/internal/core/sentiment"
)

// Evaluation kinds, also used as log and cache labels
const (
	KindInterview = "interview"
	KindFluency   = "fluency"
	KindResume    = "resume"
)

// DefaultPronunciation stands in for the pronunciation sub-score until audio is analyzed
const DefaultPronunciation = 85.0

// DefaultJobRole is used when a resume or interview arrives without a role
const DefaultJobRole = "Software Engineer"

// InterviewInput is one interview question and the candidate's answer
type InterviewInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	JobRole    string `json:"job_role"`
	SkillLevel string `json:"skill_level"`
}

// InterviewResult is the scored interview answer
type InterviewResult struct {
	OverallScore   float64              `json:"overall_score"`
	Relevance      scoring.Relevance    `json:"relevance"`
	Grammar        scoring.Grammar      `json:"grammar"`
	Completeness   scoring.Completeness `json:"completeness"`
	SentimentScore float64              `json:"sentiment_score"`
	Confidence     sentiment.Confidence `json:"confidence"`
	Feedback       []string             `json:"feedback"`
	Question       string               `json:"question"`
	AnswerPreview  string               `json:"answer_preview"`
	JobRole        string               `json:"job_role"`
	SkillLevel     string               `json:"skill_level,omitempty"`
}

// FluencyTestResult is the weighted fluency test record
type FluencyTestResult struct {
	FluencyScore       float64 `json:"fluency_score"`
	PronunciationScore float64 `json:"pronunciation_score"`
	GrammarScore       float64 `json:"grammar_score"`
	OverallScore       float64 `json:"overall_score"`
}

// FluencyResult pairs the transcript analysis with its test record
type FluencyResult struct {
	Analysis fluency.Analysis  `json:"analysis"`
	Test     FluencyTestResult `json:"test"`
}

// ResumeAnalysis holds the resume dimension scores and the evidence behind them
type ResumeAnalysis struct {
	GrammarScore    float64  `json:"grammar_score"`
	StructureScore  float64  `json:"structure_score"`
	ATSScore        float64  `json:"ats_score"`
	KeywordScore    float64  `json:"keyword_score"`
	WordCount       int      `json:"word_count"`
	SentenceCount   int      `json:"sentence_count"`
	KeywordsFound   []string `json:"keywords_found"`
	MatchedKeywords int      `json:"matched_keywords"`
	GrammarErrors   []string `json:"grammar_errors"`
}

// ResumeResult is the scored resume with suggestions
type ResumeResult struct {
	OverallScore float64        `json:"overall_score"`
	JobRole      string         `json:"job_role"`
	Analysis     ResumeAnalysis `json:"analysis"`
	Suggestions  []string       `json:"suggestions"`
}

// SessionSummary aggregates the answers of one interview session
type SessionSummary struct {
	Answers      int     `json:"answers"`
	OverallScore float64 `json:"overall_score"`
}
