// Package grammar flags a fixed set of surface-level writing issues.
// Rules run in order: spacing, leading capital, terminal punctuation, repeated words
package grammar

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"interviewcoach/internal/core/lexicon"
)

// Issue messages
const (
	MsgMultipleSpaces = "Multiple consecutive spaces found"
	MsgCapitalStart   = "Sentence should start with a capital letter"
	MsgTerminalPunct  = "Sentence should end with proper punctuation"
	msgRepeatedFmt    = "Repeated word: '%s'"
)

// Report lists issues in rule order. Count always equals len(Issues)
type Report struct {
	Issues []string `json:"issues"`
	Count  int      `json:"count"`
}

// Checker is safe for concurrent use
type Checker struct {
	allowRepeat map[string]struct{}
}

// New builds a Checker using the repeat whitelist from res
func New(res *lexicon.Resources) *Checker {
	if res == nil {
		res = lexicon.Fallback()
	}
	return &Checker{allowRepeat: res.RepeatWhitelist}
}

// Check evaluates text against every rule. Empty text has no issues
func (c *Checker) Check(text string) Report {
	issues := []string{}
	if text == "" {
		return Report{Issues: issues}
	}
	if strings.Contains(text, "  ") {
		issues = append(issues, MsgMultipleSpaces)
	}
	if first, _ := utf8.DecodeRuneInString(text); !unicode.IsUpper(first) {
		issues = append(issues, MsgCapitalStart)
	}
	if last, _ := utf8.DecodeLastRuneInString(text); last != '.' && last != '!' && last != '?' {
		issues = append(issues, MsgTerminalPunct)
	}
	words := strings.Fields(strings.ToLower(text))
	for i := 0; i+1 < len(words); i++ {
		if words[i] != words[i+1] {
			continue
		}
		if _, ok := c.allowRepeat[words[i]]; ok {
			continue
		}
		issues = append(issues, fmt.Sprintf(msgRepeatedFmt, words[i]))
	}
	return Report{Issues: issues, Count: len(issues)}
}
