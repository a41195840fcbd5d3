// Package strings holds the few string and slice helpers the platform shares
package strings

import (
	std "strings"
	"unicode/utf8"
)

// IfEmpty is in, or def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustPrefix turns " /roles/ " into "/roles". A prefix that trims to "/" panics
func MustPrefix(s string) string {
	p := std.Trim(std.TrimSpace(s), "/ ")
	if p == "" {
		panic("strings: mount prefix must not be the root")
	}
	return "/" + p
}

// Preview keeps the first n runes of s and marks a cut with "..."
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
