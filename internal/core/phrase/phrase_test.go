package phrase

import (
	"reflect"
	"strings"
	"testing"
)

func TestCount_MatchesStringsCount(t *testing.T) {
	patterns := []string{"um", "uh", "like", "you know", "so", "aa", "i mean"}
	texts := []string{
		"Um, so, I think this is, like, good",
		"you know, I mean, you know what I mean",
		"aaaaa",
		"SO so So sO",
		"likely unlike dislike",
		"",
	}
	m := New(patterns)
	for _, text := range texts {
		got := m.Count(text)
		lower := strings.ToLower(text)
		for i, p := range patterns {
			if want := strings.Count(lower, p); got[i] != want {
				t.Fatalf("Count(%q)[%q] = %d, want %d", text, p, got[i], want)
			}
		}
	}
}

func TestCount_OverlappingPatterns(t *testing.T) {
	m := New([]string{"sort of", "of", "sort"})
	got := m.Count("sort of a sort of thing, of course")
	if want := []int{2, 3, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Count = %v, want %v", got, want)
	}
}

func TestPresent(t *testing.T) {
	m := New([]string{"not sure", "unsure", "don't know"})
	got := m.Present("I'm NOT SURE, really not sure")
	if want := []bool{true, false, false}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Present = %v, want %v", got, want)
	}
	if n := m.PresentCount("unsure and I don't know"); n != 2 {
		t.Fatalf("PresentCount = %d", n)
	}
}

func TestEmptyMatcher(t *testing.T) {
	m := New(nil)
	if got := m.Count("anything"); len(got) != 0 {
		t.Fatalf("empty matcher counted %v", got)
	}
	if len(m.Patterns()) != 0 {
		t.Fatalf("no patterns expected")
	}
}
