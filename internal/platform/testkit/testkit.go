// Package testkit holds small assertion helpers shared by package tests
package testkit

import (
	"math"
	"strings"
	"sync"
	"testing"
)

// panicked runs fn and returns what it panicked with
func panicked(fn func()) (v any, did bool) {
	defer func() {
		if v = recover(); v != nil {
			did = true
		}
	}()
	fn()
	return nil, false
}

// MustPanic fails the test unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	if _, did := panicked(fn); !did {
		t.Fatal("expected a panic")
	}
}

// MustNotPanic fails the test if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	if v, did := panicked(fn); did {
		t.Fatalf("panicked: %v", v)
	}
}

func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing %q in:\n%s", needle, haystack)
	}
}

// Near compares floats with an absolute tolerance
func Near(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if d := math.Abs(got - want); d > eps {
		t.Fatalf("%s = %v, want %v within %v", name, got, want, eps)
	}
}

// Swap points *target at v until the test ends. Pair it with Serial when other tests read target
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	prev := *target
	t.Cleanup(func() { *target = prev })
	*target = v
}

var serial sync.Mutex

// Serial keeps tests that swap package state from overlapping
func Serial(t *testing.T) {
	t.Helper()
	serial.Lock()
	t.Cleanup(serial.Unlock)
}
