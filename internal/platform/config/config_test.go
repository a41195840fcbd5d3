package config

import (
	"testing"
	"time"

	kit "interviewcoach/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	core := New().Prefix("CORE_")
	if got := core.key("EVAL_WORKERS"); got != "CORE_EVAL_WORKERS" {
		t.Fatalf("key() = %q, want %q", got, "CORE_EVAL_WORKERS")
	}
	if got := core.Prefix("EVAL_").key("PERSIST"); got != "CORE_EVAL_PERSIST" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMayHelpers(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_INT", "12")
	t.Setenv("M_BADINT", "twelve")
	t.Setenv("M_B", "true")
	t.Setenv("M_BADB", "maybe")
	t.Setenv("M_TTL", "90s")
	t.Setenv("M_CSV", " a, ,b ,")
	t.Setenv("M_EMPTYCSV", " , ")

	if got := c.MayString("NOPE", "def"); got != "def" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayInt("INT", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("BADINT", 4); got != 4 {
		t.Fatalf("MayInt bad = %d, want 4", got)
	}
	t.Setenv("M_BADTTL", "soon")
	if got := c.MayDuration("BADTTL", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
	if !c.MayBool("B", false) || c.MayBool("BADB", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("TTL", time.Second); got != 90*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayCSV("CSV", nil); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("EMPTYCSV", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV blank = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("SOURCE", "embedded", "embedded", "pg"); got != "embedded" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("E_SOURCE", "PG")
	if got := c.MayEnum("SOURCE", "embedded", "embedded", "pg"); got != "pg" {
		t.Fatalf("got %q, want pg", got)
	}
	t.Setenv("E_SOURCE", "mysql")
	kit.MustPanic(t, func() { _ = c.MayEnum("SOURCE", "embedded", "embedded", "pg") })
}
