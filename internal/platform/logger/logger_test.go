package logger

import (
	"bytes"
	"context"
	"testing"

	kit "interviewcoach/internal/platform/testkit"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace":   "trace",
		"DEBUG":   "debug",
		"warning": "warn",
		"error":   "error",
		"off":     "disabled",
		"":        "info",
		" junk ":  "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNew_WritesStaticFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "coach",
		Component:    "engine",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})
	l.Info().Str("k", "v").Msg("hello")

	out := buf.String()
	kit.MustContain(t, out, `"service":"coach"`)
	kit.MustContain(t, out, `"component":"engine"`)
	kit.MustContain(t, out, `"build":"test"`)
	kit.MustContain(t, out, `"message":"hello"`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "json", Writer: &buf})
	l.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn, got %q", buf.String())
	}
	l.Warn().Msg("loud")
	kit.MustContain(t, buf.String(), "loud")
}

func TestC_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Writer: &buf})

	ctx := WithKind(WithRequest(context.Background(), "req-1"), "fluency")
	l := C(ctx).Output(&buf)
	l.Info().Msg("scored")

	kit.MustContain(t, buf.String(), `"request_id":"req-1"`)
	kit.MustContain(t, buf.String(), `"kind":"fluency"`)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "3")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" {
		t.Fatalf("level/format = %q/%q", opt.Level, opt.Format)
	}
	if !opt.WithCaller || opt.SampleEvery != 3 {
		t.Fatalf("caller/sample = %v/%d", opt.WithCaller, opt.SampleEvery)
	}
	if opt.Service != "interviewcoach" {
		t.Fatalf("default service = %q", opt.Service)
	}
}
