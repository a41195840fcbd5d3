// Package logger wraps zerolog with the process defaults used by the api and the cli
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"interviewcoach/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures a logger
type Options struct {
	Level     string
	Format    string // console | json
	Service   string
	Component string
	// Writer defaults to stderr; console output is uncoloured when set
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_*. It goes through config/raw since config itself logs
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(env.Get("LEVEL", "info")),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "interviewcoach"),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

// New builds a standalone logger; the process root is left alone
func New(opt Options) Logger {
	out := opt.Writer
	if out == nil {
		out = os.Stderr
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	fields := map[string]any{}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields["go_version"] = bi.GoVersion
	}
	for k, v := range map[string]string{"service": opt.Service, "component": opt.Component} {
		if v != "" {
			fields[k] = v
		}
	}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}

	ctx := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp().Fields(fields)
	if opt.WithCaller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init installs the process root logger. Later calls are no-ops
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, running Init(FromEnv()) if nothing has yet
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func Nop() Logger { return zerolog.Nop() }

// parseLevel accepts zerolog names plus warning and off; anything else is info
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

type boundKey struct{}

// bind returns ctx carrying C(ctx) plus key=val
func bind(ctx context.Context, key, val string) context.Context {
	if val == "" {
		return ctx
	}
	l := C(ctx).With().Str(key, val).Logger()
	return context.WithValue(ctx, boundKey{}, &l)
}

// WithRequest binds the request id for C
func WithRequest(ctx context.Context, reqID string) context.Context {
	return bind(ctx, "request_id", reqID)
}

// WithKind binds the evaluation kind (interview, fluency, resume) for C
func WithKind(ctx context.Context, kind string) context.Context { return bind(ctx, "kind", kind) }

// C is the logger bound to ctx, or the root logger
func C(ctx context.Context) *Logger {
	if l, ok := ctx.Value(boundKey{}).(*Logger); ok {
		return l
	}
	return Get()
}

// Named returns a child of the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
