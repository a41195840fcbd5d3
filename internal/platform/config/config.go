// Package config reads typed settings from the environment.
// Missing values take the caller's default; malformed ones log a warning and take it too
package config

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"interviewcoach/internal/platform/logger"
)

// Conf is a namespaced view over environment variables such as "CORE_" or "PG_"
type Conf struct{ prefix string }

// New returns the unprefixed root
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) raw(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// parsed reads key through parse, falling back to def when the key is blank or unparseable
func parsed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().
			Str("key", c.key(key)).
			Str("value", s).
			Interface("default", def).
			Msg("unparseable env value")
		return def
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	return parsed(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return parsed(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return parsed(c, key, def, strconv.ParseBool) }

// MayDuration takes Go durations such as 250ms or 10m
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, time.ParseDuration)
}

// MayCSV splits on commas and drops blank items; a list with no items is def
func (c Conf) MayCSV(key string, def []string) []string {
	items := strings.FieldsFunc(c.raw(key), func(r rune) bool { return r == ',' })
	out := items[:0]
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum lower-cases the value and panics unless it is one of allowed
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(key, def))
	if slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, v) }) {
		return v
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
