// Package version reports build metadata stamped in at link time
package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags, e.g.
//
//	-X 'interviewcoach/internal/core/version.version=v0.3.0'
//	-X 'interviewcoach/internal/core/version.commit=1f2e3d4'
//	-X 'interviewcoach/internal/core/version.date=2026-10-01'
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name reported by the API and the CLI
const Service = "interviewcoach-api"

// BuildInfo describes the running binary
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Lexicon   string `json:"lexicon,omitempty"`
}

// Info returns the build information for this binary
func Info() BuildInfo {
	return BuildInfo{
		Service:   Service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
}

// WithLexicon returns b annotated with the loaded linguistic resource version
func (b BuildInfo) WithLexicon(v string) BuildInfo {
	b.Lexicon = v
	return b
}

func (b BuildInfo) String() string {
	s := fmt.Sprintf("%s %s (%s, %s, %s)", b.Service, b.Version, b.Commit, b.Date, b.GoVersion)
	if b.Lexicon != "" {
		s += " lexicon " + b.Lexicon
	}
	return s
}
