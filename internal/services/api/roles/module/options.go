package module

import (
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/modkit"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/services/api/roles/domain"
)

// Options holds the roles module configuration
type Options struct {
	// Source is embedded or pg
	Source string
}

// FromConfig reads CORE_ROLES_SOURCE
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_ROLES_")
	return Options{Source: c.MayEnum("SOURCE", domain.SourceEmbedded, domain.SourceEmbedded, domain.SourcePG)}
}

// Inputs are what the roles module needs from its host
type Inputs struct {
	Resources *lexicon.Resources
}

// WithResources injects the linguistic resources the directory is seeded from
func WithResources(res *lexicon.Resources) modkit.Option {
	return modkit.WithPorts(Inputs{Resources: res})
}
