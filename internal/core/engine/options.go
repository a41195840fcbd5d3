package engine

import (
	"interviewcoach/internal/core/keywords"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/logger"
)

// Option configures an Engine
type Option func(*config)

type config struct {
	log         logger.Logger
	res         *lexicon.Resources
	dir         keywords.Directory
	defaultRole string
}

// WithLogger sets the logger used for degradation and failure events
func WithLogger(l logger.Logger) Option { return func(c *config) { c.log = l } }

// WithResources injects a prebuilt resource set instead of the shared one
func WithResources(r *lexicon.Resources) Option { return func(c *config) { c.res = r } }

// WithDirectory replaces the role keyword directory backed by the resources
func WithDirectory(d keywords.Directory) Option { return func(c *config) { c.dir = d } }

// WithDefaultRole sets the role used when a request carries none
func WithDefaultRole(role string) Option {
	return func(c *config) {
		if role != "" {
			c.defaultRole = role
		}
	}
}
