// Package modkit wires API modules from shared deps and options
package modkit

import "interviewcoach/internal/modkit/module"

// Module is the contract every API module satisfies
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
