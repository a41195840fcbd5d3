package modkit

import "net/http"

// Option adjusts how Build assembles a module
type Option func(*Built)

// WithName names the module in logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount path below /api/v1
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares runs mw, in order, on the module's routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module inputs from its host. The receiving module owns type T
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }
