// Package module defines the minimal module contract; it sits below modkit to avoid import cycles
package module

import phttp "interviewcoach/internal/platform/net/http"

// Module mounts routes and may expose ports to other modules
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
