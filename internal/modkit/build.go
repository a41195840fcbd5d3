package modkit

import (
	"net/http"

	"interviewcoach/internal/modkit/httpkit"
	str "interviewcoach/internal/platform/strings"
)

// Built is what a module reads back from its options
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts in order, so a later option overrides an earlier one
func Build(opts ...Option) Built {
	var b Built
	for _, apply := range opts {
		apply(&b)
	}
	return b
}

// Mount attaches routes under b.Prefix behind b.Mw
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Mw, routes)
}
