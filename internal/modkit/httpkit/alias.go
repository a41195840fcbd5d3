// Package httpkit is the slice of the platform http layer modules see, so modules never import chi
package httpkit

import (
	"net/http"

	phttp "interviewcoach/internal/platform/net/http"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// URLParam reads a path parameter
func URLParam(r *http.Request, key string) string { return phttp.URLParam(r, key) }
