package httpkit

import "net/http"

// APIPrefix is where the versioned JSON routes live
const APIPrefix = "/api/v1"

// MountUnder gives mount a subrouter at prefix that runs mw first
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		sub.Use(mw...)
		mount(sub)
	})
}

// MountAPIV1 is MountUnder at APIPrefix
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIPrefix, mw, mount)
}
