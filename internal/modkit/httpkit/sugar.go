package httpkit

import (
	"net/http"

	phttp "interviewcoach/internal/platform/net/http"
)

func call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) Response { return phttp.Result(fn(r)) })
}

// Get mounts fn on GET; fn may return a Response to set status or headers
func Get(r Router, path string, fn func(*http.Request) (any, error)) { r.Get(path, call(fn)) }

// Post mounts a handler that reads no body
func Post(r Router, path string, fn func(*http.Request) (any, error)) { r.Post(path, call(fn)) }

// PostJSON mounts a handler that binds and validates a T body
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, fn)
}
