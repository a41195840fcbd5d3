// Package http wraps chi with the JSON envelope every endpoint returns
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "interviewcoach/internal/platform/net"
	"interviewcoach/internal/platform/net/http/bind"
)

// Envelope is the response body for all endpoints
type Envelope = pnet.Wire

// Response is what return-style handlers produce. A non-nil Err wins over Data
type Response struct {
	Status int
	Data   any
	Err    error
	Header stdhttp.Header
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Data: data} }

// Fail derives status and envelope from err
func Fail(err error) Response { return Response{Err: err} }

// Handle adapts a Response-returning handler to net/http
func Handle(h func(*stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).send(w, r) }
}

// WriteError writes err as an envelope outside a return-style handler
func WriteError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) { Fail(err).send(w, r) }

func (resp Response) send(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	hdr := w.Header()
	for k, vv := range resp.Header {
		hdr[k] = append(hdr[k], vv...)
	}

	var env Envelope
	switch reqID := pnet.RequestID(r.Context()); {
	case resp.Err != nil:
		env = pnet.Failure(resp.Err, reqID)
	case resp.Status == stdhttp.StatusNoContent:
		w.WriteHeader(resp.Status)
		return
	case resp.Status == 0:
		env = pnet.Success(stdhttp.StatusOK, resp.Data, reqID)
	default:
		env = pnet.Success(resp.Status, resp.Data, reqID)
	}

	hdr.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}

// Result turns a (value, error) pair into a Response. A returned Response passes through
func Result(out any, err error) Response {
	if err != nil {
		return Fail(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// JSONHandler binds and validates a T body before calling fn
func JSONHandler[T any](fn func(*stdhttp.Request, T) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Fail(err)
		}
		return Result(fn(r, in))
	})
}

// PostJSON mounts JSONHandler on POST
func PostJSON[T any](r Router, path string, fn func(*stdhttp.Request, T) (any, error)) {
	r.Post(path, JSONHandler(fn))
}
