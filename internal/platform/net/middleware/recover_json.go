package middleware

import (
	"net/http"
	"runtime/debug"

	perr "interviewcoach/internal/platform/errors"
	"interviewcoach/internal/platform/logger"
	pnet "interviewcoach/internal/platform/net"
	phttp "interviewcoach/internal/platform/net/http"
)

var errPanic = perr.PanicErrf("internal error")

// RecoverJSON answers a panicking handler with a 500 envelope. http.ErrAbortHandler is re-raised
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			switch v := recover(); v {
			case nil:
			case http.ErrAbortHandler:
				panic(v)
			default:
				logger.C(r.Context()).Error().
					Interface("panic", v).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				if id := pnet.RequestID(r.Context()); id != "" {
					w.Header().Set("X-Request-ID", id)
				}
				phttp.WriteError(w, r, errPanic)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
