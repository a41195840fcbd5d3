package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"interviewcoach/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	// MaxInFlight bounds concurrent API requests; zero disables it
	MaxInFlight int
	Timeout     time.Duration
}

// CommonStack is the middleware applied to the /api/v1 scope. Request ids come from
// middleware.Edge on the root mux
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	mw := []func(http.Handler) http.Handler{
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Timeout(timeout),
	}
	if o.MaxInFlight > 0 {
		mw = append(mw, middleware.Throttle(o.MaxInFlight))
	}
	return mw
}
