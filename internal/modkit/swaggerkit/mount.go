// Package swaggerkit serves swagger-ui and the OpenAPI document
package swaggerkit

import (
	"net/http"

	"interviewcoach/internal/platform/logger"
	phttp "interviewcoach/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI at /api/docs/ and the decorated spec at /api/docs/doc.json
func Mount(r phttp.Router, enabled bool, spec []byte) {
	if !enabled {
		return
	}
	doc, err := Decorate(spec)
	if err != nil {
		logger.Named("swagger").Error().Err(err).Msg("openapi document is invalid; docs disabled")
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc)
	})
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
