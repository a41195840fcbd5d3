package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the plain handler shape modules register
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against. It keeps chi out of module code
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))
	Mux() http.Handler
}

// chiRouter fronts a root mux or any sub-router
type chiRouter struct{ chi.Router }

func (c chiRouter) Get(p string, h Handler)  { c.Router.Get(p, h) }
func (c chiRouter) Post(p string, h Handler) { c.Router.Post(p, h) }

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.Router.Route(pattern, func(sub chi.Router) { fn(chiRouter{sub}) })
}

func (c chiRouter) Mux() http.Handler { return c.Router }

// URLParam reads a path parameter such as {id}
func URLParam(r *http.Request, key string) string { return chi.URLParam(r, key) }
