package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interviewcoach/internal/platform/config"
	perr "interviewcoach/internal/platform/errors"
	pnet "interviewcoach/internal/platform/net"
	phttp "interviewcoach/internal/platform/net/http"
)

type echoReq struct {
	Text string `json:"text" validate:"required"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return env
}

func newRouter() phttp.Router {
	return phttp.NewServer(config.New()).Router()
}

func TestNewServer_DefaultAddr(t *testing.T) {
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":4000" {
		t.Fatalf("Addr = %q, want :4000", srv.Addr())
	}
}

func TestRouter_RouteAndURLParam(t *testing.T) {
	r := newRouter()
	r.Route("/roles", func(sr phttp.Router) {
		sr.Get("/{role}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.WriteString(w, phttp.URLParam(req, "role"))
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roles/Data%20Scientist", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "Data Scientist" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestPostJSON_EnvelopeAndErrors(t *testing.T) {
	r := newRouter()
	phttp.PostJSON(r, "/echo", func(_ *http.Request, in echoReq) (any, error) {
		if in.Text == "fail" {
			return nil, perr.EvaluationFailedf("could not score")
		}
		return map[string]string{"text": in.Text}, nil
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"text":"hi"}`))
	req = req.WithContext(pnet.WithRequestID(req.Context(), "rid-1"))
	r.Mux().ServeHTTP(rec, req)
	env := decode(t, rec)
	if rec.Code != http.StatusOK || env.RequestID != "rid-1" {
		t.Fatalf("ok path = %d %+v", rec.Code, env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["text"] != "hi" {
		t.Fatalf("data = %#v", env.Data)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"text":"fail"}`)))
	env = decode(t, rec)
	if rec.Code != http.StatusUnprocessableEntity || env.Code != perr.ErrorCodeEvaluation {
		t.Fatalf("eval failure = %d %+v", rec.Code, env)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`)))
	env = decode(t, rec)
	if rec.Code != http.StatusBadRequest || env.Field != "text" {
		t.Fatalf("validation = %d %+v", rec.Code, env)
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Status: http.StatusNoContent, Header: http.Header{"X-Cache": {"hit"}}}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 || rec.Header().Get("X-Cache") != "hit" {
		t.Fatalf("got %d %q %v", rec.Code, rec.Body.String(), rec.Header())
	}
}

func TestWriteError_Foreign(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if env := decode(t, rec); env.Error != "boom" {
		t.Fatalf("env = %+v", env)
	}
}

func TestMountProfiler(t *testing.T) {
	r := newRouter()
	phttp.MountProfiler(r, "/debug", true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("pprof = %d", rec.Code)
	}

	off := newRouter()
	phttp.MountProfiler(off, "/debug", false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler = %d", rec.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop")
	}
}

func TestResult(t *testing.T) {
	if got := phttp.Result(phttp.Response{Status: http.StatusAccepted}, nil); got.Status != http.StatusAccepted {
		t.Fatalf("Response should pass through, got %+v", got)
	}
	if got := phttp.Result("ignored", perr.NotFoundf("gone")); got.Err == nil || got.Data != nil {
		t.Fatalf("error should win, got %+v", got)
	}
	if got := phttp.Result(42, nil); got.Status != http.StatusOK || got.Data != 42 {
		t.Fatalf("plain value = %+v", got)
	}
}
