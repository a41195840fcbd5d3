package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/config"
	"interviewcoach/internal/platform/logger"
	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/services/api/roles/domain"
	roleshttp "interviewcoach/internal/services/api/roles/http"
	"interviewcoach/internal/services/api/roles/service"
)

func newRouter(t *testing.T) phttp.Router {
	t.Helper()
	res, err := lexicon.Load()
	if err != nil {
		t.Fatal(err)
	}
	svc := service.New(res, domain.SourceEmbedded, nil, nil, logger.Nop())
	r := phttp.NewServer(config.New()).Router()
	r.Route("/roles", func(sub phttp.Router) { roleshttp.Register(sub, svc) })
	return r
}

func do(t *testing.T, r phttp.Router, method, path string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestRoles_List(t *testing.T) {
	rec, env := do(t, newRouter(t), stdhttp.MethodGet, "/roles/")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(env.Data)
	var got domain.RoleList
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Roles) < 10 || got.Source != domain.SourceEmbedded {
		t.Fatalf("list = %+v", got)
	}
}

func TestRoles_GetAndNotFound(t *testing.T) {
	r := newRouter(t)

	rec, env := do(t, r, stdhttp.MethodGet, "/roles/Software%20Engineer")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	data, _ := json.Marshal(env.Data)
	var got domain.RoleKeywords
	_ = json.Unmarshal(data, &got)
	if got.Role != "Software Engineer" || len(got.Keywords) == 0 {
		t.Fatalf("get = %+v", got)
	}

	rec, env = do(t, r, stdhttp.MethodGet, "/roles/Astronaut")
	if rec.Code != stdhttp.StatusNotFound || env.Error == "" {
		t.Fatalf("unknown role: %d %+v", rec.Code, env)
	}
}

func TestRoles_Reload(t *testing.T) {
	rec, _ := do(t, newRouter(t), stdhttp.MethodPost, "/roles/reload")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
