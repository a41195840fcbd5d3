package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"interviewcoach/internal/platform/config"
	phttp "interviewcoach/internal/platform/net/http"
)

const miniSpec = `{"openapi":"3.0.3","info":{"title":"t","version":"1"},
"paths":{"/roles":{"get":{"responses":{"200":{"description":"ok"}}}}}}`

func TestDecorate_AddsSharedPieces(t *testing.T) {
	out, err := Decorate([]byte(miniSpec))
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	var spec map[string]any
	if err := json.Unmarshal(out, &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
	resps := spec["paths"].(map[string]any)["/roles"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("response %s missing: %v", code, resps)
		}
	}
}

func TestDecorate_BadJSON(t *testing.T) {
	if _, err := Decorate([]byte(`{`)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMount_ServesDoc(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	Mount(r, true, []byte(miniSpec))

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("doc.json = %d %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect = %d", rec.Code)
	}
}
