package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interviewcoach/internal/core/engine"
	"interviewcoach/internal/core/lexicon"
	"interviewcoach/internal/platform/config"
	phttp "interviewcoach/internal/platform/net/http"
	"interviewcoach/internal/services/api/evaluations/domain"
	evalhttp "interviewcoach/internal/services/api/evaluations/http"
	"interviewcoach/internal/services/api/evaluations/service"
)

func newRouter(t *testing.T) phttp.Router {
	t.Helper()
	res, err := lexicon.Load()
	if err != nil {
		t.Fatal(err)
	}
	svc := service.New(engine.New(engine.WithResources(res)), nil, nil, nil, nil, service.Config{Workers: 2})
	r := phttp.NewServer(config.New()).Router()
	r.Route("/evaluations", func(sub phttp.Router) { evalhttp.Register(sub, svc) })
	return r
}

func do(t *testing.T, r phttp.Router, method, path, body string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func decode[T any](t *testing.T, env phttp.Envelope) T {
	t.Helper()
	var out T
	b, _ := json.Marshal(env.Data)
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestInterview(t *testing.T) {
	rec, env := do(t, newRouter(t), stdhttp.MethodPost, "/evaluations/interview",
		`{"question":"What is OOP?","answer":"Objects bundle data and methods.","skill_level":"Beginner"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body)
	}
	got := decode[domain.InterviewEvaluation](t, env)
	if got.Kind != engine.KindInterview || got.ID != "" || got.Result.SkillLevel != "Beginner" {
		t.Fatalf("evaluation = %+v", got)
	}
}

func TestValidation(t *testing.T) {
	r := newRouter(t)
	cases := []struct {
		name, path, body string
	}{
		{"blank question", "/evaluations/interview", `{"question":"   ","answer":"x"}`},
		{"bad skill level", "/evaluations/interview", `{"question":"q","skill_level":"Guru"}`},
		{"unknown field", "/evaluations/interview", `{"question":"q","mood":"happy"}`},
		{"empty batch", "/evaluations/interview/batch", `{"items":[]}`},
		{"negative duration", "/evaluations/fluency", `{"transcript":"hi","audio_duration":-1}`},
		{"missing resume", "/evaluations/resume", `{"job_role":"Data Scientist"}`},
		{"malformed", "/evaluations/resume", `{"resume_text":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := do(t, r, stdhttp.MethodPost, tc.path, tc.body)
			if rec.Code != stdhttp.StatusBadRequest || env.Error == "" {
				t.Fatalf("status = %d env %+v", rec.Code, env)
			}
		})
	}
}

func TestBatchAndFluency(t *testing.T) {
	r := newRouter(t)
	rec, env := do(t, r, stdhttp.MethodPost, "/evaluations/interview/batch",
		`{"job_role":"Data Scientist","items":[{"question":"What is a model?","answer":"A model learns from data."},{"question":"Why?"}]}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("batch status = %d body %s", rec.Code, rec.Body)
	}
	batch := decode[domain.BatchResult](t, env)
	if len(batch.Results) != 2 || batch.Summary.Answers != 2 || batch.Results[0].Result.JobRole != "Data Scientist" {
		t.Fatalf("batch = %+v", batch)
	}

	rec, env = do(t, r, stdhttp.MethodPost, "/evaluations/fluency", `{"transcript":"Um, so, I think this is, like, good.","audio_duration":0}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("fluency status = %d body %s", rec.Code, rec.Body)
	}
	flu := decode[domain.FluencyEvaluation](t, env)
	if flu.Result.Analysis.WPM != 0 || flu.Result.Test.PronunciationScore != engine.DefaultPronunciation {
		t.Fatalf("fluency = %+v", flu.Result)
	}
}

func TestBackendsDisabled(t *testing.T) {
	r := newRouter(t)
	rec, _ := do(t, r, stdhttp.MethodGet, "/evaluations/0b6c1f7e-5a5e-4f4e-9c39-0f2d2c1e8a11", "")
	if rec.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("get status = %d", rec.Code)
	}
	rec, _ = do(t, r, stdhttp.MethodPost, "/evaluations/stats", `{}`)
	if rec.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("stats status = %d", rec.Code)
	}
}
