package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"careercompass-jobs/internal/aggregator"
	"careercompass-jobs/internal/cache"
	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/location"
	"careercompass-jobs/internal/recommend"
	"careercompass-jobs/internal/sources"
	"careercompass-jobs/pkg/models"
)

type stubSource struct {
	jobs []models.JobPosting
}

func (s *stubSource) Name() string    { return "stub" }
func (s *stubSource) Available() bool { return true }

func (s *stubSource) Search(_ context.Context, _, _, _ string) ([]models.JobPosting, error) {
	return s.jobs, nil
}

func handlerTestService(jobs []models.JobPosting) *recommend.Service {
	cfg := &config.Config{}
	cfg.Aggregator.MaxQueries = 1
	cfg.Aggregator.QueryDelay = time.Millisecond
	cfg.Aggregator.RequestDeadline = 5 * time.Second
	cfg.Aggregator.MaxResults = 15
	cfg.Cache.ProfileTTL = time.Minute
	cfg.Cache.UserTTL = time.Minute

	resolver := location.NewResolver()
	agg := aggregator.New(cfg, []sources.Client{&stubSource{jobs: jobs}}, resolver)
	return recommend.NewService(cfg, agg, resolver, cache.NewProfileCache(cfg.Cache.ProfileTTL), cache.NewUserCache(cfg.Cache.UserTTL), nil)
}

func postJSON(handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/recommend", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRecommendHandlerSuccess(t *testing.T) {
	svc := handlerTestService([]models.JobPosting{
		{Title: "Data Engineer", Company: "Acme", ApplyURL: "https://example.org/1", Location: "Amsterdam, Netherlands"},
	})
	handler := RecommendHandler(svc)

	body := `{"skills": ["Python", "SQL"], "recent_titles": ["Senior Data Engineer"], "location": "Amsterdam, Netherlands"}`
	rec := postJSON(handler, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
	if resp.Count != 1 || len(resp.Jobs) != 1 {
		t.Errorf("count = %d, jobs = %d", resp.Count, len(resp.Jobs))
	}
	if resp.Country != "Netherlands" {
		t.Errorf("detected country = %q", resp.Country)
	}
	if resp.RequestID == "" {
		t.Error("expected a request ID")
	}
}

func TestRecommendHandlerValidation(t *testing.T) {
	svc := handlerTestService(nil)
	handler := RecommendHandler(svc)

	tests := []struct {
		name string
		body string
	}{
		{"missing skills", `{"location": "Amsterdam"}`},
		{"empty skills", `{"skills": []}`},
		{"too many titles", `{"skills": ["Python"], "recent_titles": ["a", "b", "c", "d", "e", "f"]}`},
		{"negative experience", `{"skills": ["Python"], "experience_years": -1}`},
		{"malformed json", `{"skills": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(handler, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}

			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid error JSON: %v", err)
			}
			if resp.Error == "" || resp.RequestID == "" {
				t.Errorf("incomplete error response: %+v", resp)
			}
		})
	}
}

func TestRecommendHandlerUnusableProfile(t *testing.T) {
	svc := handlerTestService(nil)
	handler := RecommendHandler(svc)

	// Whitespace skills pass structural validation but leave nothing to
	// search with.
	rec := postJSON(handler, `{"skills": ["   "]}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if resp.Error != "invalid_profile" {
		t.Errorf("error = %q, want invalid_profile", resp.Error)
	}
}

func TestRecommendHandlerEmptyResults(t *testing.T) {
	svc := handlerTestService(nil)
	handler := RecommendHandler(svc)

	rec := postJSON(handler, `{"skills": ["Python"]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
	if resp.Message == "" {
		t.Error("expected explanatory message for empty results")
	}
}
