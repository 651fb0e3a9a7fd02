package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/server/ratelimit"
)

const testResume = `John Smith
john.smith@example.com | (555) 123-4567 | github.com/jsmith

EXPERIENCE
Software Engineer at Acme Corp
- Built Go microservices handling 2M requests per day
- Reduced PostgreSQL query latency by 40%
- Led migration to Kubernetes across 12 services

EDUCATION
B.S. Computer Science, State University, 2019

SKILLS
Go, Python, PostgreSQL, Docker, Kubernetes, AWS`

const testJobDescription = `We are hiring a Backend Engineer to build Go services.
Requirements: 3+ years with Go, PostgreSQL, Docker and Kubernetes.
You will design APIs and improve reliability across our platform.`

// testServer builds a server with no embedding backend, so every endpoint
// exercises its fallback path.
func newTestServer() *Server {
	return &Server{
		scorer:   scoring.NewScorer(nil),
		scorerML: scoring.NewScorer(nil),
		matcher:  matching.NewMatcher(nil),
	}
}

func postJSON(t *testing.T, s *Server, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%v'", resp["status"])
	}
	if resp["service"] != serviceName {
		t.Errorf("expected service '%s', got '%v'", serviceName, resp["service"])
	}
	if resp["mlEnabled"] != false {
		t.Error("expected mlEnabled false without an API key")
	}
}

// TestIndexEndpoint tests the / endpoint listing
func TestIndexEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s.handleIndex(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	endpoints, ok := resp["endpoints"].([]any)
	if !ok || len(endpoints) == 0 {
		t.Fatal("expected non-empty endpoint listing")
	}
}

// TestAnalyzeTextEndpoint tests /api/analyze-text with a full resume
func TestAnalyzeTextEndpoint(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]string{"text": testResume})
	w := postJSON(t, s, s.handleAnalyzeText, "/api/analyze-text", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp["success"])
	}
	score, ok := resp["score"].(float64)
	if !ok || score <= 0 || score > 100 {
		t.Errorf("expected score in (0, 100], got %v", resp["score"])
	}
	if resp["extractedInfo"] == nil {
		t.Error("expected extractedInfo in response")
	}
}

// TestAnalyzeTextEndpoint_MissingText tests /api/analyze-text with no text
func TestAnalyzeTextEndpoint_MissingText(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleAnalyzeText, "/api/analyze-text", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["error"] != "No text provided for analysis" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
	if resp["success"] != false {
		t.Errorf("expected success=false, got %v", resp["success"])
	}
}

// TestAnalyzeTextEndpoint_InvalidJSON tests /api/analyze-text with invalid JSON
func TestAnalyzeTextEndpoint_InvalidJSON(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleAnalyzeText, "/api/analyze-text", `{invalid json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestAnalyzeTextEndpoint_InvalidTargetLevel tests target level validation
func TestAnalyzeTextEndpoint_InvalidTargetLevel(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleAnalyzeText, "/api/analyze-text",
		`{"text": "some resume text", "targetLevel": "expert"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["error"] == "" {
		t.Error("expected validation error message in response")
	}
}

// TestAnalyzeTextMLEndpoint_NoEncoder tests that the ML endpoint still
// answers without an embedding backend
func TestAnalyzeTextMLEndpoint_NoEncoder(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]string{"text": testResume})
	w := postJSON(t, s, s.handleAnalyzeTextML, "/api/ml/analyze-text", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Errorf("expected success=true on fallback path, got %v", resp["success"])
	}
}

// TestCheckTextEndpoint tests /api/check-text
func TestCheckTextEndpoint(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]string{"text": testResume})
	w := postJSON(t, s, s.handleCheckText, "/api/check-text", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	overall, ok := resp["overall_score"].(float64)
	if !ok || overall <= 0 || overall > 100 {
		t.Errorf("expected overall_score in (0, 100], got %v", resp["overall_score"])
	}
	if _, ok := resp["issues_found"]; !ok {
		t.Error("expected issues_found in response")
	}
}

// TestCheckTextEndpoint_MissingText tests /api/check-text with no text
func TestCheckTextEndpoint_MissingText(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleCheckText, "/api/check-text", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestMatchJobEndpoint tests /api/ml/match-job on the keyword fallback path
func TestMatchJobEndpoint(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{
		"resumeText":     testResume,
		"jobDescription": testJobDescription,
		"jobTitle":       "Backend Engineer",
	})
	w := postJSON(t, s, s.handleMatchJob, "/api/ml/match-job", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp["success"])
	}
	if resp["methodology"] != "Keyword-based (fallback)" {
		t.Errorf("expected keyword fallback methodology, got %v", resp["methodology"])
	}
	if resp["matchLevel"] == "" {
		t.Error("expected a match level")
	}
	score, ok := resp["matchScore"].(float64)
	if !ok || score <= 0 {
		t.Errorf("expected positive match score, got %v", resp["matchScore"])
	}
}

// TestMatchJobEndpoint_ATSContribution tests the ATS score bonus
func TestMatchJobEndpoint_ATSContribution(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{
		"resumeText":     testResume,
		"jobDescription": testJobDescription,
		"atsScore":       100,
	})
	w := postJSON(t, s, s.handleMatchJob, "/api/ml/match-job", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	if resp["atsContribution"] != 40.0 {
		t.Errorf("expected atsContribution 40 at atsScore 100, got %v", resp["atsContribution"])
	}
}

// TestMatchJobEndpoint_MissingFields tests /api/ml/match-job validation
func TestMatchJobEndpoint_MissingFields(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleMatchJob, "/api/ml/match-job", `{"resumeText": "only a resume"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["error"] != "resumeText and jobDescription are required" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

// TestMatchJobEndpoint_InvalidExperienceLevel tests experience level validation
func TestMatchJobEndpoint_InvalidExperienceLevel(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{
		"resumeText":      testResume,
		"jobDescription":  testJobDescription,
		"experienceLevel": "wizard",
	})
	w := postJSON(t, s, s.handleMatchJob, "/api/ml/match-job", string(body))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestBatchMatchJobsEndpoint tests /api/ml/batch-match-jobs
func TestBatchMatchJobsEndpoint(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{
		"resumeText": testResume,
		"jobs": []map[string]string{
			{"title": "Backend Engineer", "description": testJobDescription},
			{"title": "Data Engineer", "description": "Build Python ETL pipelines with Airflow and Spark."},
		},
	})
	w := postJSON(t, s, s.handleBatchMatchJobs, "/api/ml/batch-match-jobs", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Errorf("expected success=true, got %v", resp["success"])
	}
	if resp["totalJobs"] != 2.0 {
		t.Errorf("expected totalJobs 2, got %v", resp["totalJobs"])
	}
	matches, ok := resp["matches"].([]any)
	if !ok || len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %v", resp["matches"])
	}
}

// TestBatchMatchJobsEndpoint_MissingJobs tests batch validation
func TestBatchMatchJobsEndpoint_MissingJobs(t *testing.T) {
	s := newTestServer()

	w := postJSON(t, s, s.handleBatchMatchJobs, "/api/ml/batch-match-jobs",
		`{"resumeText": "a resume"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["error"] != "resumeText and jobs array are required" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

// TestBatchMatchJobsEndpoint_BadJobInPlace tests that a job without a
// description fails in place without aborting the batch
func TestBatchMatchJobsEndpoint_BadJobInPlace(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{
		"resumeText": testResume,
		"jobs": []map[string]string{
			{"title": "Backend Engineer", "description": testJobDescription},
			{"title": "Mystery Role", "description": ""},
		},
	})
	w := postJSON(t, s, s.handleBatchMatchJobs, "/api/ml/batch-match-jobs", string(body))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	matches := resp["matches"].([]any)
	first := matches[0].(map[string]any)
	second := matches[1].(map[string]any)

	if first["success"] != true {
		t.Errorf("expected first match to succeed, got %v", first["success"])
	}
	if second["success"] != false {
		t.Errorf("expected second match to fail in place, got %v", second["success"])
	}
}

// TestCORSMiddleware tests CORS headers are set
func TestCORSMiddleware(t *testing.T) {
	s := newTestServer()

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header Access-Control-Allow-Origin: *")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected CORS header Access-Control-Allow-Methods")
	}
}

// TestCORSMiddleware_OPTIONS tests OPTIONS preflight request
func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newTestServer()

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("should not reach here")) //nolint:errcheck
	}))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for OPTIONS, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("OPTIONS response should have empty body")
	}
}

// TestLoggingMiddleware tests that logging middleware passes through and
// tags the response with a request ID
func TestLoggingMiddleware(t *testing.T) {
	s := newTestServer()

	called := false
	handler := s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !called {
		t.Error("logging middleware should call next handler")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

// TestRateLimitMiddleware tests that exhausted limits return 429
func TestRateLimitMiddleware(t *testing.T) {
	s := newTestServer()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer s.rateLimiter.Stop()

	handler := s.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-text", nil)
	req.RemoteAddr = "10.0.0.1:52000"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be limited, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}

	resp := decodeBody(t, w)
	if resp["error"] != "rate_limit_exceeded" {
		t.Errorf("unexpected error code: %v", resp["error"])
	}
}

// TestServerRouting tests the assembled handler chain end to end
func TestServerRouting(t *testing.T) {
	s, err := New(Config{Port: 0})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	defer s.rateLimiter.Stop()

	ts := httptest.NewServer(s.httpServer.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID on routed response")
	}

	// Wrong method on a POST-only route
	resp, err = http.Get(ts.URL + "/api/analyze-text")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET on POST route, got %d", resp.StatusCode)
	}

	// Unknown path
	resp, err = http.Post(ts.URL+"/api/unknown", "application/json", bytes.NewBufferString(`{}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown path, got %d", resp.StatusCode)
	}
}

// TestJSONResponse tests jsonResponse helper
func TestJSONResponse(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	s.jsonResponse(w, http.StatusOK, map[string]string{"key": "value"})

	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("expected Content-Type: application/json")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resp["key"] != "value" {
		t.Errorf("expected key='value', got '%s'", resp["key"])
	}
}

// TestErrorResponse tests errorResponse helper
func TestErrorResponse(t *testing.T) {
	s := newTestServer()
	w := httptest.NewRecorder()

	s.errorResponse(w, http.StatusBadRequest, "test error")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["error"] != "test error" {
		t.Errorf("expected error='test error', got '%v'", resp["error"])
	}
	if resp["success"] != false {
		t.Errorf("expected success=false, got %v", resp["success"])
	}
}

// TestExtractClientID tests client IP extraction
func TestExtractClientID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.7:39712"
	if got := s.extractClientID(req); got != "192.168.1.7" {
		t.Errorf("expected '192.168.1.7', got '%s'", got)
	}

	req.RemoteAddr = "no-port-here"
	if got := s.extractClientID(req); got != "no-port-here" {
		t.Errorf("expected fallback to RemoteAddr, got '%s'", got)
	}
}
