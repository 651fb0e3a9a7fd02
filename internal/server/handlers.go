package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-scorer/internal/checks"
	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxBodyBytes caps request bodies. A batch request with dozens of full job
// descriptions stays comfortably under this.
const maxBodyBytes = 1 << 20

// decodeJSON decodes a size-limited request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   serviceName,
		"version":   serviceVersion,
		"mlEnabled": s.mlEnabled,
	})
}

// handleIndex describes the service and lists its routes
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service":   serviceName,
		"version":   serviceVersion,
		"mlEnabled": s.mlEnabled,
		"endpoints": []string{
			"GET /health",
			"POST /api/analyze-text",
			"POST /api/check-text",
			"POST /api/ml/analyze-text",
			"POST /api/ml/match-job",
			"POST /api/ml/batch-match-jobs",
		},
	})
}

// handleAnalyzeText scores a resume with the rule-based path only.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	s.analyzeWith(s.scorer, w, r)
}

// handleAnalyzeTextML scores a resume with the hybrid path. Without an
// embedding backend this degrades to the same rules as /api/analyze-text.
func (s *Server) handleAnalyzeTextML(w http.ResponseWriter, r *http.Request) {
	s.analyzeWith(s.scorerML, w, r)
}

func (s *Server) analyzeWith(scorer *scoring.Scorer, w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text provided for analysis")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	report := scorer.Score(r.Context(), req.Text, scoring.Options{TargetLevel: req.TargetLevel})
	s.jsonResponse(w, http.StatusOK, report)
}

// handleCheckText runs the itemized content checks over resume text.
func (s *Server) handleCheckText(w http.ResponseWriter, r *http.Request) {
	var req types.CheckTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text provided for analysis")
		return
	}

	rec := features.Extract(req.Text)
	s.jsonResponse(w, http.StatusOK, checks.Run(req.Text, rec))
}

// handleMatchJob matches one resume against one job posting.
func (s *Server) handleMatchJob(w http.ResponseWriter, r *http.Request) {
	var req types.MatchJobRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.ResumeText == "" || req.JobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "resumeText and jobDescription are required")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job := types.Job{Title: req.JobTitle, Description: req.JobDescription}
	result := s.matcher.Match(r.Context(), req.ResumeText, job, matching.Options{
		ATSScore:       req.ATSScore,
		CandidateLevel: req.ExperienceLevel,
		CandidateYears: req.YearsOfExperience,
	})

	s.jsonResponse(w, http.StatusOK, result)
}

// handleBatchMatchJobs matches one resume against a list of job postings.
// Results come back in job order; a bad job yields a failed entry in place
// rather than aborting the batch.
func (s *Server) handleBatchMatchJobs(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.ResumeText == "" || len(req.Jobs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "resumeText and jobs array are required")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	matches := s.matcher.MatchBatch(r.Context(), req.ResumeText, req.Jobs, matching.Options{
		ATSScore:       req.ATSScore,
		CandidateLevel: req.ExperienceLevel,
		CandidateYears: req.YearsOfExperience,
	})

	s.jsonResponse(w, http.StatusOK, types.BatchMatchResult{
		Success:   true,
		TotalJobs: len(req.Jobs),
		Matches:   matches,
	})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
