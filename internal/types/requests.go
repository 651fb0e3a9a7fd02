package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeTextRequest represents the request body for the analyze endpoints.
type AnalyzeTextRequest struct {
	Text        string `json:"text" validate:"required,min=1"`
	TargetLevel string `json:"targetLevel,omitempty" validate:"omitempty,oneof=entry mid senior"`
}

// MatchJobRequest represents the request body for single job matching.
type MatchJobRequest struct {
	ResumeText        string  `json:"resumeText" validate:"required,min=1"`
	JobDescription    string  `json:"jobDescription" validate:"required,min=1"`
	JobTitle          string  `json:"jobTitle,omitempty"`
	ATSScore          float64 `json:"atsScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	ExperienceLevel   string  `json:"experienceLevel,omitempty" validate:"omitempty,oneof=student intern entry mid senior principal"`
	YearsOfExperience int     `json:"yearsOfExperience,omitempty" validate:"omitempty,gte=0"`
}

// BatchMatchRequest represents the request body for batch job matching.
type BatchMatchRequest struct {
	ResumeText        string  `json:"resumeText" validate:"required,min=1"`
	Jobs              []Job   `json:"jobs" validate:"required,min=1,dive"`
	ATSScore          float64 `json:"atsScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	ExperienceLevel   string  `json:"experienceLevel,omitempty" validate:"omitempty,oneof=student intern entry mid senior principal"`
	YearsOfExperience int     `json:"yearsOfExperience,omitempty" validate:"omitempty,gte=0"`
}

// CheckTextRequest represents the request body for the content-check endpoint.
type CheckTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// Validate validates the AnalyzeTextRequest using the validator.
func (r *AnalyzeTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchJobRequest using the validator.
func (r *MatchJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CheckTextRequest using the validator.
func (r *CheckTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
