// Package types provides type definitions for structured data used throughout the resume-scorer system.
package types

// EducationEntry represents a single education record extracted from a resume.
type EducationEntry struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
}

// WorkEntry represents a single work-experience record extracted from a resume.
type WorkEntry struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description,omitempty"`
}

// ProjectEntry represents a single project record extracted from a resume.
type ProjectEntry struct {
	Name        string `json:"name"`
	Technology  string `json:"technology,omitempty"`
	Description string `json:"description,omitempty"`
}

// Metrics summarizes the countable signals found in a resume.
type Metrics struct {
	WordCount           int  `json:"wordCount"`
	SectionsFound       int  `json:"sectionsFound"`
	SkillsFound         int  `json:"skillsFound"`
	ActionVerbs         int  `json:"actionVerbs"`
	QuantifiableMetrics int  `json:"quantifiableMetrics"`
	ContactInfoPresent  bool `json:"contactInfoPresent"`
	TotalBullets        int  `json:"totalBullets"`
	QuantifiedBullets   int  `json:"quantifiedBullets"`
}

// ExtractedInfo carries the structured fields pulled out of the resume text.
// Field names follow the published API contract and are stable.
type ExtractedInfo struct {
	Name              string           `json:"name,omitempty"`
	Email             string           `json:"email,omitempty"`
	Phone             string           `json:"phone,omitempty"`
	Location          string           `json:"location,omitempty"`
	LinkedIn          string           `json:"linkedin,omitempty"`
	GitHub            string           `json:"github,omitempty"`
	Skills            []string         `json:"skills"`
	Sections          []string         `json:"sections"`
	Education         []EducationEntry `json:"education"`
	WorkExperience    []WorkEntry      `json:"work_experience"`
	Projects          []ProjectEntry   `json:"projects"`
	ExperienceLevel   string           `json:"experienceLevel"`
	YearsOfExperience int              `json:"yearsOfExperience"`
}

// QualityReport is the full result of a resume quality analysis.
// Success is false only for invalid input (empty text); a missing embedding
// backend degrades the scoring path but still produces a successful report.
type QualityReport struct {
	Success         bool               `json:"success"`
	Error           string             `json:"error,omitempty"`
	Score           float64            `json:"score"`
	Status          string             `json:"status,omitempty"`
	StatusMessage   string             `json:"statusMessage,omitempty"`
	Insights        []string           `json:"insights,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
	ScoreBreakdown  map[string]float64 `json:"scoreBreakdown,omitempty"`
	Metrics         *Metrics           `json:"metrics,omitempty"`
	ExtractedInfo   *ExtractedInfo     `json:"extractedInfo,omitempty"`
}
