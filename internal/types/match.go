package types

// Job represents a job posting to match a resume against.
// Description may be empty when URL is set; the caller resolves URLs to text
// before matching.
type Job struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// MatchResult is the outcome of matching one resume against one job.
// SemanticSimilarity is reported on a 0-100 scale; KeywordOverlap is only
// populated by the keyword fallback path.
type MatchResult struct {
	Success            bool     `json:"success"`
	Error              string   `json:"error,omitempty"`
	MatchScore         float64  `json:"matchScore"`
	SemanticSimilarity float64  `json:"semanticSimilarity"`
	KeywordOverlap     float64  `json:"keywordOverlap,omitempty"`
	ATSContribution    float64  `json:"atsContribution"`
	SeniorityPenalty   float64  `json:"seniorityPenalty"`
	CandidateLevel     string   `json:"candidateLevel,omitempty"`
	JobLevel           string   `json:"jobLevel,omitempty"`
	MatchLevel         string   `json:"matchLevel"`
	Reasons            []string `json:"reasons"`
	Methodology        string   `json:"methodology"`
}

// BatchMatchResult wraps the results of matching one resume against many jobs.
type BatchMatchResult struct {
	Success   bool           `json:"success"`
	Error     string         `json:"error,omitempty"`
	TotalJobs int            `json:"totalJobs"`
	Matches   []*MatchResult `json:"matches"`
}
