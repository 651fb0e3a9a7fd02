// Package matching scores how well a resume fits a job posting. The score
// blends semantic similarity between the two texts with the resume's ATS
// quality, then subtracts a penalty when the posting demands more seniority
// than the candidate has. Postings under a hundred words are treated as
// snippets and scored on a more generous curve, since aggregator feeds
// truncate descriptions. Without an encoder the matcher degrades to keyword
// overlap.
package matching

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/seniority"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Matcher compares resumes against job postings. A nil encoder is allowed
// and selects the keyword fallback.
type Matcher struct {
	enc embedding.Encoder
}

// Options carries the resume-side context for a match. CandidateLevel
// defaults to entry when blank; ATSScore is the 0-100 quality score from the
// analyzer and feeds the additive bonus.
type Options struct {
	ATSScore       float64
	CandidateLevel string
	CandidateYears int
}

func NewMatcher(enc embedding.Encoder) *Matcher {
	return &Matcher{enc: enc}
}

// Match scores one resume against one job posting. Validation problems are
// reported on the result rather than returned, so callers can serialize the
// outcome directly.
func (m *Matcher) Match(ctx context.Context, resumeText string, job types.Job, opts Options) *types.MatchResult {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(job.Description) == "" {
		return &types.MatchResult{
			Success: false,
			Error:   "Resume text and job description are required",
		}
	}
	if m.enc == nil {
		return m.keywordMatch(resumeText, job, opts)
	}

	jobText := combineJobText(job)

	resumeVec, err := m.enc.Encode(ctx, resumeText)
	if err != nil {
		log.Printf("semantic matching unavailable, falling back to keywords: %v", err)
		return m.keywordMatch(resumeText, job, opts)
	}
	jobVec, err := m.enc.Encode(ctx, jobText)
	if err != nil {
		log.Printf("semantic matching unavailable, falling back to keywords: %v", err)
		return m.keywordMatch(resumeText, job, opts)
	}

	sim := embedding.CosineSimilarity(resumeVec, jobVec)
	return scoreJob(resumeText, job, jobText, sim, opts, false)
}

// scoreJob turns a computed similarity into a full result. Both the single
// and batch paths land here so the formula cannot drift between them.
func scoreJob(resumeText string, job types.Job, jobText string, sim float64, opts Options, batch bool) *types.MatchResult {
	snippet := isSnippet(jobText)
	candidate := candidateLevelFor(opts.CandidateLevel)
	jobLevel := seniority.DetectJobSeniority(job.Title, job.Description)
	penalty := seniority.Penalty(candidate, jobLevel)

	semantic := curveFor(snippet).at(sim)
	ats := opts.ATSScore / 100 * atsCap(snippet)
	final := clamp(semantic+ats-penalty, 0, 100)

	return &types.MatchResult{
		Success:            true,
		MatchScore:         round1(final),
		SemanticSimilarity: round1(sim * 100),
		ATSContribution:    round1(ats),
		SeniorityPenalty:   round1(penalty),
		CandidateLevel:     string(candidate),
		JobLevel:           string(jobLevel),
		MatchLevel:         matchLevelFor(final),
		Reasons: buildReasons(reasonContext{
			similarity: sim,
			atsScore:   opts.ATSScore,
			finalScore: final,
			penalty:    penalty,
			candidate:  candidate,
			jobLevel:   jobLevel,
			resume:     strings.ToLower(resumeText),
			job:        strings.ToLower(jobText),
		}),
		Methodology: methodologyTag(snippet, batch),
	}
}

// combineJobText prefixes the description with the title when one is given;
// the title often carries the strongest seniority and role signal.
func combineJobText(job types.Job) string {
	if job.Title == "" {
		return job.Description
	}
	return job.Title + " " + job.Description
}

func candidateLevelFor(s string) seniority.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return seniority.LevelEntry
	}
	return seniority.Level(s)
}

func methodologyTag(snippet, batch bool) string {
	switch {
	case batch && snippet:
		return "ML-based (snippet - Batch)"
	case batch:
		return "ML-based (full - Batch)"
	case snippet:
		return "ML-based (snippet)"
	default:
		return "ML-based (full description)"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
