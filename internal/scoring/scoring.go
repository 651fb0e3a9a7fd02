// Package scoring produces the ATS quality report for a resume: a 0-100
// score with a per-category breakdown, positive insights and deficiency
// recommendations. Scoring is hybrid when an embedding backend is present
// (20 semantic points plus 80 rule points) and falls back to a pure
// rule-based path when it is not.
package scoring

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/seniority"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Scorer evaluates resumes. A nil encoder selects the rule-only path.
type Scorer struct {
	enc embedding.Encoder
}

// Options adjust a single scoring run.
type Options struct {
	// TargetLevel overrides the auto-detected experience level. Valid
	// values are entry, mid and senior.
	TargetLevel string
}

// NewScorer creates a Scorer. enc may be nil.
func NewScorer(enc embedding.Encoder) *Scorer {
	return &Scorer{enc: enc}
}

// Score analyzes the resume text and assembles the full quality report.
// Malformed input never errors: an empty text yields a failed report and
// every extraction miss simply scores zero in its category.
func (s *Scorer) Score(ctx context.Context, text string, opts Options) *types.QualityReport {
	if strings.TrimSpace(text) == "" {
		return &types.QualityReport{
			Success: false,
			Error:   "No text provided for analysis",
		}
	}

	rec := features.Extract(text)
	detectedLevel, detectedYears := seniority.ClassifyCandidate(text, len(rec.Bullets))
	level := normalizeScoringLevel(opts.TargetLevel, detectedLevel)

	var (
		atsScore  float64
		breakdown map[string]float64
	)
	switch {
	case s.enc == nil:
		atsScore = ruleOnlyScore(rec)
		breakdown = map[string]float64{"total_score": round1(atsScore)}
	default:
		mlScore, err := s.semanticScore(ctx, text)
		if err != nil {
			log.Printf("semantic scoring unavailable, falling back to rules: %v", err)
			atsScore = ruleOnlyScore(rec)
			breakdown = map[string]float64{"total_score": round1(atsScore)}
		} else {
			breakdown = hybridBreakdown(rec, level, mlScore)
			atsScore = breakdown["total_score"]
		}
	}

	status, statusMessage := statusFor(atsScore)

	return &types.QualityReport{
		Success:         true,
		Score:           round1(atsScore),
		Status:          status,
		StatusMessage:   statusMessage,
		Insights:        generateInsights(rec, atsScore, level),
		Recommendations: generateRecommendations(rec, atsScore, level),
		ScoreBreakdown:  breakdown,
		Metrics: &types.Metrics{
			WordCount:           rec.WordCount,
			SectionsFound:       len(rec.Sections),
			SkillsFound:         len(rec.Skills),
			ActionVerbs:         len(rec.ActionVerbs),
			QuantifiableMetrics: len(rec.Numbers),
			ContactInfoPresent:  rec.HasContact,
			TotalBullets:        len(rec.Bullets),
			QuantifiedBullets:   rec.QuantifiedBullets,
		},
		ExtractedInfo: &types.ExtractedInfo{
			Name:              rec.Name,
			Email:             rec.Email,
			Phone:             rec.Phone,
			Location:          rec.Location,
			LinkedIn:          rec.LinkedIn,
			GitHub:            rec.GitHub,
			Skills:            nonNil(rec.Skills),
			Sections:          nonNil(rec.Sections),
			Education:         nonNil(rec.Education),
			WorkExperience:    nonNil(rec.WorkExperience),
			Projects:          nonNil(rec.Projects),
			ExperienceLevel:   string(detectedLevel),
			YearsOfExperience: detectedYears,
		},
	}
}

// normalizeScoringLevel resolves the level the category tables are keyed
// by. Detected student and principal levels have no scoring table of their
// own and normalize to entry, as does anything else unrecognized.
func normalizeScoringLevel(target string, detected seniority.Level) seniority.Level {
	level := detected
	if target != "" {
		level = seniority.Level(target)
	}
	switch level {
	case seniority.LevelEntry, seniority.LevelMid, seniority.LevelSenior:
		return level
	}
	return seniority.LevelEntry
}

func statusFor(score float64) (string, string) {
	switch {
	case score >= 85:
		return "excellent", "Outstanding! Your resume is exceptionally well-optimized for ATS systems"
	case score >= 75:
		return "very-good", "Great! Your resume is very well-optimized for ATS systems"
	case score >= 65:
		return "good", "Good! Your resume is well-structured with minor improvements needed"
	case score >= 55:
		return "fair", "Fair - Your resume has good foundations but needs key improvements"
	case score >= 45:
		return "needs-improvement", "Needs improvement - Follow the recommendations to strengthen your resume"
	default:
		return "poor", "Significant improvements needed - Focus on the top recommendations first"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
