package matching

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/seniority"
)

// Match level and verdict share one set of score bands.
const (
	excellentScore = 80.0
	veryGoodScore  = 65.0
	goodScore      = 50.0
	fairScore      = 35.0
)

// Penalty grades for the seniority warning, and the threshold past which the
// verdict is held down to "good" regardless of the final score.
const (
	severePenalty  = 30.0
	notablePenalty = 15.0
	lightPenalty   = 5.0
	temperPenalty  = 20.0
)

func matchLevelFor(score float64) string {
	switch {
	case score >= excellentScore:
		return "excellent"
	case score >= veryGoodScore:
		return "very-good"
	case score >= goodScore:
		return "good"
	case score >= fairScore:
		return "fair"
	default:
		return "poor"
	}
}

type reasonContext struct {
	similarity float64
	atsScore   float64
	finalScore float64
	penalty    float64
	candidate  seniority.Level
	jobLevel   seniority.Level
	resume     string // lowercased
	job        string // lowercased
}

// buildReasons explains a match in fixed priority order: the seniority
// warning always comes first so a stretched candidate reads it before the
// verdict, then verdict, alignment, ATS quality, and shared skills.
func buildReasons(rc reasonContext) []string {
	var reasons []string

	switch {
	case rc.penalty >= severePenalty:
		reasons = append(reasons, fmt.Sprintf("⚠️ This is a %s-level position, but you're %s-level - significant experience gap", rc.jobLevel, rc.candidate))
	case rc.penalty >= notablePenalty:
		reasons = append(reasons, fmt.Sprintf("⚠️ This %s-level role may require more experience than you have (%s-level)", rc.jobLevel, rc.candidate))
	case rc.penalty >= lightPenalty:
		reasons = append(reasons, fmt.Sprintf("This is a %s-level position - you may need to stretch to meet requirements", rc.jobLevel))
	}

	reasons = append(reasons, verdictFor(rc.finalScore, rc.penalty))

	if rc.similarity >= 0.7 {
		reasons = append(reasons, "Strong semantic alignment between your resume and job requirements")
	} else if rc.similarity >= 0.5 {
		reasons = append(reasons, "Moderate alignment with job requirements")
	}

	if rc.atsScore >= 80 {
		reasons = append(reasons, "Your resume is well-optimized for ATS systems")
	} else if rc.atsScore >= 60 {
		reasons = append(reasons, "Good resume quality supports your application")
	}

	if matched := matchedTechTerms(rc.resume, rc.job); len(matched) > 0 {
		reasons = append(reasons, "Matching skills: "+strings.Join(matched, ", "))
	}

	return reasons
}

// verdictFor bands the final score. A penalty at or past temperPenalty caps
// the verdict at the "good" wording: a heavily penalized match should not
// read as a strong recommendation even when the arithmetic clears 80.
func verdictFor(score, penalty float64) string {
	if penalty >= temperPenalty && score >= veryGoodScore {
		return "Good match - worth applying"
	}
	switch {
	case score >= excellentScore:
		return "Excellent match - highly recommended to apply"
	case score >= veryGoodScore:
		return "Very good match for your profile"
	case score >= goodScore:
		return "Good match - worth applying"
	case score >= fairScore:
		return "Moderate match - review requirements carefully"
	default:
		return "Limited match - may not be the best fit"
	}
}

// Technical vocabulary surfaced in the "Matching skills" reason.
var techTerms = []string{
	"python", "java", "javascript", "react", "node", "sql", "aws",
	"machine learning", "data", "api", "cloud", "agile", "docker",
}

type techTerm struct {
	term string
	re   *regexp.Regexp
}

// techTermsByLength holds the vocabulary ordered longest term first, so that
// once "react native" has matched, a bare "react" inside it is not counted
// again.
var techTermsByLength = compileTechTerms(techTerms)

func compileTechTerms(terms []string) []techTerm {
	ordered := make([]string, len(terms))
	copy(ordered, terms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	compiled := make([]techTerm, 0, len(ordered))
	for _, t := range ordered {
		compiled = append(compiled, techTerm{
			term: t,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`),
		})
	}
	return compiled
}

// matchedTechTerms returns up to three terms present in both texts, longest
// first. A term that only occurs as part of an already-matched longer phrase
// ("react" inside "react native") is skipped. Texts must be lowercased.
func matchedTechTerms(resume, job string) []string {
	var matched []string
	for _, t := range techTermsByLength {
		if coveredBy(matched, t.re) {
			continue
		}
		if t.re.MatchString(resume) && t.re.MatchString(job) {
			matched = append(matched, t.term)
		}
	}
	if len(matched) > 3 {
		matched = matched[:3]
	}
	return matched
}

func coveredBy(matched []string, re *regexp.Regexp) bool {
	for _, m := range matched {
		if re.MatchString(m) {
			return true
		}
	}
	return false
}
