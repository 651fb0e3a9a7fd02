package checks

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/features"
)

// collectIssues itemizes findings in a fixed category order so repeated runs
// over the same text produce identical reports.
func collectIssues(lower string, words []string, rec *features.Record) []Issue {
	var issues []Issue

	if found := foundPhrases(buzzwordTable, lower); len(found) > 0 {
		issues = append(issues, Issue{
			Category: "Buzzwords & Clichés",
			Severity: "medium",
			Count:    len(found),
			Examples: head(found, 3),
			Message:  fmt.Sprintf("Found %d vague buzzwords that add little value", len(found)),
		})
	}

	if found := foundPhrases(weakPhraseTable, lower); len(found) > 0 {
		issues = append(issues, Issue{
			Category: "Weak Phrases",
			Severity: "medium",
			Count:    len(found),
			Examples: head(found, 3),
			Message:  fmt.Sprintf("Found %d weak/passive phrases - use strong action verbs", len(found)),
		})
	}

	if found := misspelledWords(words); len(found) > 0 {
		issues = append(issues, Issue{
			Category: "Spelling",
			Severity: "high",
			Count:    len(found),
			Examples: head(found, 3),
			Message:  fmt.Sprintf("Found %d spelling errors", len(found)),
		})
	}

	if n := countPronouns(words); n > 5 {
		issues = append(issues, Issue{
			Category: "Personal Pronouns",
			Severity: "low",
			Count:    n,
			Message:  fmt.Sprintf("Used %d personal pronouns (I, me, my) - avoid in resumes", n),
		})
	}

	// Overused verbs surface in vocabulary order to keep output stable.
	for _, verb := range rec.ActionVerbs {
		count, ok := rec.RepetitiveVerbs[verb]
		if !ok {
			continue
		}
		issues = append(issues, Issue{
			Category: "Repetition",
			Severity: "medium",
			Verb:     verb,
			Count:    count,
			Message:  fmt.Sprintf("Action verb %q used %d times (max 2 recommended)", capitalize(verb), count),
		})
	}

	if found := foundPhrases(outdatedSectionTable, lower); len(found) > 0 {
		issues = append(issues, Issue{
			Category: "Unnecessary Sections",
			Severity: "high",
			Examples: found,
			Message:  "Found outdated sections: " + strings.Join(found, ", "),
		})
	}

	return issues
}

func collectWarnings(rec *features.Record, r *Report) []string {
	var warnings []string

	if r.QuantificationScore < 10 {
		ratio := float64(rec.QuantifiedBullets) / float64(max(len(rec.Bullets), 1))
		warnings = append(warnings, fmt.Sprintf("Only %d%% of bullets are quantified - aim for 50%%+", int(ratio*100)))
	}

	if r.LengthScore < 6 {
		if rec.WordCount < 300 {
			warnings = append(warnings, fmt.Sprintf("Resume too short (%d words) - aim for 400-800 words", rec.WordCount))
		} else {
			warnings = append(warnings, fmt.Sprintf("Resume too long (%d words) - aim for 400-800 words", rec.WordCount))
		}
	}

	if r.StructureScore < 10 {
		warnings = append(warnings, "Missing key resume sections (Experience, Education, Skills)")
	}

	if r.DateFormatScore < 7 {
		warnings = append(warnings, "Inconsistent date formatting throughout resume")
	}

	return warnings
}

func collectStrengths(rec *features.Record, r *Report) []string {
	var strengths []string

	if r.BuzzwordScore >= 9 {
		strengths = append(strengths, "No ineffective buzzwords or clichés found")
	}
	if r.SpellingScore >= 9 {
		strengths = append(strengths, "No spelling errors detected")
	}
	if r.OutdatedSectionsScore >= 9 {
		strengths = append(strengths, "No outdated or unnecessary sections")
	}
	if r.DateFormatScore >= 9 {
		strengths = append(strengths, "Consistent date formatting throughout")
	}
	if r.QuantificationScore >= 13 {
		strengths = append(strengths, "Excellent quantification of achievements")
	}
	if r.ImpactScore >= 8 {
		strengths = append(strengths, "Strong use of impact-oriented language")
	}
	if len(rec.Sections) >= 5 {
		strengths = append(strengths, "Well-structured with comprehensive sections")
	}

	return strengths
}

// overallScore blends the checks, weighting spelling, impact, and
// quantification heaviest. Every check is normalized as if it were out of
// 10, so the two 15-point categories can push a strong resume to the cap.
func overallScore(r *Report) float64 {
	weighted := []struct{ score, weight float64 }{
		{r.StructureScore, 1.2},
		{r.FormattingScore, 0.8},
		{r.BuzzwordScore, 1.0},
		{r.WeakPhrasesScore, 1.0},
		{r.GrammarScore, 1.0},
		{r.SpellingScore, 1.5},
		{r.PronounScore, 0.5},
		{r.DateFormatScore, 1.0},
		{r.OutdatedSectionsScore, 1.2},
		{r.ImpactScore, 1.3},
		{r.QuantificationScore, 1.5},
		{r.LengthScore, 0.8},
		{r.DensityScore, 0.5},
	}
	var total, totalWeight float64
	for _, w := range weighted {
		total += w.score * w.weight
		totalWeight += w.weight * 10
	}
	return math.Round(min(100, total/totalWeight*100)*10) / 10
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
