// Package checks runs editorial quality checks over a resume: cliches, weak
// phrasing, misspellings, pronouns, date-format drift, outdated sections,
// and impact language. Each check produces a small capped score and the
// package blends them into a weighted overall, alongside itemized issues,
// warnings, and strengths. It complements the scoring package, which grades
// ATS mechanics rather than prose quality.
package checks

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-scorer/internal/features"
)

// Issue is one concrete finding, itemized for display.
type Issue struct {
	Category string   `json:"category"`
	Severity string   `json:"severity"`
	Count    int      `json:"count,omitempty"`
	Verb     string   `json:"verb,omitempty"`
	Examples []string `json:"examples,omitempty"`
	Message  string   `json:"message"`
}

// Report carries every per-check score plus the collected findings. Score
// maxima vary by check: structure and quantification top out at 15, pronoun
// and density at 5, the rest at 10.
type Report struct {
	StructureScore        float64 `json:"structure_score"`
	FormattingScore       float64 `json:"formatting_score"`
	BuzzwordScore         float64 `json:"buzzword_score"`
	WeakPhrasesScore      float64 `json:"weak_phrases_score"`
	GrammarScore          float64 `json:"grammar_score"`
	SpellingScore         float64 `json:"spelling_score"`
	PronounScore          float64 `json:"pronoun_score"`
	DateFormatScore       float64 `json:"date_format_score"`
	OutdatedSectionsScore float64 `json:"outdated_sections_score"`
	ImpactScore           float64 `json:"impact_score"`
	QuantificationScore   float64 `json:"quantification_score"`
	LengthScore           float64 `json:"length_score"`
	DensityScore          float64 `json:"density_score"`
	OverallScore          float64 `json:"overall_score"`

	Issues    []Issue  `json:"issues_found"`
	Warnings  []string `json:"warnings"`
	Strengths []string `json:"strengths"`
}

var (
	wordPattern     = regexp.MustCompile(`\b\w+\b`)
	sentenceSplit   = regexp.MustCompile(`[.!?]\s+`)
	bulletGlyphLine = regexp.MustCompile(`^\s*([•\-\*◦▪○●])\s+`)
	bulletLine      = regexp.MustCompile(`^\s*[•\-\*◦▪]\s+`)
)

// Run checks the resume text against every table. rec supplies the counts
// that were already extracted (bullets, sections, word count); the text is
// rescanned only for signals the extractor does not keep.
func Run(text string, rec *features.Record) *Report {
	lower := strings.ToLower(text)
	words := wordPattern.FindAllString(lower, -1)

	r := &Report{
		StructureScore:        structureScore(rec),
		FormattingScore:       formattingScore(text),
		BuzzwordScore:         buzzwordScore(lower),
		WeakPhrasesScore:      weakPhraseScore(lower),
		GrammarScore:          grammarScore(text),
		SpellingScore:         spellingScore(words),
		PronounScore:          pronounScore(words),
		DateFormatScore:       dateFormatScore(text),
		OutdatedSectionsScore: outdatedSectionScore(lower),
		ImpactScore:           impactScore(lower),
		QuantificationScore:   quantificationScore(rec),
		LengthScore:           lengthScore(rec.WordCount),
		DensityScore:          densityScore(text),
	}
	r.Issues = nonNil(collectIssues(lower, words, rec))
	r.Warnings = nonNil(collectWarnings(rec, r))
	r.Strengths = nonNil(collectStrengths(rec, r))
	r.OverallScore = overallScore(r)
	return r
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// structureScore awards 10 points for the three required sections pro rata,
// plus up to 5 for the recommended ones.
func structureScore(rec *features.Record) float64 {
	required := []string{"experience", "education", "skills"}
	recommended := []string{"summary", "projects", "certifications"}

	present := make(map[string]bool, len(rec.Sections))
	for _, s := range rec.Sections {
		present[strings.ToLower(s)] = true
	}

	reqFound := 0
	for _, s := range required {
		if present[s] {
			reqFound++
		}
	}
	recFound := 0
	for _, s := range recommended {
		if present[s] {
			recFound++
		}
	}
	return 10*float64(reqFound)/float64(len(required)) +
		5*float64(recFound)/float64(len(recommended))
}

// formattingScore starts at 10 and deducts for mixed bullet glyphs and
// uneven blank-line spacing.
func formattingScore(text string) float64 {
	lines := strings.Split(text, "\n")

	glyphs := make(map[string]bool)
	for _, line := range lines {
		if m := bulletGlyphLine.FindStringSubmatch(line); m != nil {
			glyphs[m[1]] = true
		}
	}
	score := 10.0
	if len(glyphs) > 2 {
		score -= 3
	}

	// Lengths of blank-line runs between content; a trailing run does not
	// count.
	runLengths := make(map[int]bool)
	run := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			run++
			continue
		}
		if run > 0 {
			runLengths[run] = true
		}
		run = 0
	}
	if len(runLengths) > 2 {
		score -= 2
	}
	return max(0, score)
}

func buzzwordScore(lower string) float64 {
	n := len(foundPhrases(buzzwordTable, lower))
	return max(0, 10-float64(n)*2)
}

func weakPhraseScore(lower string) float64 {
	n := len(foundPhrases(weakPhraseTable, lower))
	return max(0, 10-float64(n)*2.5)
}

// grammarScore applies three cheap heuristics: doubled spaces, sentences
// opening in lowercase, and long bullets with no terminal punctuation.
func grammarScore(text string) float64 {
	score := 10.0
	if strings.Contains(text, "  ") {
		score--
	}

	lowercaseStarts := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		r, _ := utf8.DecodeRuneInString(s)
		if unicode.IsLower(r) {
			lowercaseStarts++
		}
	}
	if lowercaseStarts > 2 {
		score -= 2
	}

	unpunctuated := 0
	for _, line := range strings.Split(text, "\n") {
		if !bulletLine.MatchString(line) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 50 && !strings.HasSuffix(trimmed, ".") &&
			!strings.HasSuffix(trimmed, "!") && !strings.HasSuffix(trimmed, "?") {
			unpunctuated++
		}
	}
	if unpunctuated > 5 {
		score -= 2
	}
	return max(0, score)
}

func spellingScore(words []string) float64 {
	n := len(misspelledWords(words))
	return max(0, 10-float64(n)*2)
}

// misspelledWords returns distinct misspellings in first-seen order.
func misspelledWords(words []string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, w := range words {
		if _, bad := commonMisspellings[w]; bad && !seen[w] {
			seen[w] = true
			found = append(found, w)
		}
	}
	return found
}

// pronounScore tolerates a couple of pronouns (a summary line often has
// one), then decays.
func pronounScore(words []string) float64 {
	n := countPronouns(words)
	switch {
	case n <= 2:
		return 5
	case n <= 5:
		return 3
	default:
		return max(0, 5-float64(n-5)*0.5)
	}
}

func countPronouns(words []string) int {
	n := 0
	for _, w := range words {
		if personalPronouns[w] {
			n++
		}
	}
	return n
}

// The recognized date notations. A bare year also matches inside "Jan 2020",
// so any month-plus-year resume registers two formats and lands on 7.
var dateFormats = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{4}\b`),
	regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`),
}

func dateFormatScore(text string) float64 {
	formats := 0
	for _, re := range dateFormats {
		if re.MatchString(text) {
			formats++
		}
	}
	switch formats {
	case 0:
		return 5
	case 1:
		return 10
	case 2:
		return 7
	default:
		return 3
	}
}

func outdatedSectionScore(lower string) float64 {
	n := len(foundPhrases(outdatedSectionTable, lower))
	return max(0, 10-float64(n)*5)
}

func impactScore(lower string) float64 {
	n := len(foundPhrases(impactVerbTable, lower))
	switch {
	case n >= 8:
		return 10
	case n >= 5:
		return 8
	case n >= 3:
		return 6
	default:
		return float64(n) * 2
	}
}

func quantificationScore(rec *features.Record) float64 {
	total := len(rec.Bullets)
	if total == 0 {
		return 10
	}
	ratio := float64(rec.QuantifiedBullets) / float64(total)
	switch {
	case ratio >= 0.7:
		return 15
	case ratio >= 0.5:
		return 13
	case ratio >= 0.35:
		return 10
	case ratio >= 0.2:
		return 7
	default:
		return 4
	}
}

func lengthScore(wordCount int) float64 {
	switch {
	case wordCount >= 400 && wordCount <= 800:
		return 10
	case wordCount >= 350 && wordCount < 400:
		return 8
	case wordCount >= 300 && wordCount < 350:
		return 6
	case wordCount > 800 && wordCount <= 1000:
		return 8
	case wordCount > 1000 && wordCount <= 1200:
		return 6
	case wordCount < 300:
		return 3
	default:
		return 4
	}
}

// densityScore rewards a 60-80% ratio of content lines to total lines;
// denser text reads as a wall, sparser as padding.
func densityScore(text string) float64 {
	lines := strings.Split(text, "\n")
	nonEmpty := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	density := float64(nonEmpty) / float64(len(lines))
	switch {
	case density >= 0.6 && density <= 0.8:
		return 5
	case density >= 0.5 && density < 0.6, density > 0.8 && density <= 0.85:
		return 4
	case density > 0.9:
		return 2
	default:
		return 3
	}
}
