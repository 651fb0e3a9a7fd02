// Package features turns raw resume text into a structured feature record.
// Extraction never fails on malformed input: every heuristic that finds
// nothing leaves its field empty, and downstream scoring treats absent
// fields as zero credit.
package features

import (
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Record holds every signal extracted from a single resume text.
type Record struct {
	WordCount int

	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string

	// HasContact is true only when both an email and a phone were found.
	HasContact bool

	// Sections contains canonical section tags in detection order.
	Sections []string

	// Bullets holds the full merged text of each bullet, continuation
	// lines included.
	Bullets           []string
	QuantifiedBullets int

	// ActionVerbs lists matched verbs in vocabulary order; VerbFrequency
	// counts occurrences and RepetitiveVerbs keeps those used more than
	// twice.
	ActionVerbs     []string
	VerbFrequency   map[string]int
	RepetitiveVerbs map[string]int

	// Skills is deduplicated with first-seen order preserved.
	Skills []string

	// Numbers collects raw numeric tokens from the whole text.
	Numbers []string

	Education      []types.EducationEntry
	WorkExperience []types.WorkEntry
	Projects       []types.ProjectEntry
}

// Extract parses the resume text and returns the populated feature record.
func Extract(text string) *Record {
	rec := &Record{
		VerbFrequency:   make(map[string]int),
		RepetitiveVerbs: make(map[string]int),
	}
	if strings.TrimSpace(text) == "" {
		return rec
	}

	textLower := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	rec.WordCount = len(strings.Fields(text))
	rec.Name = extractName(lines)
	rec.Email = firstMatch(emailPattern, text)
	rec.Phone = firstMatch(phonePattern, text)
	rec.HasContact = rec.Email != "" && rec.Phone != ""
	rec.Location = extractLocation(text)
	rec.LinkedIn = extractProfile(text, linkedinPatterns)
	rec.GitHub = extractProfile(text, githubPatterns)
	rec.Sections = detectSections(textLower)

	rec.Bullets = scanBullets(lines)
	rec.QuantifiedBullets = countQuantified(rec.Bullets)
	rec.Numbers = numberPattern.FindAllString(text, -1)

	rec.ActionVerbs, rec.VerbFrequency = matchActionVerbs(textLower)
	for verb, count := range rec.VerbFrequency {
		if count > 2 {
			rec.RepetitiveVerbs[verb] = count
		}
	}
	rec.Skills = matchSkills(textLower)

	rec.Education = extractEducation(text, textLower)
	rec.WorkExperience = extractWorkExperience(text, textLower)
	rec.Projects = extractProjects(text, textLower)

	return rec
}
