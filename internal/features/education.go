package features

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	educationStartKeywords = []string{"education", "academic background", "qualifications"}
	educationEndKeywords   = []string{"work experience", "workexperience", "experience", "projects", "skills", "certifications"}

	// Institution patterns cover Indian institute abbreviations plus general
	// university naming.
	institutionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(IIIT\s+[A-Z][a-z]+(?:,\s*[A-Z]{2,3})?)`),
		regexp.MustCompile(`(?i)(IIT\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)(NIT\s+[A-Z][a-z]+)`),
		regexp.MustCompile(`(?i)([A-Z][A-Za-z\s]+(?:University|College|Institute|School)[^.\n]*)`),
	}

	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(B\.?Tech|Bachelor|B\.?E\.?|B\.?S\.?)\b`),
		regexp.MustCompile(`(?i)\b(M\.?Tech|Master|M\.?E\.?|M\.?S\.?)\b`),
		regexp.MustCompile(`(?i)\b(Ph\.?D\.?|Doctorate)\b`),
	}

	fieldKeywords = []string{
		"computer science", "cse", "electrical", "mechanical", "civil",
		"electronics", "information technology", "data science", "ai", "ml",
	}

	yearPattern = regexp.MustCompile(`20\d{2}|202[0-9]`)
)

// extractEducation locates the education section and condenses it into a
// single primary entry. Missing degree or field fall back to the most common
// values rather than empty strings.
func extractEducation(text, textLower string) []types.EducationEntry {
	start := sectionStart(textLower, educationStartKeywords)
	if start == -1 {
		return nil
	}
	end := sectionEnd(textLower, start, educationEndKeywords)
	sectionText := text[start:end]

	var institutions []string
	for _, re := range institutionPatterns {
		for _, m := range re.FindAllStringSubmatch(sectionText, -1) {
			institutions = append(institutions, m[1])
		}
	}

	var degrees []string
	for _, re := range degreePatterns {
		for _, m := range re.FindAllStringSubmatch(sectionText, -1) {
			degrees = append(degrees, m[1])
		}
	}

	var fields []string
	sectionLower := strings.ToLower(sectionText)
	for _, kw := range fieldKeywords {
		if strings.Contains(sectionLower, kw) {
			if kw == "cse" {
				fields = append(fields, strings.ToUpper(kw))
			} else {
				fields = append(fields, titleCase(kw))
			}
		}
	}

	years := yearPattern.FindAllString(sectionText, -1)

	if len(institutions) == 0 && len(degrees) == 0 {
		return nil
	}

	entry := types.EducationEntry{Degree: "B.Tech", Field: "Computer Science"}
	if len(degrees) > 0 {
		entry.Degree = degrees[0]
	}
	if len(fields) > 0 {
		entry.Field = fields[0]
	}
	if len(institutions) > 0 {
		entry.Institution = institutions[0]
	}
	if len(years) > 0 {
		entry.GraduationYear = years[len(years)-1]
	}
	return []types.EducationEntry{entry}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
