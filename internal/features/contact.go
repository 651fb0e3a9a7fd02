package features

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// City, State followed by City, ST. The first pattern that hits wins.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?),\s*([A-Z][a-z]+)`),
		regexp.MustCompile(`([A-Z][a-z]+),\s*([A-Z]{2})`),
	}

	linkedinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)linkedin:\s*@?([a-zA-Z0-9-]+)`),
	}
	githubPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)github:\s*@?([a-zA-Z0-9-]+)`),
	}
)

// contactTokens disqualify a line from being the candidate name.
var contactTokens = []string{"email", "phone", "linkedin", "github", "http", "@"}

func firstMatch(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}

// extractName scans the first five non-empty lines for a short line with no
// digits and no contact markers.
func extractName(lines []string) string {
	seen := 0
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if containsDigit(line) {
			continue
		}
		lower := strings.ToLower(line)
		skip := false
		for _, tok := range contactTokens {
			if strings.Contains(lower, tok) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		if len(strings.Fields(line)) <= 4 {
			return line
		}
	}
	return ""
}

func extractLocation(text string) string {
	for _, re := range locationPatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractProfile returns the first captured handle from the given pattern
// list, lowercased.
func extractProfile(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.ToLower(m[1])
		}
	}
	return ""
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
