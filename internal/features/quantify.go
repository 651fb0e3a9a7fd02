package features

import (
	"regexp"
	"strings"
)

var numberPattern = regexp.MustCompile(`\b\d+[%$,kmKMbB]?\b`)

// quantifierPatterns recognize measurable impact inside a bullet: percentages,
// money, scale words, counts of users or artifacts, multipliers, deltas and
// ranges. A bullet counts as quantified when any one of them matches.
var quantifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*%`),
	regexp.MustCompile(`\d+\s*(percent|percentage)`),
	regexp.MustCompile(`\$\s*\d+`),
	regexp.MustCompile(`\d+[\d,]*\s*(million|thousand|billion|k|m|b)\b`),
	regexp.MustCompile(`\d+[\d,]*\+?\s*(users|customers|clients|people|participants|members|students|engineers)`),
	regexp.MustCompile(`\d+[\d,]*\s*(hours|days|weeks|months|years)`),
	regexp.MustCompile(`\d+[\d,]*\s*(projects|features|components|modules|systems|applications|apps)`),
	regexp.MustCompile(`\d+[\d,]*\s*(x|times)`),
	regexp.MustCompile(`(increased|decreased|reduced|improved|boosted|grew|raised|cut|saved|enhanced)\s+\w*\s*by\s*\d+`),
	regexp.MustCompile(`(over|more than|under|less than|up to)\s+\d+`),
	regexp.MustCompile(`\d+[\d,]*\s*(metrics|kpis|tickets|issues|bugs|tests)`),
	regexp.MustCompile(`\d+[\d,]*\s*(revenue|sales|profit|cost|budget)`),
	regexp.MustCompile(`from\s+\d+.*to\s+\d+`),
}

func isQuantified(bullet string) bool {
	lower := strings.ToLower(bullet)
	for _, re := range quantifierPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func countQuantified(bullets []string) int {
	n := 0
	for _, b := range bullets {
		if isQuantified(b) {
			n++
		}
	}
	return n
}
