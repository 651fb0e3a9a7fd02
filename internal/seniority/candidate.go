package seniority

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	studentPatterns = compilePatterns([]string{
		"3rd year", "third year", "4th year", "fourth year",
		"undergraduate", "pursuing", "expected graduation",
		"currently studying", "student at", "bachelor's student",
		"master's student", `expected 202\d`, `graduating 202\d`,
	})
	candidateSeniorPatterns = compilePatterns([]string{
		"senior", "lead", "principal", "staff", "architect", "head of",
	})
	candidateMidPatterns = compilePatterns([]string{
		"associate", "mid-level", "mid level",
	})
	candidateEntryPatterns = compilePatterns([]string{
		"junior", "entry", "entry-level", "graduate", "intern", "trainee",
	})
	principalStaffPatterns = compilePatterns([]string{"principal", "staff"})

	explicitYearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`)
	dateRangePattern     = regexp.MustCompile(`(20\d{2})\s*[-–—]\s*(20\d{2}|present|current)`)
)

const maxYears = 20

type candidateSignals struct {
	years   int
	bullets int

	student        bool
	entry          bool
	mid            bool
	senior         bool
	principalStaff bool
}

type candidateRule struct {
	name  string
	apply func(s candidateSignals) (Level, int, bool)
}

// candidateRules fire in order; the bullet-density fallback only matters
// when no keyword or years signal resolved the level first.
var candidateRules = []candidateRule{
	{"student-indicators", func(s candidateSignals) (Level, int, bool) {
		if s.student {
			return LevelStudent, 0, true
		}
		return "", 0, false
	}},
	{"entry-signals", func(s candidateSignals) (Level, int, bool) {
		if s.entry || s.years < 2 {
			return LevelEntry, s.years, true
		}
		return "", 0, false
	}},
	{"senior-signals", func(s candidateSignals) (Level, int, bool) {
		if s.senior || s.years >= 7 {
			if s.years >= 10 || s.principalStaff {
				return LevelPrincipal, s.years, true
			}
			return LevelSenior, s.years, true
		}
		return "", 0, false
	}},
	{"mid-signals", func(s candidateSignals) (Level, int, bool) {
		if s.mid || s.years >= 3 {
			return LevelMid, max(s.years, 3), true
		}
		return "", 0, false
	}},
	{"bullet-density", func(s candidateSignals) (Level, int, bool) {
		switch {
		case s.bullets >= 25:
			return LevelSenior, max(s.years, 7), true
		case s.bullets >= 15:
			return LevelMid, max(s.years, 3), true
		}
		return "", 0, false
	}},
	{"default-entry", func(s candidateSignals) (Level, int, bool) {
		return LevelEntry, s.years, true
	}},
}

// ClassifyCandidate assigns an experience level and estimated years to a
// resume. bulletCount feeds the density fallback for resumes that carry no
// explicit level or years signals.
func ClassifyCandidate(text string, bulletCount int) (Level, int) {
	textLower := strings.ToLower(text)
	sig := candidateSignals{
		years:          EstimateYears(textLower),
		bullets:        bulletCount,
		student:        matchAny(studentPatterns, textLower),
		entry:          matchAny(candidateEntryPatterns, textLower),
		mid:            matchAny(candidateMidPatterns, textLower),
		senior:         matchAny(candidateSeniorPatterns, textLower),
		principalStaff: matchAny(principalStaffPatterns, textLower),
	}
	for _, rule := range candidateRules {
		if level, years, ok := rule.apply(sig); ok {
			return level, years
		}
	}
	return LevelEntry, sig.years
}

// EstimateYears reads explicit "N years of experience" mentions first and
// takes the largest. Without one it sums employment date ranges, with
// "present" and "current" closing at the wall-clock year. The result is
// clamped to [0, 20].
func EstimateYears(textLower string) int {
	years := 0
	for _, m := range explicitYearsPattern.FindAllStringSubmatch(textLower, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years {
			years = n
		}
	}
	if years == 0 {
		currentYear := time.Now().Year()
		for _, m := range dateRangePattern.FindAllStringSubmatch(textLower, -1) {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			end := currentYear
			if m[2] != "present" && m[2] != "current" {
				if parsed, perr := strconv.Atoi(m[2]); perr == nil {
					end = parsed
				}
			}
			if end > start {
				years += end - start
			}
		}
	}
	if years > maxYears {
		years = maxYears
	}
	return years
}
