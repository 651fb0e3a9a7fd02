package seniority

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	jobInternPatterns = compilePatterns([]string{
		"intern", "internship", "co-op", "co op", "trainee",
	})
	jobPrincipalPatterns = compilePatterns([]string{
		"principal", "staff", "distinguished", "fellow", "chief", "head of", "vp", "director",
	})
	jobEntryPatterns = compilePatterns([]string{
		"entry", "entry-level", "junior", `jr\.?`, "graduate", "new grad",
	})
	jobSeniorPatterns = compilePatterns([]string{
		"senior", `sr\.?`, "lead", "architect", "expert", "specialist",
	})
	jobMidPatterns = compilePatterns([]string{
		"mid-level", "mid level", "associate",
	})

	// Roman-numeral and digit level markers are only meaningful in a job
	// title ("Software Engineer I", "Engineer 2"). In running description
	// text they match far too much, so they never leave the title.
	titleLevelOnePattern = regexp.MustCompile(`\bi\b`)
	titleLevelTwoPattern = regexp.MustCompile(`\b(?:ii|2)\b`)

	// Responsibility phrasing resolves postings whose titles carry no level.
	leadershipPatterns = compilePatterns([]string{
		`mentor(?:ing|ship)?`, `lead(?:ing)? a team`, "manage a team",
		"set technical direction", "drive strategy", "own the roadmap",
		"architecture decisions",
	})
	supportPatterns = compilePatterns([]string{
		"under supervision", "closely supervised", "support the team",
		`shadow(?:ing)?`, "learning opportunities",
	})

	jobYearsPattern = regexp.MustCompile(`(\d+)\+?\s*years`)
)

type jobSignals struct {
	combined string
	title    string

	// years holds the first years-of-experience figure in the posting,
	// or -1 when none is stated.
	years int
}

type jobRule struct {
	name  string
	apply func(s jobSignals) (Level, bool)
}

// jobRules resolve a posting's seniority. Entry indicators run before the
// senior block so that "junior" and level-one title markers are never
// swallowed by broader matches further down the list.
var jobRules = []jobRule{
	{"intern", func(s jobSignals) (Level, bool) {
		if matchAny(jobInternPatterns, s.combined) {
			return LevelIntern, true
		}
		return "", false
	}},
	{"principal-titles", func(s jobSignals) (Level, bool) {
		if matchAny(jobPrincipalPatterns, s.combined) {
			return LevelPrincipal, true
		}
		return "", false
	}},
	{"entry-indicators", func(s jobSignals) (Level, bool) {
		if matchAny(jobEntryPatterns, s.combined) || titleLevelOnePattern.MatchString(s.title) {
			return LevelEntry, true
		}
		return "", false
	}},
	{"senior-indicators", func(s jobSignals) (Level, bool) {
		if matchAny(jobSeniorPatterns, s.combined) {
			if s.years >= 7 {
				return LevelPrincipal, true
			}
			return LevelSenior, true
		}
		return "", false
	}},
	{"mid-indicators", func(s jobSignals) (Level, bool) {
		if matchAny(jobMidPatterns, s.combined) || titleLevelTwoPattern.MatchString(s.title) {
			return LevelMid, true
		}
		return "", false
	}},
	{"years-bands", func(s jobSignals) (Level, bool) {
		switch {
		case s.years >= 10:
			return LevelPrincipal, true
		case s.years >= 7:
			return LevelSenior, true
		case s.years >= 3:
			return LevelMid, true
		case s.years >= 0:
			return LevelEntry, true
		}
		return "", false
	}},
	{"responsibility-language", func(s jobSignals) (Level, bool) {
		if matchAny(leadershipPatterns, s.combined) {
			return LevelSenior, true
		}
		if matchAny(supportPatterns, s.combined) {
			return LevelEntry, true
		}
		return "", false
	}},
	{"default-mid", func(s jobSignals) (Level, bool) {
		return LevelMid, true
	}},
}

// DetectJobSeniority derives the required experience level from a posting's
// title and description.
func DetectJobSeniority(title, description string) Level {
	titleLower := strings.ToLower(title)
	sig := jobSignals{
		combined: strings.TrimSpace(titleLower + " " + strings.ToLower(description)),
		title:    titleLower,
		years:    firstYearsFigure(titleLower + " " + strings.ToLower(description)),
	}
	for _, rule := range jobRules {
		if level, ok := rule.apply(sig); ok {
			return level
		}
	}
	return LevelMid
}

func firstYearsFigure(textLower string) int {
	m := jobYearsPattern.FindStringSubmatch(textLower)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
