// Package seniority classifies candidate and job experience levels and
// prices the gap between them. Precedence among overlapping signals is
// data: both classifiers evaluate an ordered rule list, and the first rule
// that fires decides the level.
package seniority

import "regexp"

// Level is a coarse experience band shared by candidates and job postings.
type Level string

const (
	LevelStudent   Level = "student"
	LevelIntern    Level = "intern"
	LevelEntry     Level = "entry"
	LevelMid       Level = "mid"
	LevelSenior    Level = "senior"
	LevelPrincipal Level = "principal"
)

var levelRank = map[Level]int{
	LevelIntern:    0,
	LevelStudent:   0,
	LevelEntry:     1,
	LevelMid:       2,
	LevelSenior:    3,
	LevelPrincipal: 4,
}

// CandidateRank maps a level to its position in the seniority order.
// Unknown levels rank as entry.
func CandidateRank(l Level) int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return 1
}

// JobRank is like CandidateRank but unknown levels rank as mid, the default
// assumption for an unlabeled posting.
func JobRank(l Level) int {
	if r, ok := levelRank[l]; ok {
		return r
	}
	return 2
}

// compilePatterns wraps each fragment in word boundaries so that keywords
// like "intern" never fire inside "internal". Fragments may carry their own
// regex syntax, e.g. "expected 202\d".
func compilePatterns(fragments []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(fragments))
	for _, f := range fragments {
		patterns = append(patterns, regexp.MustCompile(`\b(?:`+f+`)\b`))
	}
	return patterns
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
