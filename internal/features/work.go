package features

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	experienceStartKeywords = []string{"workexperience", "work experience", "experience", "employment history", "professional experience"}
	experienceEndKeywords   = []string{"summary", "projects", "skills", "certifications", "education"}
)

const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec|January|February|March|April|May|June|July|August|September|October|November|December`

// datePattern matches a month-year range such as "Jan 2020 - Present" or
// "June 2021 – March 2023", with optional punctuation after the month.
var datePattern = regexp.MustCompile(`(?i)(` + monthNames + `)\.?,?\s*\d{4}\s*[-–—]\s*(?:(` + monthNames + `)\.?,?\s*\d{4}|Present|Current)`)

type workEntryState struct {
	org         string
	role        string
	duration    string
	description []string
}

func (w workEntryState) started() bool {
	return w.org != "" || w.role != ""
}

// extractWorkExperience walks the experience section with a cursor and
// recognizes three layouts per entry: organization and date on one line, a
// three-line role/organization/date block, and a bare organization line with
// no date. Lines after a recognized header accumulate into the description.
func extractWorkExperience(text, textLower string) []types.WorkEntry {
	start := sectionStart(textLower, experienceStartKeywords)
	if start == -1 {
		return nil
	}
	end := sectionEnd(textLower, start, experienceEndKeywords)
	lines := strings.Split(text[start:end], "\n")

	var entries []types.WorkEntry
	var cur workEntryState

	flush := func() {
		if cur.started() {
			entries = append(entries, types.WorkEntry{
				Organization: orUnknown(cur.org),
				Role:         orUnknown(cur.role),
				Duration:     cur.duration,
				Description:  strings.Join(cur.description, " "),
			})
		}
		cur = workEntryState{}
	}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if line == "" || isExperienceHeader(line) {
			i++
			continue
		}

		// Layout 1: organization and date range share the line, with an
		// optional "Org - Role" or "Org | Role" split before the date.
		if duration := datePattern.FindString(line); duration != "" {
			flush()
			cur.duration = duration
			before := strings.TrimSpace(strings.SplitN(line, duration, 2)[0])
			switch {
			case strings.Contains(before, "-"):
				cur.org, cur.role = splitOrgRole(before, "-")
			case strings.Contains(before, "|"):
				cur.org, cur.role = splitOrgRole(before, "|")
			default:
				cur.org = before
			}
			i++
			continue
		}

		// Layout 2: role on this line, organization next, date range after.
		if i+2 < len(lines) && !hasBulletPrefix(line) {
			nextNext := strings.TrimSpace(lines[i+2])
			if duration := datePattern.FindString(nextNext); duration != "" {
				flush()
				cur.role = line
				cur.org = strings.TrimSpace(lines[i+1])
				cur.duration = duration
				i += 3
				continue
			}
		}

		switch {
		case cur.started() && (hasBulletPrefix(line) || (len(cur.description) > 0 && len(line) > 10)):
			if hasBulletPrefix(line) {
				line = stripBulletGlyph(line)
			}
			cur.description = append(cur.description, line)

		// Layout 3: short undated line with no digits can open an entry as a
		// bare organization.
		case cur.org == "" && !hasBulletPrefix(line):
			if len(strings.Fields(line)) <= 6 && !containsDigit(line) {
				cur = workEntryState{org: line}
			}
		}
		i++
	}
	flush()

	return entries
}

func isExperienceHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range experienceStartKeywords {
		if lower == kw {
			return true
		}
	}
	return false
}

func splitOrgRole(s, sep string) (org, role string) {
	parts := strings.SplitN(s, sep, 2)
	org = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		role = strings.TrimSpace(parts[1])
	}
	return org, role
}

func stripBulletGlyph(line string) string {
	_, size := utf8.DecodeRuneInString(line)
	return strings.TrimSpace(line[size:])
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
