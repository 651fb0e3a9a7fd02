package features

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	projectKeywords    = []string{"projects", "portfolio", "work samples", "key projects", "personal projects"}
	projectEndKeywords = []string{"education", "experience", "skills", "certifications", "languages", "links", "achievements", "summary"}

	linkPrefixes = []string{"http", "github", "gitlab", "link"}
)

// headerPattern anchors a section keyword to a line start with at most a
// small prefix, so a passing mention mid-sentence does not open a section.
func headerPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)(?:^|\n)\s{0,5}(` + regexp.QuoteMeta(keyword) + `)\b`)
}

var (
	projectHeaderPatterns    = compileHeaderPatterns(projectKeywords)
	projectEndHeaderPatterns = compileHeaderPatterns(projectEndKeywords)
)

func compileHeaderPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, headerPattern(kw))
	}
	return patterns
}

func hasLinkPrefix(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range linkPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// extractProjects parses "Name | Technologies" headers inside the projects
// section, merging wrapped technology lists, an optional subtitle line and
// the bullet description that follows each header.
func extractProjects(text, textLower string) []types.ProjectEntry {
	start := -1
	for _, re := range projectHeaderPatterns {
		if loc := re.FindStringSubmatchIndex(textLower); loc != nil {
			start = loc[2]
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := len(text)
	searchFrom := start + 50
	if searchFrom < len(textLower) {
		for _, re := range projectEndHeaderPatterns {
			if loc := re.FindStringIndex(textLower[searchFrom:]); loc != nil {
				if candidate := searchFrom + loc[0]; candidate < end {
					end = candidate
				}
			}
		}
	}

	var lines []string
	for _, l := range strings.Split(text[start:end], "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	var projects []types.ProjectEntry
	i := 0
	for i < len(lines) {
		line := lines[i]

		if containsProjectKeyword(line) {
			i++
			continue
		}
		if !strings.Contains(line, "|") || hasBulletPrefix(line) {
			i++
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		name := strings.TrimSpace(parts[0])
		techParts := []string{strings.TrimSpace(parts[1])}

		// Technology lists wrap across lines; keep consuming while the lines
		// read like comma-separated tech terms.
		j := i + 1
		for j < len(lines) {
			next := lines[j]
			if hasBulletPrefix(next) || hasLinkPrefix(next) || strings.Contains(next, "|") {
				break
			}
			looksTech := strings.Contains(next, ",") ||
				strings.HasSuffix(techParts[len(techParts)-1], ",") ||
				(len(strings.Fields(next)) <= 2 && len(next) < 30)
			if !looksTech {
				break
			}
			techParts = append(techParts, next)
			j++
			if !strings.HasSuffix(next, ",") {
				break
			}
		}
		technology := strings.TrimSpace(strings.Join(techParts, " "))

		var descParts []string
		if j < len(lines) {
			next := lines[j]
			if !hasBulletPrefix(next) && !hasLinkPrefix(next) && !strings.Contains(next, "|") &&
				len(next) > 15 && len(next) < 100 {
				descParts = append(descParts, next)
				j++
			}
		}

		for j < len(lines) {
			next := lines[j]
			if hasBulletPrefix(next) {
				if cleaned := stripBulletGlyph(next); cleaned != "" {
					descParts = append(descParts, cleaned)
				}
				j++
			} else if hasLinkPrefix(next) {
				j++
			} else {
				break
			}
		}

		projects = append(projects, types.ProjectEntry{
			Name:        name,
			Technology:  technology,
			Description: strings.Join(descParts, " "),
		})
		i = j
	}

	return projects
}

func containsProjectKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range projectKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
