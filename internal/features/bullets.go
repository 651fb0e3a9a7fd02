package features

import (
	"regexp"
	"strings"
)

var bulletStart = regexp.MustCompile(`^\s*[•\-\*◦▪]\s+`)

// bulletGlyphs are checked without a trailing-space requirement where a bare
// prefix is enough, e.g. work-entry description lines.
var bulletGlyphs = []string{"-", "•", "*", "◦", "▪"}

func hasBulletPrefix(line string) bool {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return true
		}
	}
	return false
}

// scanBullets walks the resume line by line. A line opening with a bullet
// glyph starts a new bullet; following non-empty, non-bullet lines are merged
// into it as continuations; a blank line or the next glyph closes it.
func scanBullets(lines []string) []string {
	var bullets []string
	var current strings.Builder
	open := false

	flush := func() {
		if open && strings.TrimSpace(current.String()) != "" {
			bullets = append(bullets, strings.TrimSpace(current.String()))
		}
		current.Reset()
		open = false
	}

	for _, line := range lines {
		switch {
		case bulletStart.MatchString(line):
			flush()
			current.WriteString(strings.TrimSpace(line))
			open = true
		case strings.TrimSpace(line) == "":
			flush()
		case open:
			current.WriteString(" ")
			current.WriteString(strings.TrimSpace(line))
		}
	}
	flush()
	return bullets
}
