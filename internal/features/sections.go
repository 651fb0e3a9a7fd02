package features

import "strings"

// sectionRule maps a canonical section tag to the synonyms that mark it.
// The slice order fixes the order of the detected-sections list.
type sectionRule struct {
	tag      string
	keywords []string
}

var sectionRules = []sectionRule{
	{"experience", []string{"experience", "work history", "employment", "professional experience", "workexperience"}},
	{"education", []string{"education", "academic", "qualifications", "degree"}},
	{"skills", []string{"skills", "technical skills", "competencies", "abilities", "expertise"}},
	{"summary", []string{"summary", "objective", "profile", "about"}},
	{"projects", []string{"projects", "portfolio", "work samples"}},
	{"certifications", []string{"certifications", "certificates", "licenses"}},
}

func detectSections(textLower string) []string {
	var found []string
	for _, rule := range sectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(textLower, kw) {
				found = append(found, rule.tag)
				break
			}
		}
	}
	return found
}

// sectionStart tries the keywords in priority order and returns the index
// of the first one present, or -1 when none occur.
func sectionStart(textLower string, keywords []string) int {
	for _, kw := range keywords {
		if idx := strings.Index(textLower, kw); idx != -1 {
			return idx
		}
	}
	return -1
}

// sectionEnd locates where a section stops: the nearest end keyword found at
// least 50 characters past the section start, so the header line itself never
// terminates its own section. Returns len(textLower) when no keyword follows.
func sectionEnd(textLower string, start int, endKeywords []string) int {
	searchFrom := start + 50
	if searchFrom >= len(textLower) {
		return len(textLower)
	}
	end := len(textLower)
	for _, kw := range endKeywords {
		if idx := strings.Index(textLower[searchFrom:], kw); idx != -1 {
			if searchFrom+idx < end {
				end = searchFrom + idx
			}
		}
	}
	return end
}
