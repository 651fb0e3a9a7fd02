package checks

import "regexp"

// Cliches that state a virtue instead of demonstrating one. Matching is
// word-bounded, so "proactive" does not fire on "proactively".
var buzzwordTable = compilePhrases([]string{
	"team player", "hard worker", "detail-oriented", "results-driven",
	"self-starter", "go-getter", "think outside the box", "synergy",
	"passionate", "dynamic", "innovative thinker", "excellent communication",
	"hard-working", "motivated", "dedicated", "responsible for",
	"duties included", "strategic thinker", "proven track record",
	"best of breed", "go-to person", "proactive", "team-oriented",
	"highly motivated", "fast-paced environment", "self-motivated",
	"goal-oriented", "results oriented", "strong work ethic",
})

// Passive openers that bury the candidate's own contribution.
var weakPhraseTable = compilePhrases([]string{
	"helped with", "assisted in", "worked on", "participated in",
	"responsible for", "duties included", "was involved in",
	"tried to", "attempted to", "tasked with",
})

// Sections that date a resume or invite bias. Word-bounded so "age" flags an
// Age line, not "manager".
var outdatedSectionTable = compilePhrases([]string{
	"references", "references available upon request",
	"objective", "hobbies", "interests", "personal information",
	"marital status", "age", "photo", "nationality",
})

// Verbs that signal a measured outcome rather than an activity.
var impactVerbTable = compilePhrases([]string{
	"increased", "decreased", "reduced", "improved", "enhanced",
	"generated", "delivered", "achieved", "exceeded", "transformed",
	"launched", "pioneered", "spearheaded", "accelerated", "optimized",
	"streamlined", "doubled", "tripled", "boosted", "elevated",
})

// Misspellings that spellcheckers in exported PDFs never caught.
var commonMisspellings = map[string]string{
	"recieve": "receive", "acheive": "achieve", "occured": "occurred",
	"managment": "management", "seperate": "separate", "definately": "definitely",
	"accomodate": "accommodate", "embarass": "embarrass", "concensus": "consensus",
	"existance": "existence", "maintainance": "maintenance", "occassion": "occasion",
	"neccessary": "necessary", "publically": "publicly", "sucessful": "successful",
}

var personalPronouns = map[string]bool{
	"i": true, "me": true, "my": true, "we": true, "us": true, "our": true,
}

type phrasePattern struct {
	phrase string
	re     *regexp.Regexp
}

// compilePhrases builds word-bounded matchers in declaration order, which
// keeps issue examples stable between runs.
func compilePhrases(phrases []string) []phrasePattern {
	out := make([]phrasePattern, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, phrasePattern{
			phrase: p,
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`),
		})
	}
	return out
}

// foundPhrases returns the phrases present in text, in table order.
func foundPhrases(table []phrasePattern, text string) []string {
	var found []string
	for _, p := range table {
		if p.re.MatchString(text) {
			found = append(found, p.phrase)
		}
	}
	return found
}
