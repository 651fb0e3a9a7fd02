package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Keyword fallback weights. With no embedding the overlap ratio carries most
// of the score and the ATS bonus grows to compensate.
const (
	keywordMaxPoints     = 60.0
	keywordATSMaxPoints  = 40.0
	keywordMinWordLength = 4
)

// keywordMatch is the no-encoder path: score by vocabulary overlap between
// the resume and the job description. Words of three characters or fewer are
// ignored, which drops most stopwords without a stopword list.
func (m *Matcher) keywordMatch(resumeText string, job types.Job, opts Options) *types.MatchResult {
	resumeWords := significantWords(resumeText)
	jobWords := significantWords(job.Description)

	common := 0
	for w := range jobWords {
		if resumeWords[w] {
			common++
		}
	}
	overlap := 0.0
	if len(jobWords) > 0 {
		overlap = float64(common) / float64(len(jobWords))
	}

	keywordScore := overlap * keywordMaxPoints
	ats := opts.ATSScore / 100 * keywordATSMaxPoints
	total := clamp(keywordScore+ats, 0, 100)

	return &types.MatchResult{
		Success:         true,
		MatchScore:      round1(total),
		KeywordOverlap:  round1(overlap * 100),
		ATSContribution: round1(ats),
		MatchLevel:      matchLevelFor(total),
		Reasons:         []string{fmt.Sprintf("Keyword overlap: %d common terms", common)},
		Methodology:     "Keyword-based (fallback)",
	}
}

func significantWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) >= keywordMinWordLength {
			words[w] = true
		}
	}
	return words
}
