// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/checks"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQualityReport outputs a human-readable summary of the resume analysis.
func (p *Printer) PrintQualityReport(report *types.QualityReport) {
	if report == nil {
		return
	}
	if !report.Success {
		p.printBox("RESUME QUALITY REPORT", fmt.Sprintf("Analysis failed: %s", report.Error))
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %.1f / 100 (%s)\n", report.Score, report.Status))
	sb.WriteString("\n")

	if report.Metrics != nil {
		m := report.Metrics
		sb.WriteString(fmt.Sprintf("Words: %d   Sections: %d   Skills: %d\n",
			m.WordCount, m.SectionsFound, m.SkillsFound))
		sb.WriteString(fmt.Sprintf("Bullets: %d (%d quantified)   Action verbs: %d\n",
			m.TotalBullets, m.QuantifiedBullets, m.ActionVerbs))
		sb.WriteString("\n")
	}

	if len(report.ScoreBreakdown) > 0 {
		sb.WriteString("Breakdown:\n")
		keys := make([]string, 0, len(report.ScoreBreakdown))
		for k := range report.ScoreBreakdown {
			if k == "total_score" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %-24s %5.1f\n", k, report.ScoreBreakdown[k]))
		}
		sb.WriteString("\n")
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("Top recommendations:\n")
		count := min(len(report.Recommendations), 3)
		for i := 0; i < count; i++ {
			rec := report.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(report.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-3))
		}
	}

	p.printBox("RESUME QUALITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the score and reasoning for a single job match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}
	if !result.Success {
		p.printBox("JOB MATCH RESULT", fmt.Sprintf("Match failed: %s", result.Error))
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %.1f / 100 (%s)\n", result.MatchScore, result.MatchLevel))
	sb.WriteString(fmt.Sprintf("Method:   %s\n", result.Methodology))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Semantic similarity:  %.1f\n", result.SemanticSimilarity))
	if result.KeywordOverlap > 0 {
		sb.WriteString(fmt.Sprintf("Keyword overlap:      %.1f\n", result.KeywordOverlap))
	}
	sb.WriteString(fmt.Sprintf("ATS contribution:     +%.1f\n", result.ATSContribution))
	sb.WriteString(fmt.Sprintf("Seniority penalty:    -%.1f\n", result.SeniorityPenalty))
	if result.CandidateLevel != "" || result.JobLevel != "" {
		sb.WriteString(fmt.Sprintf("Levels:   candidate %s, job %s\n", result.CandidateLevel, result.JobLevel))
	}

	if len(result.Reasons) > 0 {
		sb.WriteString("\nReasons:\n")
		count := min(len(result.Reasons), maxItemsToShow)
		for i := 0; i < count; i++ {
			reason := result.Reasons[i]
			if len(reason) > 50 {
				reason = reason[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
		if len(result.Reasons) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Reasons)-maxItemsToShow))
		}
	}

	p.printBox("JOB MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchResults outputs a ranked-style listing of batch match scores.
// results align positionally with jobs; titles come from the job list since
// match results do not carry them.
func (p *Printer) PrintBatchResults(jobs []types.Job, results []*types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d jobs:\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		title := ""
		if i < len(jobs) {
			title = jobs[i].Title
		}
		if title == "" {
			title = fmt.Sprintf("job %d", i+1)
		}
		if len(title) > 28 {
			title = title[:25] + "..."
		}

		r := results[i]
		if r == nil || !r.Success {
			sb.WriteString(fmt.Sprintf("#%-2d  failed  %s\n", i+1, title))
			continue
		}
		sb.WriteString(fmt.Sprintf("#%-2d %5.1f  %-10s %s\n", i+1, r.MatchScore, r.MatchLevel, title))
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(results)-maxItemsToShow))
	}

	p.printBox("BATCH MATCH RESULTS", sb.String())
}

// PrintChecksReport outputs the editorial check scores and findings.
func (p *Printer) PrintChecksReport(report *checks.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:  %.1f / 100\n\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Structure: %.1f   Formatting: %.1f   Length: %.1f\n",
		report.StructureScore, report.FormattingScore, report.LengthScore))
	sb.WriteString(fmt.Sprintf("Buzzwords: %.1f   Weak phrases: %.1f\n",
		report.BuzzwordScore, report.WeakPhrasesScore))
	sb.WriteString(fmt.Sprintf("Grammar: %.1f   Spelling: %.1f   Pronouns: %.1f\n",
		report.GrammarScore, report.SpellingScore, report.PronounScore))
	sb.WriteString(fmt.Sprintf("Impact: %.1f   Quantification: %.1f\n",
		report.ImpactScore, report.QuantificationScore))

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			msg := issue.Message
			if len(msg) > 45 {
				msg = msg[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ⚠ [%s] %s\n", issue.Severity, msg))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	}

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(report.Strengths), 3)
		for i := 0; i < count; i++ {
			strength := report.Strengths[i]
			if len(strength) > 50 {
				strength = strength[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", strength))
		}
		if len(report.Strengths) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Strengths)-3))
		}
	}

	p.printBox("RESUME CHECKS", strings.TrimSuffix(sb.String(), "\n"))
}
