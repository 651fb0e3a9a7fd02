package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-scorer/internal/checks"
	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against ATS conventions",
	Long: `Analyzes free-form resume text and produces a 0-100 ATS quality score with
a per-category breakdown, insights, and recommendations. With an API key the
score includes a semantic component; without one it falls back to pure
rule-based scoring.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeResume string
	analyzeLevel  string
	analyzeAPIKey string
	analyzeChecks bool
	analyzeJSON   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeLevel, "level", "l", "", "Target experience level: entry, mid, or senior (default: auto-detect)")
	analyzeCmd.Flags().BoolVar(&analyzeChecks, "checks", false, "Also run the editorial content checks (buzzwords, spelling, dates)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON instead of formatted output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the --json document: the quality report, with the checks
// report alongside it when --checks was requested.
type analyzeOutput struct {
	Analysis *types.QualityReport `json:"analysis"`
	Checks   *checks.Report       `json:"checks,omitempty"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig()
	if err != nil {
		return err
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("level") {
		cfg.TargetLevel = analyzeLevel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	if err := validateLevel(cfg.TargetLevel); err != nil {
		return err
	}

	// Missing API key is not an error; scoring degrades to the rule-only path
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	result, err := pipeline.RunAnalysis(ctx, pipeline.RunOptions{
		ResumePath:  cfg.Resume,
		TargetLevel: cfg.TargetLevel,
		APIKey:      cfg.APIKey,
		Verbose:     cfg.Verbose,
		Quiet:       analyzeJSON,
		RunChecks:   analyzeChecks,
	})
	if err != nil {
		return err
	}

	if analyzeJSON {
		return writeJSON(analyzeOutput{Analysis: result.Report, Checks: result.Checks})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintQualityReport(result.Report)
	if result.Checks != nil {
		printer.PrintChecksReport(result.Checks)
	}
	return nil
}

// loadMergedConfig loads the config file named by the root --config flag and
// validates it. Returns a zero config when the flag was not given.
func loadMergedConfig() (config.Config, error) {
	var cfg config.Config
	if rootConfigPath == "" {
		return cfg, nil
	}
	loaded, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	if rootVerbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rootConfigPath)
	}
	return *loaded, nil
}

func validateLevel(level string) error {
	switch level {
	case "", "entry", "mid", "senior":
		return nil
	}
	return fmt.Errorf("--level must be one of entry, mid, senior")
}

func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}
