package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/pipeline"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a resume fits one or more job postings",
	Long: `Matches a resume against a job posting and produces a 0-100 match score
built from semantic similarity, the resume's ATS quality, and a seniority
mismatch penalty. The posting comes from a text file (--job), a URL
(--job-url), or a JSON jobs file for batch matching (--jobs-file).

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runMatch,
}

var (
	matchResume     string
	matchJob        string
	matchJobURL     string
	matchJobsFile   string
	matchLevel      string
	matchATSScore   float64
	matchAPIKey     string
	matchUseBrowser bool
	matchJSON       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url and --jobs-file)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job and --jobs-file)")
	matchCmd.Flags().StringVar(&matchJobsFile, "jobs-file", "", "Path to JSON jobs file for batch matching (mutually exclusive with --job and --job-url)")
	matchCmd.Flags().StringVarP(&matchLevel, "level", "l", "", "Candidate experience level override: entry, mid, or senior (default: detect from resume)")
	matchCmd.Flags().Float64Var(&matchATSScore, "ats-score", 0, "Precomputed ATS score 0-100 (default: compute it from the resume)")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON instead of formatted output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig()
	if err != nil {
		return err
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = matchJobURL
	}
	if cmd.Flags().Changed("jobs-file") {
		cfg.JobsFile = matchJobsFile
	}
	if cmd.Flags().Changed("level") {
		cfg.TargetLevel = matchLevel
	}
	if cmd.Flags().Changed("ats-score") {
		cfg.ATSScore = matchATSScore
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = matchUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume must be provided (via flag or config)")
	}
	sources := 0
	for _, s := range []string{cfg.Job, cfg.JobURL, cfg.JobsFile} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --job, --job-url, or --jobs-file must be provided (via flag or config)")
	}
	if sources > 1 {
		return fmt.Errorf("--job, --job-url, and --jobs-file are mutually exclusive; provide only one")
	}
	if err := validateLevel(cfg.TargetLevel); err != nil {
		return err
	}
	if cfg.ATSScore < 0 || cfg.ATSScore > 100 {
		return fmt.Errorf("--ats-score must be between 0 and 100")
	}

	// Missing API key is not an error; matching degrades to keyword overlap
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	opts := pipeline.RunOptions{
		ResumePath:  cfg.Resume,
		JobPath:     cfg.Job,
		JobURL:      cfg.JobURL,
		JobsPath:    cfg.JobsFile,
		TargetLevel: cfg.TargetLevel,
		APIKey:      cfg.APIKey,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
		Quiet:       matchJSON,
	}
	// Zero means unset throughout the config; a real score of 0 gains nothing
	// from being precomputed.
	if cfg.ATSScore != 0 {
		opts.ATSScore = &cfg.ATSScore
	}

	printer := observability.NewPrinter(os.Stdout)

	if cfg.JobsFile != "" {
		run, err := pipeline.RunBatch(ctx, opts)
		if err != nil {
			return err
		}
		if matchJSON {
			return writeJSON(run.Results)
		}
		printer.PrintBatchResults(run.Jobs, run.Results.Matches)
		return nil
	}

	run, err := pipeline.RunMatch(ctx, opts)
	if err != nil {
		return err
	}
	if matchJSON {
		return writeJSON(run.Result)
	}
	printer.PrintMatchResult(run.Result)
	return nil
}
