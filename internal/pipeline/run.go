// Package pipeline provides the high-level orchestration for resume analysis
// and job matching runs.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/checks"
	"github.com/jonathan/resume-scorer/internal/embedding"
	"github.com/jonathan/resume-scorer/internal/features"
	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/ingestion"
	"github.com/jonathan/resume-scorer/internal/matching"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Step names attached to progress events.
const (
	StepResumeText    = "resume_text"
	StepJobText       = "job_text"
	StepJobsFile      = "jobs_file"
	StepQualityReport = "quality_report"
	StepChecksReport  = "checks_report"
	StepMatchResult   = "match_result"
	StepBatchResults  = "batch_results"
)

// Progress event categories.
const (
	CategoryIngestion = "ingestion"
	CategoryAnalysis  = "analysis"
	CategoryMatching  = "matching"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a pipeline run
type RunOptions struct {
	ResumePath  string
	JobPath     string
	JobURL      string
	JobsPath    string
	TargetLevel string
	ATSScore    *float64 // nil means compute the score from the resume
	APIKey      string
	UseBrowser  bool
	Verbose     bool
	Quiet       bool // suppress progress output on stdout
	RunChecks   bool
	OnProgress  ProgressCallback
}

// AnalysisResult holds the outputs of a quality run over one resume
type AnalysisResult struct {
	RunID  uuid.UUID
	Report *types.QualityReport
	Checks *checks.Report
}

// MatchRun holds the outputs of matching one resume against one job
type MatchRun struct {
	RunID   uuid.UUID
	Quality *types.QualityReport
	Job     types.Job
	Result  *types.MatchResult
}

// BatchRun holds the outputs of matching one resume against a jobs file
type BatchRun struct {
	RunID   uuid.UUID
	Quality *types.QualityReport
	Jobs    []types.Job
	Results *types.BatchMatchResult
}

// logPrefix is used to distinguish concurrent log output
type logPrefix string

const (
	prefixQuality logPrefix = "[Quality] "
	prefixJob     logPrefix = "[Job]     "
	prefixJobs    logPrefix = "[Jobs]    "
)

// sayf prints progress chatter unless the run is quiet
func sayf(opts *RunOptions, format string, args ...any) {
	if !opts.Quiet {
		fmt.Printf(format, args...)
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID.String(),
			Content:  content,
		})
	}
}

// countURLJobs returns how many jobs still need their description fetched
func countURLJobs(jobs []types.Job) int {
	n := 0
	for _, job := range jobs {
		if job.Description == "" && job.URL != "" {
			n++
		}
	}
	return n
}

// newEncoder builds the embedding backend. A missing key or a failed client
// is not fatal; the engines fall back to their rule and keyword paths.
func newEncoder(ctx context.Context, opts *RunOptions) embedding.Encoder {
	if opts.APIKey == "" {
		if opts.Verbose {
			fmt.Printf("[VERBOSE] No API key configured, using rule-based fallbacks\n")
		}
		return nil
	}
	enc, err := embedding.NewGeminiEncoder(ctx, opts.APIKey, "")
	if err != nil {
		sayf(opts, "Warning: failed to initialize embedding client: %v\n", err)
		sayf(opts, "Continuing with rule-based fallbacks...\n")
		return nil
	}
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Embedding client ready (model: %s)\n", embedding.DefaultModel)
	}
	return enc
}

// matcherOptions derives the resume-side context for matching from the
// quality report, honoring explicit overrides.
func matcherOptions(opts *RunOptions, quality *types.QualityReport) matching.Options {
	mo := matching.Options{}
	if quality != nil && quality.ExtractedInfo != nil {
		mo.CandidateLevel = quality.ExtractedInfo.ExperienceLevel
		mo.CandidateYears = quality.ExtractedInfo.YearsOfExperience
	}
	if opts.TargetLevel != "" {
		mo.CandidateLevel = opts.TargetLevel
	}
	if opts.ATSScore != nil {
		mo.ATSScore = *opts.ATSScore
	} else if quality != nil {
		mo.ATSScore = quality.Score
	}
	return mo
}

// scoreResume runs the quality engine over the resume text
func scoreResume(ctx context.Context, opts *RunOptions, enc embedding.Encoder, resumeText string, printer *observability.Printer, runID uuid.UUID) (*types.QualityReport, error) {
	scorer := scoring.NewScorer(enc)
	report := scorer.Score(ctx, resumeText, scoring.Options{TargetLevel: opts.TargetLevel})
	if !report.Success {
		return nil, fmt.Errorf("resume analysis failed: %s", report.Error)
	}
	if opts.Verbose {
		printer.PrintQualityReport(report)
	}
	emitProgress(opts, runID, StepQualityReport, CategoryAnalysis,
		fmt.Sprintf("Scored resume %.1f/100 (%s)", report.Score, report.Status), report)
	return report, nil
}

// ingestResume loads and cleans the resume text
func ingestResume(opts *RunOptions, runID uuid.UUID) (string, error) {
	resumeText, _, err := ingestion.IngestFromFile(opts.ResumePath)
	if err != nil {
		return "", fmt.Errorf("resume ingestion failed: %w", err)
	}
	emitProgress(opts, runID, StepResumeText, CategoryIngestion,
		fmt.Sprintf("Ingested and cleaned resume from %s", opts.ResumePath), nil)
	return resumeText, nil
}

// RunAnalysis scores one resume and optionally runs the editorial checks.
func RunAnalysis(ctx context.Context, opts RunOptions) (*AnalysisResult, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	runID := uuid.New()
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Run ID: %s\n", runID)
	}

	totalSteps := 2
	if opts.RunChecks {
		totalSteps = 3
	}

	sayf(&opts, "Step 1/%d: Ingesting resume from file: %s...\n", totalSteps, opts.ResumePath)
	resumeText, err := ingestResume(&opts, runID)
	if err != nil {
		return nil, err
	}

	enc := newEncoder(ctx, &opts)
	if enc != nil {
		defer func() { _ = enc.Close() }()
	}

	sayf(&opts, "Step 2/%d: Scoring resume quality...\n", totalSteps)
	report, err := scoreResume(ctx, &opts, enc, resumeText, printer, runID)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{RunID: runID, Report: report}

	if opts.RunChecks {
		sayf(&opts, "Step 3/%d: Running editorial checks...\n", totalSteps)
		rec := features.Extract(resumeText)
		result.Checks = checks.Run(resumeText, rec)
		if opts.Verbose {
			printer.PrintChecksReport(result.Checks)
		}
		emitProgress(&opts, runID, StepChecksReport, CategoryAnalysis,
			fmt.Sprintf("Editorial checks scored %.1f/100", result.Checks.OverallScore), result.Checks)
	}

	return result, nil
}

// RunMatch scores one resume against one job posting. The quality scoring and
// the job ingestion are independent, so they run as parallel branches; the
// match itself needs both.
func RunMatch(ctx context.Context, opts RunOptions) (*MatchRun, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	runID := uuid.New()
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Run ID: %s\n", runID)
	}

	sayf(&opts, "Step 1/4: Ingesting resume from file: %s...\n", opts.ResumePath)
	resumeText, err := ingestResume(&opts, runID)
	if err != nil {
		return nil, err
	}

	enc := newEncoder(ctx, &opts)
	if enc != nil {
		defer func() { _ = enc.Close() }()
	}

	// =========================================================================
	// PARALLEL EXECUTION: Quality Branch + Job Branch
	// =========================================================================
	sayf(&opts, "\n🚀 Starting parallel execution of Quality and Job branches...\n\n")

	g, gCtx := errgroup.WithContext(ctx)

	var quality *types.QualityReport
	var job types.Job
	var qualMu, jobMu sync.Mutex // Protect result assignments

	// Quality Branch (Step 2)
	g.Go(func() error {
		sayf(&opts, "%sStep 2/4: Scoring resume quality...\n", prefixQuality)
		report, err := scoreResume(gCtx, &opts, enc, resumeText, printer, runID)
		if err != nil {
			return fmt.Errorf("quality branch failed: %w", err)
		}
		qualMu.Lock()
		quality = report
		qualMu.Unlock()
		sayf(&opts, "%s✅ Quality branch complete.\n", prefixQuality)
		return nil
	})

	// Job Branch (Step 3)
	g.Go(func() error {
		j, err := runJobBranch(gCtx, opts, runID)
		if err != nil {
			return fmt.Errorf("job branch failed: %w", err)
		}
		jobMu.Lock()
		job = j
		jobMu.Unlock()
		sayf(&opts, "%s✅ Job branch complete.\n", prefixJob)
		return nil
	})

	// Wait for both branches to complete
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sayf(&opts, "\n✅ Both branches completed. Continuing with matching...\n\n")
	// =========================================================================

	sayf(&opts, "Step 4/4: Matching resume against job...\n")
	matcher := matching.NewMatcher(enc)
	result := matcher.Match(ctx, resumeText, job, matcherOptions(&opts, quality))
	if opts.Verbose {
		printer.PrintMatchResult(result)
	}
	emitProgress(&opts, runID, StepMatchResult, CategoryMatching,
		fmt.Sprintf("Matched %.1f/100 (%s)", result.MatchScore, result.MatchLevel), result)

	return &MatchRun{
		RunID:   runID,
		Quality: quality,
		Job:     job,
		Result:  result,
	}, nil
}

// RunBatch scores one resume against every job in a jobs file. URL-only jobs
// are fetched while the quality branch scores the resume; a job that fails to
// fetch turns into a failed entry in the results rather than aborting the run.
func RunBatch(ctx context.Context, opts RunOptions) (*BatchRun, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	runID := uuid.New()
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Run ID: %s\n", runID)
	}

	sayf(&opts, "Step 1/5: Ingesting resume from file: %s...\n", opts.ResumePath)
	resumeText, err := ingestResume(&opts, runID)
	if err != nil {
		return nil, err
	}

	sayf(&opts, "Step 2/5: Loading jobs from file: %s...\n", opts.JobsPath)
	jobs, err := ingestion.LoadJobsFile(opts.JobsPath)
	if err != nil {
		return nil, fmt.Errorf("loading jobs failed: %w", err)
	}
	emitProgress(&opts, runID, StepJobsFile, CategoryIngestion,
		fmt.Sprintf("Loaded %d jobs (%d to fetch)", len(jobs), countURLJobs(jobs)), nil)

	enc := newEncoder(ctx, &opts)
	if enc != nil {
		defer func() { _ = enc.Close() }()
	}

	// =========================================================================
	// PARALLEL EXECUTION: Quality Branch + Jobs Branch
	// =========================================================================
	sayf(&opts, "\n🚀 Starting parallel execution of Quality and Jobs branches...\n\n")

	g, gCtx := errgroup.WithContext(ctx)

	var quality *types.QualityReport
	var qualMu, jobsMu sync.Mutex // Protect result assignments

	// Quality Branch (Step 3)
	g.Go(func() error {
		sayf(&opts, "%sStep 3/5: Scoring resume quality...\n", prefixQuality)
		report, err := scoreResume(gCtx, &opts, enc, resumeText, printer, runID)
		if err != nil {
			return fmt.Errorf("quality branch failed: %w", err)
		}
		qualMu.Lock()
		quality = report
		qualMu.Unlock()
		sayf(&opts, "%s✅ Quality branch complete.\n", prefixQuality)
		return nil
	})

	// Jobs Branch (Step 4)
	g.Go(func() error {
		sayf(&opts, "%sStep 4/5: Resolving %d job URLs...\n", prefixJobs, countURLJobs(jobs))
		resolved, jobErrs := ingestion.ResolveJobs(gCtx, jobs, fetch.NewCachedFetcher(nil), opts.UseBrowser, opts.Verbose)
		for i, jerr := range jobErrs {
			if jerr != nil {
				sayf(&opts, "%sWarning: job %d fetch failed: %v\n", prefixJobs, i+1, jerr)
			}
		}
		jobsMu.Lock()
		jobs = resolved
		jobsMu.Unlock()
		sayf(&opts, "%s✅ Jobs branch complete.\n", prefixJobs)
		return nil
	})

	// Wait for both branches to complete
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sayf(&opts, "\n✅ Both branches completed. Continuing with matching...\n\n")
	// =========================================================================

	sayf(&opts, "Step 5/5: Matching resume against %d jobs...\n", len(jobs))
	matcher := matching.NewMatcher(enc)
	matches := matcher.MatchBatch(ctx, resumeText, jobs, matcherOptions(&opts, quality))
	batch := &types.BatchMatchResult{
		Success:   true,
		TotalJobs: len(jobs),
		Matches:   matches,
	}
	if opts.Verbose {
		printer.PrintBatchResults(jobs, matches)
	}
	emitProgress(&opts, runID, StepBatchResults, CategoryMatching,
		fmt.Sprintf("Matched %d jobs", len(jobs)), batch)

	return &BatchRun{
		RunID:   runID,
		Quality: quality,
		Jobs:    jobs,
		Results: batch,
	}, nil
}

// runJobBranch ingests the posting text from a file or URL
func runJobBranch(ctx context.Context, opts RunOptions, runID uuid.UUID) (types.Job, error) {
	prefix := prefixJob

	var job types.Job
	if opts.JobURL != "" {
		sayf(&opts, "%sStep 3/4: Ingesting job posting from URL: %s...\n", prefix, opts.JobURL)
		text, meta, err := ingestion.IngestFromURL(ctx, opts.JobURL, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return job, fmt.Errorf("job ingestion from URL failed: %w", err)
		}
		job = types.Job{Description: text, URL: opts.JobURL}
		if meta != nil {
			job.Title = meta.Title
		}
	} else {
		sayf(&opts, "%sStep 3/4: Ingesting job posting from file: %s...\n", prefix, opts.JobPath)
		text, _, err := ingestion.IngestFromFile(opts.JobPath)
		if err != nil {
			return job, fmt.Errorf("job ingestion from file failed: %w", err)
		}
		job = types.Job{Description: text}
	}

	emitProgress(&opts, runID, StepJobText, CategoryIngestion,
		fmt.Sprintf("Ingested job posting (%d words)", len(strings.Fields(job.Description))), nil)
	return job, nil
}
