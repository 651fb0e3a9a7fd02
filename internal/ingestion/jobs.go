package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

// jobsFile mirrors the batch jobs document shape.
type jobsFile struct {
	Jobs []types.Job `json:"jobs"`
}

// LoadJobsFile reads and validates a batch jobs document. Inline descriptions
// are cleaned here; jobs that only carry a URL keep an empty description for
// ResolveJobs to fill in.
func LoadJobsFile(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("jobs file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}

	if err := schemas.ValidateJobs(data); err != nil {
		return nil, fmt.Errorf("invalid jobs file %s: %w", path, err)
	}

	var doc jobsFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse jobs file: %w", err)
	}

	for i := range doc.Jobs {
		if doc.Jobs[i].Description != "" {
			doc.Jobs[i].Description = CleanText(doc.Jobs[i].Description)
		}
	}
	return doc.Jobs, nil
}

// ResolveJobs fills in descriptions for URL-only jobs by fetching each URL.
// An inline description wins when a job carries both. Fetch failures surface
// as per-job errors aligned with the input, and a resolved job picks up the
// posting title when it did not name one.
func ResolveJobs(ctx context.Context, jobs []types.Job, fetcher *fetch.CachedFetcher, useBrowser bool, verbose bool) ([]types.Job, []error) {
	resolved := make([]types.Job, len(jobs))
	copy(resolved, jobs)
	jobErrs := make([]error, len(jobs))

	var urls []string
	var idx []int
	for i, job := range jobs {
		if job.Description == "" && job.URL != "" {
			urls = append(urls, job.URL)
			idx = append(idx, i)
		}
	}
	if len(urls) == 0 {
		return resolved, jobErrs
	}

	texts, metas, errs := IngestJobURLs(ctx, urls, fetcher, useBrowser, verbose)

	for k, i := range idx {
		if errs[k] != nil {
			jobErrs[i] = errs[k]
			continue
		}
		resolved[i].Description = texts[k]
		if resolved[i].Title == "" && metas[k] != nil {
			resolved[i].Title = metas[k].Title
		}
	}
	return resolved, jobErrs
}
