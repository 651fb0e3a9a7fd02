package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/types"
)

func writeJobsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobsFile_Valid(t *testing.T) {
	path := writeJobsFile(t, `{
		"jobs": [
			{"title": "Senior Go Engineer", "description": "Build services in Go."},
			{"title": "Backend Developer", "url": "https://example.com/jobs/2"}
		]
	}`)

	jobs, err := LoadJobsFile(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Senior Go Engineer", jobs[0].Title)
	assert.Equal(t, "Build services in Go.", jobs[0].Description)
	assert.Empty(t, jobs[1].Description)
	assert.Equal(t, "https://example.com/jobs/2", jobs[1].URL)
}

func TestLoadJobsFile_CleansInlineDescriptions(t *testing.T) {
	path := writeJobsFile(t, `{"jobs": [{"description": "Build   services\r\nin Go."}]}`)

	jobs, err := LoadJobsFile(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "Build services\nin Go.", jobs[0].Description)
}

func TestLoadJobsFile_SchemaViolation(t *testing.T) {
	path := writeJobsFile(t, `{"jobs": [{"title": "No description or URL"}]}`)

	jobs, err := LoadJobsFile(path)
	require.Error(t, err)
	assert.Nil(t, jobs)
	assert.Contains(t, err.Error(), "invalid jobs file")
}

func TestLoadJobsFile_FileNotFound(t *testing.T) {
	jobs, err := LoadJobsFile("/nonexistent/jobs.json")
	require.Error(t, err)
	assert.Nil(t, jobs)
	assert.Contains(t, err.Error(), "jobs file not found")
}

func TestResolveJobs_MixedInlineAndURL(t *testing.T) {
	server := jobPageServer(t, nil)

	jobs := []types.Job{
		{Title: "Inline Job", Description: "Already have the text."},
		{URL: server.URL},
	}

	resolved, errs := ResolveJobs(context.Background(), jobs, nil, false, false)
	require.Len(t, resolved, 2)
	require.Len(t, errs, 2)

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, "Already have the text.", resolved[0].Description)
	assert.Contains(t, resolved[1].Description, "Senior Software Engineer")
	assert.Equal(t, "Senior Software Engineer - Acme", resolved[1].Title)
}

func TestResolveJobs_InlineDescriptionWins(t *testing.T) {
	jobs := []types.Job{
		{Description: "Inline text.", URL: "http://localhost:1/unreachable"},
	}

	resolved, errs := ResolveJobs(context.Background(), jobs, nil, false, false)
	require.Len(t, resolved, 1)

	assert.NoError(t, errs[0])
	assert.Equal(t, "Inline text.", resolved[0].Description)
}

func TestResolveJobs_FetchErrorStaysPerJob(t *testing.T) {
	server := jobPageServer(t, nil)

	jobs := []types.Job{
		{URL: server.URL},
		{URL: "http://localhost:1/unreachable"},
	}

	resolved, errs := ResolveJobs(context.Background(), jobs, nil, false, false)
	require.Len(t, resolved, 2)

	assert.NoError(t, errs[0])
	assert.NotEmpty(t, resolved[0].Description)
	assert.Error(t, errs[1])
	assert.Empty(t, resolved[1].Description)
}

func TestResolveJobs_KeepsProvidedTitle(t *testing.T) {
	server := jobPageServer(t, nil)

	jobs := []types.Job{
		{Title: "My Own Title", URL: server.URL},
	}

	resolved, errs := ResolveJobs(context.Background(), jobs, nil, false, false)
	require.NoError(t, errs[0])

	assert.Equal(t, "My Own Title", resolved[0].Title)
}

func TestResolveJobs_NoURLJobs(t *testing.T) {
	jobs := []types.Job{
		{Description: "One"},
		{Description: "Two"},
	}

	resolved, errs := ResolveJobs(context.Background(), jobs, nil, false, false)
	assert.Equal(t, jobs, resolved)
	assert.Len(t, errs, 2)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}
