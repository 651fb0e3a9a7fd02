package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/fetch"
)

const jobPageHTML = `<!DOCTYPE html>
<html>
<head><title>Senior Software Engineer - Acme</title></head>
<body>
<nav>Nav</nav>
<div class="sidebar">Sidebar junk</div>
<div class="job-description">
<h1>Senior Software Engineer</h1>
<h2>About the Role</h2>
<p>We are looking for a Senior Software Engineer.</p>
<h2>Requirements</h2>
<ul>
<li>Go experience</li>
<li>Distributed systems</li>
</ul>
</div>
<footer>Footer</footer>
</body>
</html>`

func jobPageServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"malformed URL", "not-a-url"},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := IngestFromURL(context.Background(), tt.urlStr, false, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHTTPRequestFailed)
		})
	}
}

func TestIngestFromURL_Success(t *testing.T) {
	server := jobPageServer(t, nil)

	cleanedText, metadata, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	assert.Contains(t, cleanedText, "Senior Software Engineer")
	assert.Contains(t, cleanedText, "About the Role")
	assert.Contains(t, cleanedText, "Go experience")
	assert.NotContains(t, cleanedText, "Nav")
	assert.NotContains(t, cleanedText, "Footer")
	assert.NotContains(t, cleanedText, "Sidebar junk")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.URL)
	assert.Equal(t, string(fetch.PlatformUnknown), metadata.Platform)
	assert.Equal(t, "Senior Software Engineer - Acme", metadata.Title)
	assert.Len(t, metadata.Hash, 64)
}

func TestIngestFromURL_PrefersOGTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
<meta property="og:title" content="Platform Engineer at Acme">
<title>Careers</title>
</head><body><main>Long enough posting body</main></body></html>`))
	}))
	defer server.Close()

	_, metadata, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer at Acme", metadata.Title)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := IngestFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestFromURL_NetworkError(t *testing.T) {
	_, _, err := IngestFromURL(context.Background(), "http://localhost:1/nonexistent", false, false)
	assert.Error(t, err)
}

func TestIngestJobURLs_AlignsWithInput(t *testing.T) {
	server := jobPageServer(t, nil)

	urls := []string{server.URL + "/a", "not-a-valid-url", server.URL + "/b"}
	texts, metas, errs := IngestJobURLs(context.Background(), urls, nil, false, false)

	require.Len(t, texts, 3)
	require.Len(t, metas, 3)
	require.Len(t, errs, 3)

	assert.NoError(t, errs[0])
	assert.Contains(t, texts[0], "Senior Software Engineer")
	assert.Equal(t, urls[0], metas[0].URL)

	require.Error(t, errs[1])
	assert.ErrorIs(t, errs[1], ErrHTTPRequestFailed)
	assert.Empty(t, texts[1])
	assert.Nil(t, metas[1])

	assert.NoError(t, errs[2])
	assert.Contains(t, texts[2], "Distributed systems")
}

func TestIngestJobURLs_ReusesFetcherCache(t *testing.T) {
	var hits atomic.Int32
	server := jobPageServer(t, &hits)

	fetcher := fetch.NewCachedFetcher(nil)
	urls := []string{server.URL}

	_, _, errs := IngestJobURLs(context.Background(), urls, fetcher, false, false)
	require.NoError(t, errs[0])

	_, _, errs = IngestJobURLs(context.Background(), urls, fetcher, false, false)
	require.NoError(t, errs[0])

	assert.Equal(t, int32(1), hits.Load(), "second run should be served from cache")
}

func TestIngestJobURLs_EmptyInput(t *testing.T) {
	texts, metas, errs := IngestJobURLs(context.Background(), nil, nil, false, false)
	assert.Empty(t, texts)
	assert.Empty(t, metas)
	assert.Empty(t, errs)
}
