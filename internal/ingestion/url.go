// Package ingestion turns job postings, from files or job-board URLs, into
// clean text ready for matching.
package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-scorer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed wraps transport-level fetch failures.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed wraps HTML parsing failures.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a job posting, extracts the readable text with
// platform-specific selectors, cleans it, and returns it with metadata.
// When useBrowser is true and the plain HTTP fetch yields too little text,
// the page is re-rendered in a headless browser before giving up.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	return finishIngest(ctx, urlStr, platform, result.HTML, useBrowser, verbose)
}

// IngestJobURLs ingests several posting URLs through a shared cache with
// bounded concurrency. Texts, metadata, and errors are index-aligned with
// urls; a failed URL leaves zero values and a non-nil error at its index.
// A nil fetcher gets a private single-run cache.
func IngestJobURLs(ctx context.Context, urls []string, fetcher *fetch.CachedFetcher, useBrowser bool, verbose bool) ([]string, []*Metadata, []error) {
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(nil)
	}

	results, fetchErrs := fetcher.FetchMultiple(ctx, urls)

	texts := make([]string, len(urls))
	metas := make([]*Metadata, len(urls))
	errs := make([]error, len(urls))
	for i, result := range results {
		if fetchErrs[i] != nil {
			errs[i] = fmt.Errorf("%w: %w", ErrHTTPRequestFailed, fetchErrs[i])
			continue
		}
		// Browser fallback stays sequential here: each render spawns a
		// Chrome process.
		texts[i], metas[i], errs[i] = finishIngest(ctx, urls[i], fetch.DetectPlatform(urls[i]), result.HTML, useBrowser, verbose)
	}
	return texts, metas, errs
}

// finishIngest runs extraction, the optional browser fallback, and cleaning
// on already-fetched HTML.
func finishIngest(ctx context.Context, urlStr string, platform fetch.Platform, html string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	title := fetch.ExtractTitle(html)

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering",
				len(text), fetch.MinContentLength)
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			// Keep the HTTP content when the browser cannot help.
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, keeping HTTP content", browserErr)
			}
		} else if rendered, renderErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); renderErr == nil {
			text = rendered
			if t := fetch.ExtractTitle(browserHTML); t != "" {
				title = t
			}
			if verbose {
				log.Printf("[VERBOSE] Browser extracted text: %d chars", len(text))
			}
		}
	}

	cleaned := CleanText(text)
	if verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleaned))
	}

	metadata := NewMetadata(cleaned, urlStr)
	metadata.Platform = string(platform)
	metadata.Title = title

	return cleaned, metadata, nil
}
