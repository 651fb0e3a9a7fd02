package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultCacheTTL is how long a fetched posting stays fresh in memory.
const DefaultCacheTTL = 15 * time.Minute

// maxConcurrentFetches bounds FetchMultiple fan-out.
const maxConcurrentFetches = 4

// CachedFetcher wraps URL fetching with an in-memory, TTL-bound cache keyed
// by URL. Safe for concurrent use.
type CachedFetcher struct {
	mu        sync.Mutex
	pages     map[string]*cacheEntry
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // forces fresh fetches, mainly for tests
}

type cacheEntry struct {
	id        uuid.UUID
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a cached fetcher. A nil config selects defaults.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		pages:     make(map[string]*cacheEntry),
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache bookkeeping.
type CachedResult struct {
	*Result
	FromCache bool
	EntryID   uuid.UUID // stable across hits on the same cached page
}

// Fetch retrieves a URL, serving from cache while the entry is fresh. Fresh
// fetches run the platform-specific text extraction and cache both the raw
// HTML and the extracted text. Failures are not cached; the next call
// retries the network.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if entry := f.fresh(urlStr); entry != nil {
			return &CachedResult{Result: entry.result, FromCache: true, EntryID: entry.id}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	if text, err := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...); err == nil {
		result.Text = text
	}

	entry := &cacheEntry{id: uuid.New(), result: result, fetchedAt: time.Now()}
	f.mu.Lock()
	f.pages[urlStr] = entry
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false, EntryID: entry.id}, nil
}

// fresh returns the cache entry for urlStr if it has not expired.
func (f *CachedFetcher) fresh(urlStr string) *cacheEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.pages[urlStr]
	if !ok || time.Since(entry.fetchedAt) > f.cacheTTL {
		return nil
	}
	return entry
}

// FetchMultiple fetches urls concurrently with bounded parallelism. Results
// and errors are index-aligned with urls; a failed fetch leaves a nil result
// and a non-nil error at its index.
func (f *CachedFetcher) FetchMultiple(ctx context.Context, urls []string) ([]*CachedResult, []error) {
	results := make([]*CachedResult, len(urls))
	errs := make([]error, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, u := range urls {
		g.Go(func() error {
			// One bad URL must not cancel the rest; errors stay per-index.
			results[i], errs[i] = f.Fetch(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

// Invalidate drops the cache entry for urlStr, forcing the next Fetch to go
// to the network.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}
