package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultCachedFetcherConfig(t *testing.T) {
	config := DefaultCachedFetcherConfig()

	if config == nil {
		t.Fatal("DefaultCachedFetcherConfig returned nil")
	}

	if config.CacheTTL == 0 {
		t.Error("Expected non-zero CacheTTL")
	}

	if config.SkipCache != false {
		t.Error("Expected SkipCache to be false by default")
	}

	if config.Options == nil {
		t.Error("Expected Options to be non-nil")
	}
}

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil)

	if fetcher == nil {
		t.Fatal("NewCachedFetcher returned nil")
	}

	if fetcher.cacheTTL == 0 {
		t.Error("Expected non-zero cacheTTL")
	}

	if fetcher.options == nil {
		t.Error("Expected non-nil options")
	}

	if fetcher.pages == nil {
		t.Error("Expected non-nil page map")
	}
}

func TestNewCachedFetcher_EmptyConfig(t *testing.T) {
	fetcher := NewCachedFetcher(&CachedFetcherConfig{})

	// Should use defaults for zero values
	if fetcher.cacheTTL == 0 {
		t.Error("Expected non-zero cacheTTL even with empty config")
	}

	if fetcher.options == nil {
		t.Error("Expected non-nil options even with empty config")
	}
}

func TestCachedFetcher_SecondFetchHitsCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body><main>Staff Engineer posting</main></body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if first.FromCache {
		t.Error("first fetch should not come from cache")
	}
	if first.Text == "" {
		t.Error("expected extracted text on fresh result")
	}

	second, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if !second.FromCache {
		t.Error("second fetch should come from cache")
	}
	if second.EntryID != first.EntryID {
		t.Errorf("cache hit should keep the entry ID, got %s vs %s", second.EntryID, first.EntryID)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 server hit, got %d", got)
	}
}

func TestCachedFetcher_SkipCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{SkipCache: true})

	for i := 0; i < 2; i++ {
		result, err := fetcher.Fetch(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
		if result.FromCache {
			t.Error("SkipCache fetch should never come from cache")
		}
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("expected 2 server hits, got %d", got)
	}
}

func TestCachedFetcher_ExpiredEntryRefetches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{CacheTTL: time.Nanosecond})

	if _, err := fetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	time.Sleep(time.Millisecond)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if result.FromCache {
		t.Error("expired entry should trigger a fresh fetch")
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("expected 2 server hits, got %d", got)
	}
}

func TestCachedFetcher_Invalidate(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	if _, err := fetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	fetcher.Invalidate(server.URL)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if result.FromCache {
		t.Error("invalidated entry should trigger a fresh fetch")
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("expected 2 server hits, got %d", got)
	}
}

func TestCachedFetcher_FetchMultiple_AlignsWithInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)
	urls := []string{server.URL + "/a", "not-a-valid-url", server.URL + "/b"}

	results, errs := fetcher.FetchMultiple(context.Background(), urls)

	if len(results) != 3 || len(errs) != 3 {
		t.Fatalf("expected 3 results and 3 errors, got %d and %d", len(results), len(errs))
	}
	if results[0] == nil || errs[0] != nil {
		t.Errorf("expected url 0 to succeed, got err=%v", errs[0])
	}
	if results[1] != nil || errs[1] == nil {
		t.Error("expected url 1 to fail with a nil result")
	}
	if results[2] == nil || errs[2] != nil {
		t.Errorf("expected url 2 to succeed, got err=%v", errs[2])
	}
}
