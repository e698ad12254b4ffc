package cache

import (
	"reflect"
	"testing"
	"time"

	"docassist/internal/domain"
)

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Text: "first chunk", Relevance: 0.8, Position: 0, WordCount: 2},
		{Text: "second chunk", Relevance: 0.5, Position: 3, WordCount: 2},
	}
}

func TestCacheHitAndMiss(t *testing.T) {
	c := NewSearchCache(10, time.Minute)

	if _, hit := c.Get("query", 3, 0.3); hit {
		t.Error("unexpected hit on empty cache")
	}

	want := sampleResults()
	c.Put("query", 3, 0.3, want)

	got, hit := c.Get("query", 3, 0.3)
	if !hit {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Different parameters are different entries.
	if _, hit := c.Get("query", 5, 0.3); hit {
		t.Error("topK should be part of the key")
	}
	if _, hit := c.Get("query", 3, 0.5); hit {
		t.Error("minSimilarity should be part of the key")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewSearchCache(10, time.Millisecond)

	c.Put("query", 3, 0.3, sampleResults())
	time.Sleep(5 * time.Millisecond)

	if _, hit := c.Get("query", 3, 0.3); hit {
		t.Error("expected expired entry to miss")
	}
	if c.Size() != 0 {
		t.Errorf("expired entry not removed, size = %d", c.Size())
	}
}

func TestCacheInvalidate(t *testing.T) {
	c := NewSearchCache(10, time.Minute)

	c.Put("query", 3, 0.3, sampleResults())
	c.Invalidate()

	if _, hit := c.Get("query", 3, 0.3); hit {
		t.Error("expected miss after invalidation")
	}
	if c.Size() != 0 {
		t.Errorf("size = %d after invalidation", c.Size())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := NewSearchCache(2, time.Minute)

	c.Put("a", 3, 0.3, sampleResults())
	c.Put("b", 3, 0.3, sampleResults())

	// Touch "a" so "b" becomes the eviction candidate.
	if _, hit := c.Get("a", 3, 0.3); !hit {
		t.Fatal("expected hit for a")
	}

	c.Put("c", 3, 0.3, sampleResults())

	if c.Size() != 2 {
		t.Errorf("size = %d, want 2", c.Size())
	}
	if _, hit := c.Get("b", 3, 0.3); hit {
		t.Error("expected b to be evicted")
	}
	if _, hit := c.Get("a", 3, 0.3); !hit {
		t.Error("expected a to survive")
	}
}

type countingSearcher struct {
	calls   int
	results []domain.SearchResult
}

func (s *countingSearcher) Search(query string, topK int, minSimilarity float64) ([]domain.SearchResult, error) {
	s.calls++
	return s.results, nil
}

func TestCachedSearcher(t *testing.T) {
	inner := &countingSearcher{results: sampleResults()}
	cached := NewCachedSearcher(inner, NewSearchCache(10, time.Minute))

	first, err := cached.Search("query", 3, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cached.Search("query", 3, 0.3)
	if err != nil {
		t.Fatal(err)
	}

	if inner.calls != 1 {
		t.Errorf("inner searcher called %d times, want 1", inner.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from original")
	}
}
