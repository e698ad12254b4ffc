package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"sync"
	"time"

	"docassist/internal/domain"
)

// SearchCache keeps recent search results keyed by query parameters,
// with TTL expiry and LRU eviction. Entries are tied to an index
// generation; Invalidate bumps the generation so results from a replaced
// index are never served.
type SearchCache struct {
	mu       sync.RWMutex
	entries  map[string]*cacheEntry
	order    []string
	maxSize  int
	ttl      time.Duration
	indexGen uint64
}

type cacheEntry struct {
	results   []domain.SearchResult
	timestamp time.Time
	indexGen  uint64
}

func NewSearchCache(maxSize int, ttl time.Duration) *SearchCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SearchCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

func cacheKey(query string, topK int, minSimilarity float64) string {
	data := []byte(query)
	data = binary.BigEndian.AppendUint32(data, uint32(topK))
	data = binary.BigEndian.AppendUint64(data, math.Float64bits(minSimilarity))
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

func (c *SearchCache) Get(query string, topK int, minSimilarity float64) ([]domain.SearchResult, bool) {
	key := cacheKey(query, topK, minSimilarity)

	c.mu.RLock()
	entry, exists := c.entries[key]
	currentGen := c.indexGen
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl || entry.indexGen != currentGen {
		c.mu.Lock()
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.moveToEnd(key)
	c.mu.Unlock()

	return entry.results, true
}

func (c *SearchCache) Put(query string, topK int, minSimilarity float64, results []domain.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(query, topK, minSimilarity)

	if _, exists := c.entries[key]; exists {
		c.entries[key] = &cacheEntry{
			results:   results,
			timestamp: time.Now(),
			indexGen:  c.indexGen,
		}
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = &cacheEntry{
		results:   results,
		timestamp: time.Now(),
		indexGen:  c.indexGen,
	}
	c.order = append(c.order, key)
}

// Invalidate drops all entries and advances the index generation.
// Called whenever a new document is indexed.
func (c *SearchCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.indexGen++
}

func (c *SearchCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SearchCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *SearchCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *SearchCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Searcher is the slice of the retriever the cache decorates.
type Searcher interface {
	Search(query string, topK int, minSimilarity float64) ([]domain.SearchResult, error)
}

// CachedSearcher serves repeated queries from the cache. A hit returns
// the identical result slice, preserving search idempotence.
type CachedSearcher struct {
	searcher Searcher
	cache    *SearchCache
}

func NewCachedSearcher(searcher Searcher, cache *SearchCache) *CachedSearcher {
	return &CachedSearcher{
		searcher: searcher,
		cache:    cache,
	}
}

func (s *CachedSearcher) Search(query string, topK int, minSimilarity float64) ([]domain.SearchResult, error) {
	if results, hit := s.cache.Get(query, topK, minSimilarity); hit {
		return results, nil
	}

	results, err := s.searcher.Search(query, topK, minSimilarity)
	if err != nil {
		return nil, err
	}

	s.cache.Put(query, topK, minSimilarity, results)
	return results, nil
}
