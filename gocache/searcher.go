// Package gocache memoizes search results in process memory.
package gocache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/wikicopy"
	"github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a result list stays fresh.
const DefaultTTL = 5 * time.Minute

var _ wikicopy.Searcher = (*CachingSearcher)(nil)

// CachingSearcher wraps a Searcher and serves repeated queries from memory.
// Failed searches are not cached.
type CachingSearcher struct {
	next  wikicopy.Searcher
	cache *cache.Cache
}

// NewCachingSearcher creates a CachingSearcher whose entries expire after ttl.
func NewCachingSearcher(next wikicopy.Searcher, ttl time.Duration) *CachingSearcher {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachingSearcher{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Search returns cached candidates for query when present.
func (s *CachingSearcher) Search(ctx context.Context, query string, limit int) ([]wikicopy.SearchCandidate, error) {
	key := cacheKey(query, limit)
	if v, ok := s.cache.Get(key); ok {
		if candidates, ok := v.([]wikicopy.SearchCandidate); ok {
			return clone(candidates), nil
		}
	}

	candidates, err := s.next.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, clone(candidates))
	return candidates, nil
}

// Len reports the number of cached queries, expired or not.
func (s *CachingSearcher) Len() int {
	return s.cache.ItemCount()
}

func cacheKey(query string, limit int) string {
	return strconv.Itoa(limit) + ":" + strings.ToLower(strings.TrimSpace(query))
}

func clone(c []wikicopy.SearchCandidate) []wikicopy.SearchCandidate {
	if c == nil {
		return nil
	}
	out := make([]wikicopy.SearchCandidate, len(c))
	copy(out, c)
	return out
}
