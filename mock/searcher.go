package mock

import (
	"context"

	"github.com/fwojciec/wikicopy"
)

var (
	_ wikicopy.Searcher         = (*Searcher)(nil)
	_ wikicopy.IDResolver       = (*IDResolver)(nil)
	_ wikicopy.SnippetSanitizer = (*SnippetSanitizer)(nil)
)

// Searcher is a mock implementation of wikicopy.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]wikicopy.SearchCandidate, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]wikicopy.SearchCandidate, error) {
	return s.SearchFn(ctx, query, limit)
}

// IDResolver is a mock implementation of wikicopy.IDResolver.
type IDResolver struct {
	ResolveIDFn func(ctx context.Context, title string) (int, error)
}

func (r *IDResolver) ResolveID(ctx context.Context, title string) (int, error) {
	return r.ResolveIDFn(ctx, title)
}

// SnippetSanitizer is a mock implementation of wikicopy.SnippetSanitizer.
type SnippetSanitizer struct {
	SanitizeFn func(snippet string, maxLen int) string
}

func (s *SnippetSanitizer) Sanitize(snippet string, maxLen int) string {
	return s.SanitizeFn(snippet, maxLen)
}
