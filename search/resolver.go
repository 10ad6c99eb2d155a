// Package search turns user queries into ranked article candidates.
// It applies the query length threshold, sanitizes snippets, fills in
// missing article ids, and debounces interactive input.
package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/wikicopy"
	"golang.org/x/sync/errgroup"
)

// Resolver maps a query to at most Limit search candidates.
type Resolver struct {
	Searcher  wikicopy.Searcher
	IDs       wikicopy.IDResolver
	Sanitizer wikicopy.SnippetSanitizer
	Logger    *slog.Logger

	// Limit caps the candidate count. Zero means wikicopy.MaxCandidates.
	Limit int
}

// Resolve returns candidates for query in upstream relevance order.
// Queries shorter than wikicopy.MinQueryLength runes never reach the
// network. Search failures are logged and reported as an empty list.
func (r *Resolver) Resolve(ctx context.Context, query string) []wikicopy.SearchCandidate {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < wikicopy.MinQueryLength {
		return nil
	}

	limit := r.limit()
	found, err := r.Searcher.Search(ctx, query, limit)
	if err != nil {
		r.logger().Warn("search failed", "query", query, "err", err)
		return nil
	}
	if len(found) > limit {
		found = found[:limit]
	}

	candidates := make([]wikicopy.SearchCandidate, len(found))
	copy(candidates, found)
	if r.Sanitizer != nil {
		for i := range candidates {
			candidates[i].Snippet = r.Sanitizer.Sanitize(candidates[i].Snippet, wikicopy.MaxSnippetLength)
		}
	}

	r.fillIDs(ctx, candidates)
	return candidates
}

// fillIDs looks up ids for candidates the search backend returned without
// one. Lookups run concurrently and write only to their own slot.
func (r *Resolver) fillIDs(ctx context.Context, candidates []wikicopy.SearchCandidate) {
	var g errgroup.Group
	for i := range candidates {
		if candidates[i].ID > 0 {
			continue
		}
		c := &candidates[i]
		g.Go(func() error {
			id, err := r.lookup(ctx, c.Title)
			if err != nil {
				r.logger().Debug("id lookup failed, using placeholder", "title", c.Title, "err", err)
				c.ID = wikicopy.PlaceholderID(c.Title)
				c.Placeholder = true
				return nil
			}
			c.ID = id
			c.Placeholder = false
			return nil
		})
	}
	_ = g.Wait()
}

// Reresolve asks the id resolver again for a placeholder reference.
// References that already carry an authoritative id are returned unchanged.
func (r *Resolver) Reresolve(ctx context.Context, ref wikicopy.ArticleRef) (wikicopy.ArticleRef, error) {
	if ref.HasAuthoritativeID() {
		return ref, nil
	}
	id, err := r.lookup(ctx, ref.Title)
	if err != nil {
		return ref, err
	}
	return wikicopy.ArticleRef{Title: ref.Title, ID: id}, nil
}

func (r *Resolver) lookup(ctx context.Context, title string) (int, error) {
	if r.IDs == nil {
		return 0, wikicopy.Errorf(wikicopy.EUNAVAILABLE, "no id resolver configured")
	}
	id, err := r.IDs.ResolveID(ctx, title)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, wikicopy.Errorf(wikicopy.ENOTFOUND, "no article id for %q", title)
	}
	return id, nil
}

func (r *Resolver) limit() int {
	if r.Limit <= 0 || r.Limit > wikicopy.MaxCandidates {
		return wikicopy.MaxCandidates
	}
	return r.Limit
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
