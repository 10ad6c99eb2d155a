package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikicopy"
)

var (
	_ wikicopy.Searcher   = (*LoggingSearcher)(nil)
	_ wikicopy.IDResolver = (*LoggingIDResolver)(nil)
)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   wikicopy.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next wikicopy.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, limit int) (candidates []wikicopy.SearchCandidate, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"limit", limit,
			"count", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}

// LoggingIDResolver wraps an IDResolver with debug logging.
type LoggingIDResolver struct {
	next   wikicopy.IDResolver
	logger *slog.Logger
}

// NewLoggingIDResolver creates a new LoggingIDResolver.
func NewLoggingIDResolver(next wikicopy.IDResolver, logger *slog.Logger) *LoggingIDResolver {
	return &LoggingIDResolver{next: next, logger: logger}
}

// ResolveID delegates to the wrapped resolver and logs the operation.
func (r *LoggingIDResolver) ResolveID(ctx context.Context, title string) (id int, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("resolve id",
			"title", title,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveID(ctx, title)
}
