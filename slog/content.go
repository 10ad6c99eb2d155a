package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikicopy"
)

var _ wikicopy.ContentService = (*LoggingContentService)(nil)

// LoggingContentService wraps a ContentService with debug logging.
type LoggingContentService struct {
	next   wikicopy.ContentService
	logger *slog.Logger
}

// NewLoggingContentService creates a new LoggingContentService.
func NewLoggingContentService(next wikicopy.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// FetchRendered delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) FetchRendered(ctx context.Context, ref wikicopy.ArticleRef) (html string, err error) {
	defer func(begin time.Time) {
		s.log("fetch rendered", ref, html, begin, err)
	}(time.Now())
	return s.next.FetchRendered(ctx, ref)
}

// FetchExtract delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) FetchExtract(ctx context.Context, ref wikicopy.ArticleRef) (html string, err error) {
	defer func(begin time.Time) {
		s.log("fetch extract", ref, html, begin, err)
	}(time.Now())
	return s.next.FetchExtract(ctx, ref)
}

func (s *LoggingContentService) log(msg string, ref wikicopy.ArticleRef, html string, begin time.Time, err error) {
	s.logger.Debug(msg,
		"title", ref.Title,
		"id", ref.ID,
		"placeholder", ref.Placeholder,
		"bytes", len(html),
		"duration", time.Since(begin),
		"err", err,
	)
}
