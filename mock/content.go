package mock

import (
	"context"

	"github.com/fwojciec/wikicopy"
)

var (
	_ wikicopy.ContentService = (*ContentService)(nil)
	_ wikicopy.RateLimiter    = (*RateLimiter)(nil)
	_ wikicopy.Sink           = (*Sink)(nil)
)

// ContentService is a mock implementation of wikicopy.ContentService.
type ContentService struct {
	FetchRenderedFn func(ctx context.Context, ref wikicopy.ArticleRef) (string, error)
	FetchExtractFn  func(ctx context.Context, ref wikicopy.ArticleRef) (string, error)
}

func (s *ContentService) FetchRendered(ctx context.Context, ref wikicopy.ArticleRef) (string, error) {
	return s.FetchRenderedFn(ctx, ref)
}

func (s *ContentService) FetchExtract(ctx context.Context, ref wikicopy.ArticleRef) (string, error) {
	return s.FetchExtractFn(ctx, ref)
}

// RateLimiter is a mock implementation of wikicopy.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}

// Sink is a mock implementation of wikicopy.Sink.
type Sink struct {
	WriteFn func(ctx context.Context, content string) error
}

func (s *Sink) Write(ctx context.Context, content string) error {
	return s.WriteFn(ctx, content)
}
