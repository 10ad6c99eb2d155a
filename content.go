package wikicopy

import "context"

// ContentService fetches article bodies from the encyclopedia.
// Both methods return ENOTFOUND when the article has no usable content and
// EUNAVAILABLE on transport or decoding failures.
// When ref has no authoritative id the article is looked up by title.
type ContentService interface {
	// FetchRendered returns the full HTML render of the article.
	FetchRendered(ctx context.Context, ref ArticleRef) (string, error)

	// FetchExtract returns the shorter, already-flattened HTML extract.
	FetchExtract(ctx context.Context, ref ArticleRef) (string, error)
}

// RateLimiter throttles outbound requests to the encyclopedia.
// *rate.Limiter from golang.org/x/time/rate satisfies it.
type RateLimiter interface {
	// Wait blocks until a request is allowed or ctx is done.
	Wait(ctx context.Context) error
}

// Sink receives exported content: the system clipboard, a file or a stream.
type Sink interface {
	Write(ctx context.Context, content string) error
}
