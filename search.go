package wikicopy

import "context"

// Searcher queries the encyclopedia for articles matching a query.
type Searcher interface {
	// Search returns at most limit candidates in upstream relevance order.
	// Snippets are returned as the upstream delivers them; candidates whose
	// id is unknown upstream have ID 0.
	Search(ctx context.Context, query string, limit int) ([]SearchCandidate, error)
}

// IDResolver maps an exact article title to its durable numeric id.
type IDResolver interface {
	// ResolveID returns ENOTFOUND if no article has the given title.
	ResolveID(ctx context.Context, title string) (int, error)
}

// SnippetSanitizer reduces upstream snippet markup to display-safe HTML.
type SnippetSanitizer interface {
	// Sanitize removes citation markers, keeps only strong/em markup and
	// caps the visible text at maxLen runes, appending "..." when truncated.
	Sanitize(snippet string, maxLen int) string
}
