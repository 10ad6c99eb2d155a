package wikicopy

import (
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

// DefaultBaseURL is the site the CLI talks to unless configured otherwise.
const DefaultBaseURL = "https://en.wikipedia.org"

// Search limits.
const (
	MinQueryLength   = 2
	MaxCandidates    = 5
	MaxSnippetLength = 150
)

// ArticleRef identifies the article a user picked.
type ArticleRef struct {
	Title string `json:"title"`
	ID    int    `json:"id"`

	// Placeholder is set when ID was derived locally from the title because
	// the upstream lookup failed. Such ids must be re-resolved before use.
	Placeholder bool `json:"placeholder,omitempty"`
}

// HasAuthoritativeID reports whether ID came from the encyclopedia itself.
func (r ArticleRef) HasAuthoritativeID() bool {
	return r.ID > 0 && !r.Placeholder
}

// SearchCandidate is one entry of a search result list.
type SearchCandidate struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Snippet      string `json:"snippet"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Placeholder  bool   `json:"placeholder,omitempty"`
}

// Ref returns the article reference for the candidate.
func (c SearchCandidate) Ref() ArticleRef {
	return ArticleRef{Title: c.Title, ID: c.ID, Placeholder: c.Placeholder}
}

// ContentSource names the upstream endpoint that produced an article body.
type ContentSource string

// Content sources in fallback order.
const (
	SourceRender  ContentSource = "render"
	SourceExtract ContentSource = "extract"
)

// Article is a normalized article ready for export.
type Article struct {
	Ref    ArticleRef    `json:"ref"`
	HTML   string        `json:"html"`
	Source ContentSource `json:"source"`
}

// URL returns the canonical article-view URL on the given site.
func (a *Article) URL(baseURL string) string {
	return ArticleURL(baseURL, a.Ref.Title)
}

// ArticleURL joins the site's base URL with the escaped article title.
func ArticleURL(baseURL, title string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	return strings.TrimSuffix(baseURL, "/") + "/wiki/" + url.PathEscape(slug)
}

// PlaceholderID derives a deterministic, non-authoritative id from a title.
// Placeholder ids are always negative so they never collide with a real
// article id. Titles differing only in Unicode normalization form, case,
// or underscores map to the same id.
func PlaceholderID(title string) int {
	key := norm.NFC.String(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), "_", " ")))
	h := xxhash.Sum64String(key)
	return -int(h>>33) - 1
}
