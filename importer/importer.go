// Package importer fetches a selected article and normalizes it for export.
// It tries the full rendered article first and falls back to the plain
// extract when the render is missing, unreachable, or empty.
package importer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/wikicopy"
)

// Messages reported when no usable content could be produced.
const (
	MsgUnavailable = "Failed to fetch article content"
	MsgNotFound    = "Article content not found"
)

// Importer runs the render-then-extract fallback chain for one article.
type Importer struct {
	Content    wikicopy.ContentService
	IDs        wikicopy.IDResolver
	Normalizer wikicopy.Normalizer
	Text       wikicopy.TextExtractor
	Logger     *slog.Logger
}

// fetchFunc is one step of the fallback chain.
type fetchFunc func(ctx context.Context, ref wikicopy.ArticleRef) (string, error)

// Import fetches the article behind ref and returns its normalized body.
// Placeholder ids are re-resolved first and never sent upstream.
func (i *Importer) Import(ctx context.Context, ref wikicopy.ArticleRef, mode wikicopy.EmphasisMode) (*wikicopy.Article, error) {
	if strings.TrimSpace(ref.Title) == "" && !ref.HasAuthoritativeID() {
		return nil, wikicopy.Errorf(wikicopy.EINVALID, "article title or id required")
	}
	ref = i.prepare(ctx, ref)

	steps := []struct {
		source wikicopy.ContentSource
		fetch  fetchFunc
	}{
		{wikicopy.SourceRender, i.Content.FetchRendered},
		{wikicopy.SourceExtract, i.Content.FetchExtract},
	}

	transportFailures := 0
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := i.attempt(ctx, ref, mode, step.fetch)
		if err == nil {
			return &wikicopy.Article{Ref: ref, HTML: html, Source: step.source}, nil
		}
		if wikicopy.ErrorCode(err) == wikicopy.EUNAVAILABLE {
			transportFailures++
		}
		i.logger().Debug("content attempt failed",
			"source", step.source,
			"title", ref.Title,
			"err", err,
		)
	}

	if transportFailures == len(steps) {
		return nil, wikicopy.Errorf(wikicopy.EUNAVAILABLE, MsgUnavailable)
	}
	return nil, wikicopy.Errorf(wikicopy.ENOTFOUND, MsgNotFound)
}

// prepare replaces a placeholder id with an authoritative one when possible.
// On failure the reference keeps only its title so the fetch is keyed by it.
func (i *Importer) prepare(ctx context.Context, ref wikicopy.ArticleRef) wikicopy.ArticleRef {
	if ref.HasAuthoritativeID() {
		return ref
	}
	if i.IDs != nil && ref.Title != "" {
		id, err := i.IDs.ResolveID(ctx, ref.Title)
		if err == nil && id > 0 {
			return wikicopy.ArticleRef{Title: ref.Title, ID: id}
		}
		i.logger().Debug("re-resolve failed, fetching by title", "title", ref.Title, "err", err)
	}
	return wikicopy.ArticleRef{Title: ref.Title}
}

// attempt fetches and normalizes one source. Output without visible text
// counts as not found.
func (i *Importer) attempt(ctx context.Context, ref wikicopy.ArticleRef, mode wikicopy.EmphasisMode, fetch fetchFunc) (string, error) {
	raw, err := fetch(ctx, ref)
	if err != nil {
		return "", err
	}

	html, err := i.Normalizer.Normalize(raw, mode)
	if err != nil {
		return "", err
	}
	if html == "" {
		return "", wikicopy.Errorf(wikicopy.ENOTFOUND, "empty content for %q", ref.Title)
	}

	if i.Text != nil {
		text, err := i.Text.PlainText(html)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", wikicopy.Errorf(wikicopy.ENOTFOUND, "no visible text for %q", ref.Title)
		}
	}
	return html, nil
}

func (i *Importer) logger() *slog.Logger {
	if i.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return i.Logger
}
