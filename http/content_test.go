package http_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/fwojciec/wikicopy"
	wchttp "github.com/fwojciec/wikicopy/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_FetchRendered(t *testing.T) {
	t.Parallel()

	t.Run("fetches render by page id", func(t *testing.T) {
		t.Parallel()

		var got url.Values
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			writeJSON(w, `{"parse":{"title":"Foo","pageid":42,"text":"<div class=\"mw-parser-output\"><p>Foo</p></div>"}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		html, err := wchttp.NewContentService(client).FetchRendered(context.Background(), wikicopy.ArticleRef{Title: "Foo", ID: 42})

		require.NoError(t, err)
		assert.Equal(t, `<div class="mw-parser-output"><p>Foo</p></div>`, html)
		assert.Equal(t, "parse", got.Get("action"))
		assert.Equal(t, "42", got.Get("pageid"))
		assert.Empty(t, got.Get("page"))
	})

	t.Run("fetches by title when id is a placeholder", func(t *testing.T) {
		t.Parallel()

		var got url.Values
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			writeJSON(w, `{"parse":{"title":"Foo","pageid":42,"text":"<p>Foo</p>"}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		ref := wikicopy.ArticleRef{Title: "Foo", ID: wikicopy.PlaceholderID("Foo"), Placeholder: true}
		_, err := wchttp.NewContentService(client).FetchRendered(context.Background(), ref)

		require.NoError(t, err)
		assert.Equal(t, "Foo", got.Get("page"))
		assert.Empty(t, got.Get("pageid"))
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"error":{"code":"nosuchpageid","info":"There is no page with ID 42."}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewContentService(client).FetchRendered(context.Background(), wikicopy.ArticleRef{ID: 42})

		require.Error(t, err)
		assert.Equal(t, wikicopy.ENOTFOUND, wikicopy.ErrorCode(err))
	})

	t.Run("returns not found for empty render", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"parse":{"title":"Foo","pageid":42,"text":"  "}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewContentService(client).FetchRendered(context.Background(), wikicopy.ArticleRef{ID: 42})

		require.Error(t, err)
		assert.Equal(t, wikicopy.ENOTFOUND, wikicopy.ErrorCode(err))
	})

	t.Run("rejects ref without id or title", func(t *testing.T) {
		t.Parallel()

		client := wchttp.NewClient(wchttp.WithBaseURL("http://non-existent-host.invalid"))
		_, err := wchttp.NewContentService(client).FetchRendered(context.Background(), wikicopy.ArticleRef{})

		require.Error(t, err)
		assert.Equal(t, wikicopy.EINVALID, wikicopy.ErrorCode(err))
	})
}

func TestContentService_FetchExtract(t *testing.T) {
	t.Parallel()

	t.Run("fetches extract by page id", func(t *testing.T) {
		t.Parallel()

		var got url.Values
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			writeJSON(w, `{"query":{"pages":[{"pageid":42,"title":"Foo","extract":"<p><b>Foo</b> is a bar.</p>"}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		html, err := wchttp.NewContentService(client).FetchExtract(context.Background(), wikicopy.ArticleRef{Title: "Foo", ID: 42})

		require.NoError(t, err)
		assert.Equal(t, "<p><b>Foo</b> is a bar.</p>", html)
		assert.Equal(t, "extracts", got.Get("prop"))
		assert.Equal(t, "42", got.Get("pageids"))
	})

	t.Run("fetches by title without id", func(t *testing.T) {
		t.Parallel()

		var got url.Values
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			writeJSON(w, `{"query":{"pages":[{"pageid":42,"title":"Foo","extract":"<p>Foo</p>"}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewContentService(client).FetchExtract(context.Background(), wikicopy.ArticleRef{Title: "Foo"})

		require.NoError(t, err)
		assert.Equal(t, "Foo", got.Get("titles"))
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"query":{"pages":[{"pageid":42,"missing":true}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewContentService(client).FetchExtract(context.Background(), wikicopy.ArticleRef{ID: 42})

		require.Error(t, err)
		assert.Equal(t, wikicopy.ENOTFOUND, wikicopy.ErrorCode(err))
	})

	t.Run("returns not found for empty extract", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"query":{"pages":[{"pageid":42,"title":"Foo","extract":""}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewContentService(client).FetchExtract(context.Background(), wikicopy.ArticleRef{ID: 42})

		require.Error(t, err)
		assert.Equal(t, wikicopy.ENOTFOUND, wikicopy.ErrorCode(err))
	})
}
