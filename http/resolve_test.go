package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/fwojciec/wikicopy"
	wchttp "github.com/fwojciec/wikicopy/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDService_ResolveID(t *testing.T) {
	t.Parallel()

	t.Run("returns page id for exact title", func(t *testing.T) {
		t.Parallel()

		var gotTitles, gotRedirects string
		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotTitles = r.URL.Query().Get("titles")
			gotRedirects = r.URL.Query().Get("redirects")
			writeJSON(w, `{"query":{"pages":[{"pageid":736,"ns":0,"title":"Albert Einstein"}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		id, err := wchttp.NewIDService(client).ResolveID(context.Background(), "Albert Einstein")

		require.NoError(t, err)
		assert.Equal(t, 736, id)
		assert.Equal(t, "Albert Einstein", gotTitles)
		assert.Equal(t, "1", gotRedirects)
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"query":{"pages":[{"ns":0,"title":"Nope","missing":true}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewIDService(client).ResolveID(context.Background(), "Nope")

		require.Error(t, err)
		assert.Equal(t, wikicopy.ENOTFOUND, wikicopy.ErrorCode(err))
	})

	t.Run("returns not found for invalid title", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"query":{"pages":[{"title":"<","invalidreason":"bad","invalid":true}]}}`)
		})

		client := wchttp.NewClient(wchttp.WithBaseURL(server.URL))
		_, err := wchttp.NewIDService(client).ResolveID(context.Background(), "<")

		require.Error(t, err)
		assert.Equal(t, wikicopy.ENOTFOUND, wikicopy.ErrorCode(err))
	})

	t.Run("rejects empty title without a request", func(t *testing.T) {
		t.Parallel()

		client := wchttp.NewClient(wchttp.WithBaseURL("http://non-existent-host.invalid"))
		_, err := wchttp.NewIDService(client).ResolveID(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, wikicopy.EINVALID, wikicopy.ErrorCode(err))
	})
}
