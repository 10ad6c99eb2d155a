package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/wikicopy"
	"github.com/fwojciec/wikicopy/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ wikicopy.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv := htmltomarkdown.NewConverter(wikicopy.DefaultBaseURL)

	t.Run("converts a normalized paragraph", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<p class="wikipedia-paragraph">Hello, world!</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Hello, world!", md)
	})

	t.Run("converts normalized headings", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<h2 class="wikipedia-heading-2">History</h2><h3 class="wikipedia-heading-3">Origins</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## History")
		assert.Contains(t, md, "### Origins")
	})

	t.Run("keeps article links absolute", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://en.wikipedia.org/wiki/Gopher" class="wikipedia-link" target="_blank" rel="noopener noreferrer">Gopher</a>.</p>`

		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Gopher](https://en.wikipedia.org/wiki/Gopher)")
	})

	t.Run("resolves relative links against the site", func(t *testing.T) {
		t.Parallel()

		md, err := conv.Convert(`<p><a href="/wiki/Go">Go</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "(https://en.wikipedia.org/wiki/Go)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		html := `<ul class="wikipedia-list"><li>First</li><li>Second</li></ul>` +
			`<ol class="wikipedia-list wikipedia-list--numbered"><li>One</li><li>Two</li></ol>`

		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
		assert.Contains(t, md, "2. Two")
	})

	t.Run("converts preserved emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong class="wikipedia-bold">Go</strong> is <em class="wikipedia-italic">fast</em>.</p>`

		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "**Go** is *fast*.", md)
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table class="wikipedia-table"><tr><th>Year</th><th>Release</th></tr><tr><td>2009</td><td>Announced</td></tr></table>`

		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Year")
		assert.Contains(t, md, "2009")
		assert.Contains(t, md, "|")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, wikicopy.EINVALID, wikicopy.ErrorCode(err))
	})
}
