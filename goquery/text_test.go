package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wikicopy"
	"github.com/fwojciec/wikicopy/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_PlainText(t *testing.T) {
	t.Parallel()

	t.Run("returns visible text with blocks on separate lines", func(t *testing.T) {
		t.Parallel()

		doc := `<h2 class="wikipedia-heading-2">Life</h2>` +
			`<p class="wikipedia-paragraph">Hello <strong>w</strong> &amp; more</p>` +
			`<ul class="wikipedia-list"><li>a</li><li>b</li></ul>`

		text, err := goquery.NewTextExtractor().PlainText(doc)

		require.NoError(t, err)
		assert.Equal(t, "Life\nHello w & more\na\nb", text)
	})

	t.Run("separates table cells", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().PlainText(`<table><tr><td>a</td><td>b</td></tr><tr><td>c</td></tr></table>`)

		require.NoError(t, err)
		assert.Equal(t, "a b\nc", text)
	})

	t.Run("keeps literal angle brackets escaped", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().PlainText(`<p>2 &lt; 3 &gt; 1 &amp; done</p>`)

		require.NoError(t, err)
		assert.Equal(t, "2 &lt; 3 &gt; 1 & done", text)
		assert.NotContains(t, text, "<")
	})

	t.Run("escapes ampersands that would read as entities", func(t *testing.T) {
		t.Parallel()

		unescape := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
		tests := []struct {
			name string
			html string
			text string
		}{
			{name: "bare ampersand", html: `<p>AT&amp;T &lt; x</p>`, text: "AT&T < x"},
			{name: "literal entity text", html: `<p>write &amp;lt; for &lt;</p>`, text: "write &lt; for <"},
			{name: "literal escaped ampersand", html: `<p>&amp;amp; and &amp;gt;</p>`, text: "&amp; and &gt;"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				got, err := goquery.NewTextExtractor().PlainText(tt.html)

				require.NoError(t, err)
				assert.NotContains(t, got, "<")
				assert.Equal(t, tt.text, unescape.Replace(got))
			})
		}
	})

	t.Run("returns empty text for empty document", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().PlainText("")

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("contains no markup for a normalized document", func(t *testing.T) {
		t.Parallel()

		raw := `<p>Hello <b>world</b><sup><a href="#cite_note-1">[1]</a></sup> <a href="/wiki/Foo">Foo</a>.</p>` +
			`<script>var x = "<b>";</script><h3>Next</h3><p><i>more</i></p>`
		doc, err := goquery.NewNormalizer().Normalize(raw, wikicopy.ModePreserve)
		require.NoError(t, err)

		text, err := goquery.NewTextExtractor().PlainText(doc)

		require.NoError(t, err)
		assert.False(t, strings.Contains(text, "<"))
		assert.Equal(t, "Hello world[1] Foo.\nNext\nmore", text)
	})
}
