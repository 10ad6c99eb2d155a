package goquery

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/wikicopy"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure SnippetSanitizer implements wikicopy.SnippetSanitizer at compile time.
var _ wikicopy.SnippetSanitizer = (*SnippetSanitizer)(nil)

var citationMarker = regexp.MustCompile(`\[\d+\]`)

// snippetTags maps the inline tags a snippet may keep to their output form.
var snippetTags = map[atom.Atom]string{
	atom.B:      "strong",
	atom.Strong: "strong",
	atom.I:      "em",
	atom.Em:     "em",
}

// SnippetSanitizer reduces search snippets to text with strong/em markup.
type SnippetSanitizer struct{}

// NewSnippetSanitizer creates a new SnippetSanitizer.
func NewSnippetSanitizer() *SnippetSanitizer {
	return &SnippetSanitizer{}
}

// Sanitize drops citation markers and every tag except bold and italic,
// collapses whitespace and caps the visible text at maxLen runes.
// Truncated snippets end with "..." after any open tags are closed.
// A maxLen of zero or less disables the cap.
func (s *SnippetSanitizer) Sanitize(snippet string, maxLen int) string {
	if strings.TrimSpace(snippet) == "" {
		return ""
	}

	root, err := parseFragment(snippet)
	if err != nil {
		return ""
	}

	w := &snippetWriter{max: maxLen}
	w.walk(root.Get(0))
	if w.truncated {
		w.b.WriteString("...")
	}
	return w.b.String()
}

type snippetWriter struct {
	b         strings.Builder
	max       int
	n         int
	pending   bool // whitespace seen since the last emitted rune
	truncated bool
}

func (w *snippetWriter) walk(n *xhtml.Node) {
	for c := n.FirstChild; c != nil && !w.truncated; c = c.NextSibling {
		switch c.Type {
		case xhtml.TextNode:
			w.text(c.Data)
		case xhtml.ElementNode:
			if c.DataAtom == atom.Script || c.DataAtom == atom.Style {
				continue
			}
			if c.DataAtom == atom.Sup && hasClass(c, "reference") {
				continue
			}
			tag, ok := snippetTags[c.DataAtom]
			if !ok {
				w.walk(c)
				continue
			}
			w.b.WriteString("<" + tag + ">")
			w.walk(c)
			w.b.WriteString("</" + tag + ">")
		}
	}
}

func (w *snippetWriter) text(s string) {
	s = citationMarker.ReplaceAllString(s, "")
	for _, r := range s {
		if unicode.IsSpace(r) {
			w.pending = w.n > 0
			continue
		}
		if w.pending {
			if !w.emit(' ') {
				return
			}
			w.pending = false
		}
		if !w.emit(r) {
			return
		}
	}
}

// emit writes r unless the budget is spent, in which case it marks the
// snippet truncated and returns false.
func (w *snippetWriter) emit(r rune) bool {
	if w.max > 0 && w.n >= w.max {
		w.truncated = true
		return false
	}
	switch r {
	case '&':
		w.b.WriteString("&amp;")
	case '<':
		w.b.WriteString("&lt;")
	case '>':
		w.b.WriteString("&gt;")
	default:
		w.b.WriteRune(r)
	}
	w.n++
	return true
}
