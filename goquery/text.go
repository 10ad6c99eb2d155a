package goquery

import (
	"strings"

	"github.com/fwojciec/wikicopy"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure TextExtractor implements wikicopy.TextExtractor at compile time.
var _ wikicopy.TextExtractor = (*TextExtractor)(nil)

// blockElements start a new line in the plain-text projection.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Blockquote: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.Table: true, atom.Tr: true, atom.Caption: true, atom.Pre: true, atom.Hr: true,
}

// textEscaper keeps markup delimiters out of plain text. An ampersand is
// escaped only where it would otherwise read as one of the three entities,
// so replacing &lt; &gt; and &amp; in a single pass restores the text.
var textEscaper = strings.NewReplacer(
	"&lt;", "&amp;lt;",
	"&gt;", "&amp;gt;",
	"&amp;", "&amp;amp;",
	"<", "&lt;",
	">", "&gt;",
)

// TextExtractor projects HTML onto its visible text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// PlainText returns the visible text of doc. Block elements end up on their
// own lines. Entities are decoded except for angle brackets, which come out
// as &lt; and &gt; so the output never contains markup delimiters. A bare
// ampersand is kept as is ("AT&T"); one that is followed by lt; gt; or amp;
// is written as &amp;, which keeps the escaping reversible.
func (e *TextExtractor) PlainText(doc string) (string, error) {
	if strings.TrimSpace(doc) == "" {
		return "", nil
	}

	root, err := parseFragment(doc)
	if err != nil {
		return "", wikicopy.Errorf(wikicopy.EINVALID, "failed to parse HTML: %v", err)
	}

	var b strings.Builder
	writeText(&b, root.Get(0))

	lines := strings.Split(b.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}

func writeText(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(textEscaper.Replace(c.Data))
		case html.ElementNode:
			switch {
			case c.DataAtom == atom.Script || c.DataAtom == atom.Style:
				continue
			case c.DataAtom == atom.Br:
				b.WriteByte('\n')
			case c.DataAtom == atom.Td || c.DataAtom == atom.Th:
				writeText(b, c)
				b.WriteByte(' ')
			case blockElements[c.DataAtom]:
				b.WriteByte('\n')
				writeText(b, c)
				b.WriteByte('\n')
			default:
				writeText(b, c)
			}
		}
	}
}
