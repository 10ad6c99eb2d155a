package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseFragment parses HTML as the content of a <body> element and returns
// a selection rooted at that body. Full documents are accepted too; their
// html/head/body wrappers are dropped by the parser.
func parseFragment(raw string) (*goquery.Selection, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(body).Selection, nil
}

// setAttrs replaces all attributes of n with the given key/value pairs,
// keeping their order.
func setAttrs(n *html.Node, kv ...string) {
	attrs := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	n.Attr = attrs
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// hasClass reports whether any class token of n equals one of names.
func hasClass(n *html.Node, names ...string) bool {
	class, _ := attr(n, "class")
	for _, token := range strings.Fields(class) {
		for _, name := range names {
			if token == name {
				return true
			}
		}
	}
	return false
}

// hasClassFragment reports whether any class token of n contains one of fragments.
func hasClassFragment(n *html.Node, fragments []string) bool {
	class, _ := attr(n, "class")
	for _, token := range strings.Fields(strings.ToLower(class)) {
		for _, f := range fragments {
			if strings.Contains(token, f) {
				return true
			}
		}
	}
	return false
}

// rename changes the element type of n in place.
func rename(n *html.Node, a atom.Atom) {
	n.DataAtom = a
	n.Data = a.String()
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// soleChild reports whether child is the only node of parent apart from
// whitespace text.
func soleChild(parent, child *html.Node) bool {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c == child {
			continue
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		return false
	}
	return true
}

// wrap inserts a new element of type a in place of n and moves n into it.
func wrap(n *html.Node, a atom.Atom) *html.Node {
	w := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if parent := n.Parent; parent != nil {
		parent.InsertBefore(w, n)
		parent.RemoveChild(n)
	}
	w.AppendChild(n)
	return w
}

// setText replaces the children of n with a single text node.
func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func removeComments(n *html.Node) {
	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.CommentNode {
				comments = append(comments, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	for _, c := range comments {
		c.Parent.RemoveChild(c)
	}
}
