// Package goquery implements HTML normalization, plain-text projection and
// snippet sanitizing on top of goquery and golang.org/x/net/html.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikicopy"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Normalizer implements wikicopy.Normalizer at compile time.
var _ wikicopy.Normalizer = (*Normalizer)(nil)

// Rel value for links that open in a new browsing context.
const relExternal = "noopener noreferrer"

// mediaSelector matches media elements removed together with their children.
const mediaSelector = "img, audio, video, figure, picture, embed, object, svg, iframe"

// clutterClassFragments match class tokens of containers that are removed
// whatever their element type: thumbnails, galleries, floats, navigation
// boxes, reference lists and infoboxes.
var clutterClassFragments = []string{
	"thumb",
	"gallery",
	"float",
	"navbox",
	"sidebar",
	"hatnote",
	"reflist",
	"references",
	"infobox",
	"vcard",
}

// hygieneSelector matches elements removed in the final pass.
const hygieneSelector = "script, style, link, meta, noscript, title"

var citationText = regexp.MustCompile(`^\[(\d+)\]$`)

var headingClasses = map[atom.Atom]string{
	atom.H1: wikicopy.ClassHeading2,
	atom.H2: wikicopy.ClassHeading2,
	atom.H3: wikicopy.ClassHeading3,
	atom.H4: wikicopy.ClassHeading4,
	atom.H5: wikicopy.ClassHeading4,
	atom.H6: wikicopy.ClassHeading4,
}

// rule is one step of the normalization pipeline. Each rule sees the tree
// as left by the rules before it.
type rule struct {
	name  string
	apply func(root *goquery.Selection, env ruleEnv)
}

type ruleEnv struct {
	baseURL string
	mode    wikicopy.EmphasisMode
}

// pipeline lists the rules in the order they run.
var pipeline = []rule{
	{name: "media", apply: removeMedia},
	{name: "chrome", apply: removeChrome},
	{name: "links", apply: classifyLinks},
	{name: "citations", apply: normalizeCitations},
	{name: "headings", apply: classHeadings},
	{name: "blocks", apply: classBlocks},
	{name: "emphasis", apply: applyEmphasis},
	{name: "hygiene", apply: removeUnsafe},
}

// Normalizer rewrites encyclopedia HTML into the restricted output dialect
// by running an ordered rule pipeline over the parsed tree.
type Normalizer struct {
	baseURL string
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithBaseURL sets the site root that relative links resolve against.
// Defaults to wikicopy.DefaultBaseURL.
func WithBaseURL(baseURL string) NormalizerOption {
	return func(n *Normalizer) {
		n.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{baseURL: wikicopy.DefaultBaseURL}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// RuleNames returns the pipeline's rule names in execution order.
func (n *Normalizer) RuleNames() []string {
	names := make([]string, len(pipeline))
	for i, r := range pipeline {
		names[i] = r.name
	}
	return names
}

// Normalize parses rawHTML, applies every rule in order and serializes the result.
func (n *Normalizer) Normalize(rawHTML string, mode wikicopy.EmphasisMode) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}
	if mode == "" {
		mode = wikicopy.ModeStrip
	}

	root, err := parseFragment(rawHTML)
	if err != nil {
		return "", wikicopy.Errorf(wikicopy.EINVALID, "failed to parse HTML: %v", err)
	}

	env := ruleEnv{baseURL: n.baseURL, mode: mode}
	for _, r := range pipeline {
		r.apply(root, env)
	}

	out, err := root.Html()
	if err != nil {
		return "", wikicopy.Errorf(wikicopy.EINTERNAL, "failed to render HTML: %v", err)
	}
	return strings.TrimSpace(out), nil
}

func removeMedia(root *goquery.Selection, _ ruleEnv) {
	root.Find(mediaSelector).Remove()
	root.Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return hasClassFragment(s.Get(0), clutterClassFragments)
	}).Remove()
}

func removeChrome(root *goquery.Selection, _ ruleEnv) {
	root.Find(".mw-editsection").Remove()
	root.Find(".mw-parser-output").SetAttr("class", wikicopy.ClassContent)
}

func classifyLinks(root *goquery.Selection, env ruleEnv) {
	root.Find("a").Each(func(_ int, s *goquery.Selection) {
		a := s.Get(0)
		href, hasHref := attr(a, "href")

		if abs, ok := absoluteURL(env.baseURL, href); hasHref && ok {
			setAttrs(a, "href", abs, "class", wikicopy.ClassLink, "target", "_blank", "rel", relExternal)
			return
		}

		target, _ := attr(a, "target")
		external := hasClass(a, "external", "extiw") || target == "_blank"

		switch {
		case !hasHref || isScriptLink(href):
			setAttrs(a, "class", wikicopy.ClassLink)
		case external:
			setAttrs(a, "href", withScheme(env.baseURL, href), "class", wikicopy.ClassLink, "target", "_blank", "rel", relExternal)
		default:
			setAttrs(a, "href", href, "class", wikicopy.ClassLink)
		}
	})
}

func normalizeCitations(root *goquery.Selection, _ ruleEnv) {
	root.Find(`a[href^="#"]`).Each(func(_ int, s *goquery.Selection) {
		m := citationText.FindStringSubmatch(strings.TrimSpace(s.Text()))
		if m == nil {
			return
		}

		a := s.Get(0)
		setAttrs(a, "href", "#citation-"+m[1], "class", wikicopy.ClassCitation)
		setText(a, "["+m[1]+"]")

		if sup, wrappers := enclosingSup(a); sup != nil {
			for _, w := range wrappers {
				unwrap(w)
			}
			sup.Attr = nil
			return
		}
		wrap(a, atom.Sup)
	})
}

// citationWrappers may sit between a citation anchor and its superscript.
var citationWrappers = map[atom.Atom]bool{
	atom.Span:   true,
	atom.Small:  true,
	atom.Font:   true,
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
}

// enclosingSup returns the sup holding a together with the inline wrappers
// in between, innermost first. Each wrapper must hold nothing but the path
// to a.
func enclosingSup(a *html.Node) (*html.Node, []*html.Node) {
	var wrappers []*html.Node
	for n := a; ; {
		p := n.Parent
		if p == nil || p.Type != html.ElementNode {
			return nil, nil
		}
		if p.DataAtom == atom.Sup {
			return p, wrappers
		}
		if !citationWrappers[p.DataAtom] || !soleChild(p, n) {
			return nil, nil
		}
		wrappers = append(wrappers, p)
		n = p
	}
}

func classHeadings(root *goquery.Selection, _ ruleEnv) {
	root.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.SetAttr("class", headingClasses[s.Get(0).DataAtom])
	})
}

func classBlocks(root *goquery.Selection, _ ruleEnv) {
	root.Find("p").SetAttr("class", wikicopy.ClassParagraph)
	root.Find("ul").SetAttr("class", wikicopy.ClassList)
	root.Find("ol").SetAttr("class", wikicopy.ClassList+" "+wikicopy.ClassListNumbered)
	root.Find("table").SetAttr("class", wikicopy.ClassTable)
}

func applyEmphasis(root *goquery.Selection, env ruleEnv) {
	if env.mode == wikicopy.ModePreserve {
		root.Find("b, strong").Each(func(_ int, s *goquery.Selection) {
			rename(s.Get(0), atom.Strong)
			s.SetAttr("class", wikicopy.ClassBold)
		})
		root.Find("i, em").Each(func(_ int, s *goquery.Selection) {
			rename(s.Get(0), atom.Em)
			s.SetAttr("class", wikicopy.ClassItalic)
		})
		return
	}

	root.Find("b, i, strong, em").Each(func(_ int, s *goquery.Selection) {
		unwrap(s.Get(0))
	})
}

func removeUnsafe(root *goquery.Selection, _ ruleEnv) {
	root.Find(hygieneSelector).Remove()
	removeComments(root.Get(0))
	root.Find("[style]").RemoveAttr("style")
}
