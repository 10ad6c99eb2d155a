package wikicopy

import "strings"

// EmphasisMode selects how bold and italic markup is treated.
type EmphasisMode string

// Emphasis modes. ModeStrip is the default.
const (
	ModeStrip    EmphasisMode = "strip"
	ModePreserve EmphasisMode = "preserve"
)

// ParseEmphasisMode parses a mode name. The empty string maps to ModeStrip.
func ParseEmphasisMode(s string) (EmphasisMode, error) {
	switch EmphasisMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeStrip:
		return ModeStrip, nil
	case ModePreserve:
		return ModePreserve, nil
	}
	return "", Errorf(EINVALID, "unknown emphasis mode %q", s)
}

// Canonical presentation classes applied by the Normalizer.
const (
	ClassContent      = "wikipedia-content"
	ClassLink         = "wikipedia-link"
	ClassCitation     = "wikipedia-citation"
	ClassHeading2     = "wikipedia-heading-2"
	ClassHeading3     = "wikipedia-heading-3"
	ClassHeading4     = "wikipedia-heading-4"
	ClassParagraph    = "wikipedia-paragraph"
	ClassList         = "wikipedia-list"
	ClassListNumbered = "wikipedia-list--numbered"
	ClassTable        = "wikipedia-table"
	ClassBold         = "wikipedia-bold"
	ClassItalic       = "wikipedia-italic"
)

// Normalizer rewrites raw encyclopedia HTML into the restricted output dialect.
type Normalizer interface {
	// Normalize returns the normalized document. Empty input yields "".
	Normalize(rawHTML string, mode EmphasisMode) (string, error)
}

// TextExtractor projects a normalized document onto its visible text.
type TextExtractor interface {
	PlainText(doc string) (string, error)
}
