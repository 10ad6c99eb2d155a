package mock

import "github.com/fwojciec/wikicopy"

var (
	_ wikicopy.Normalizer    = (*Normalizer)(nil)
	_ wikicopy.TextExtractor = (*TextExtractor)(nil)
	_ wikicopy.Converter     = (*Converter)(nil)
)

// Normalizer is a mock implementation of wikicopy.Normalizer.
type Normalizer struct {
	NormalizeFn func(rawHTML string, mode wikicopy.EmphasisMode) (string, error)
}

func (n *Normalizer) Normalize(rawHTML string, mode wikicopy.EmphasisMode) (string, error) {
	return n.NormalizeFn(rawHTML, mode)
}

// TextExtractor is a mock implementation of wikicopy.TextExtractor.
type TextExtractor struct {
	PlainTextFn func(doc string) (string, error)
}

func (e *TextExtractor) PlainText(doc string) (string, error) {
	return e.PlainTextFn(doc)
}

// Converter is a mock implementation of wikicopy.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
