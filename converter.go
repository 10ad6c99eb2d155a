package wikicopy

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a normalized document (e.g., from a Normalizer).
	Convert(html string) (string, error)
}
