package wikicopy

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// snippetTags are the only tags a sanitized snippet carries.
var snippetTags = strings.NewReplacer("<strong>", "", "</strong>", "", "<em>", "", "</em>", "")

// FormatCandidates formats a search result list for terminal display.
// Each entry is numbered from 1 so a user can pick it by index, and lists
// the article's page on the site at baseURL and its thumbnail when known.
// Placeholder ids are flagged since they cannot be trusted for fetching.
func FormatCandidates(baseURL string, candidates []SearchCandidate) string {
	if len(candidates) == 0 {
		return ""
	}

	parts := make([]string, 0, len(candidates))
	for i, c := range candidates {
		id := strconv.Itoa(c.ID)
		if c.Placeholder {
			id += "?"
		}
		entry := strconv.Itoa(i+1) + ". " + c.Title + " [" + id + "]"
		if c.Snippet != "" {
			entry += "\n   " + html.UnescapeString(snippetTags.Replace(c.Snippet))
		}
		entry += "\n   " + ArticleURL(baseURL, c.Title)
		if c.ThumbnailURL != "" {
			entry += "\n   thumbnail: " + c.ThumbnailURL
		}
		parts = append(parts, entry)
	}

	return strings.Join(parts, "\n")
}
