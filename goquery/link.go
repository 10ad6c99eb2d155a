package goquery

import (
	"net/url"
	"strings"
)

// absoluteURL resolves a site-relative href against the site's base URL.
// Root-relative paths are joined to the base as-is; other relative
// references resolve against the article path (<base>/wiki/).
// Returns ok=false for fragment-only, absolute, and non-HTTP hrefs.
func absoluteURL(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
		return "", false
	}
	if strings.HasPrefix(href, "//") {
		return "", false
	}
	if strings.HasPrefix(href, "/") {
		return strings.TrimSuffix(base, "/") + href, true
	}

	ref, err := url.Parse(href)
	if err != nil || ref.Scheme != "" || ref.Host != "" {
		return "", false
	}
	articles, err := url.Parse(strings.TrimSuffix(base, "/") + "/wiki/")
	if err != nil {
		return "", false
	}
	return articles.ResolveReference(ref).String(), true
}

// withScheme gives protocol-relative hrefs the base URL's scheme.
func withScheme(base, href string) string {
	if !strings.HasPrefix(href, "//") {
		return href
	}
	scheme := "https"
	if u, err := url.Parse(base); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}
	return scheme + ":" + href
}

// isNonHTTPLink checks if a href is a non-HTTP link.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// isScriptLink reports whether href would run script when followed.
func isScriptLink(href string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:")
}
