package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/wikicopy"
)

// Ensure IDService implements wikicopy.IDResolver at compile time.
var _ wikicopy.IDResolver = (*IDService)(nil)

// IDService resolves article titles to page ids, following redirects.
type IDService struct {
	client *Client
}

// NewIDService creates a new IDService.
func NewIDService(client *Client) *IDService {
	return &IDService{client: client}
}

type pageInfoResponse struct {
	Error *apiError `json:"error"`
	Query struct {
		Pages []struct {
			PageID  int    `json:"pageid"`
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
		} `json:"pages"`
	} `json:"query"`
}

// ResolveID returns the page id of the article titled title.
func (s *IDService) ResolveID(ctx context.Context, title string) (int, error) {
	if title == "" {
		return 0, wikicopy.Errorf(wikicopy.EINVALID, "title required")
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("redirects", "1")

	var resp pageInfoResponse
	if err := s.client.get(ctx, params, &resp); err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, resp.Error.err()
	}

	for _, p := range resp.Query.Pages {
		if !p.Missing && !p.Invalid && p.PageID > 0 {
			return p.PageID, nil
		}
	}
	return 0, wikicopy.Errorf(wikicopy.ENOTFOUND, "article %q not found", title)
}
