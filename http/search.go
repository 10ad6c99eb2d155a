package http

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"

	"github.com/fwojciec/wikicopy"
)

// Ensure search services implement wikicopy.Searcher at compile time.
var (
	_ wikicopy.Searcher = (*PrefixSearchService)(nil)
	_ wikicopy.Searcher = (*OpenSearchService)(nil)
)

// PrefixSearchService searches article titles by prefix and returns intro
// extracts, thumbnails and page ids in one request.
type PrefixSearchService struct {
	client *Client
}

// NewPrefixSearchService creates a new PrefixSearchService.
func NewPrefixSearchService(client *Client) *PrefixSearchService {
	return &PrefixSearchService{client: client}
}

type prefixSearchResponse struct {
	Error *apiError `json:"error"`
	Query struct {
		Pages []struct {
			PageID    int    `json:"pageid"`
			Title     string `json:"title"`
			Index     int    `json:"index"`
			Extract   string `json:"extract"`
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// Search returns up to limit candidates ordered by the upstream ranking.
func (s *PrefixSearchService) Search(ctx context.Context, query string, limit int) ([]wikicopy.SearchCandidate, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("generator", "prefixsearch")
	params.Set("gpssearch", query)
	params.Set("gpslimit", strconv.Itoa(limit))
	params.Set("prop", "extracts|pageimages")
	params.Set("exintro", "1")
	params.Set("exsentences", "2")
	params.Set("exchars", "200")
	params.Set("exlimit", "max")
	params.Set("exsectionformat", "wiki")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", "100")

	var resp prefixSearchResponse
	if err := s.client.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, resp.Error.err()
	}

	pages := resp.Query.Pages
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Index < pages[j].Index
	})

	candidates := make([]wikicopy.SearchCandidate, 0, len(pages))
	for _, p := range pages {
		c := wikicopy.SearchCandidate{
			ID:      p.PageID,
			Title:   p.Title,
			Snippet: p.Extract,
		}
		if p.Thumbnail != nil {
			c.ThumbnailURL = p.Thumbnail.Source
		}
		candidates = append(candidates, c)
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// OpenSearchService uses the OpenSearch suggestion API. It returns titles
// and descriptions only; candidate ids are left at zero.
type OpenSearchService struct {
	client *Client
}

// NewOpenSearchService creates a new OpenSearchService.
func NewOpenSearchService(client *Client) *OpenSearchService {
	return &OpenSearchService{client: client}
}

// Search returns up to limit candidates in suggestion order.
func (s *OpenSearchService) Search(ctx context.Context, query string, limit int) ([]wikicopy.SearchCandidate, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("namespace", "0")

	// Response shape: [query, [titles], [descriptions], [urls]].
	var resp []json.RawMessage
	if err := s.client.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if len(resp) < 2 {
		return nil, wikicopy.Errorf(wikicopy.EUNAVAILABLE, "malformed opensearch response")
	}

	var titles, descriptions []string
	if err := json.Unmarshal(resp[1], &titles); err != nil {
		return nil, wikicopy.Errorf(wikicopy.EUNAVAILABLE, "malformed opensearch titles: %v", err)
	}
	if len(resp) > 2 {
		// Descriptions are optional; some wikis send an empty list.
		_ = json.Unmarshal(resp[2], &descriptions)
	}

	candidates := make([]wikicopy.SearchCandidate, 0, len(titles))
	for i, title := range titles {
		c := wikicopy.SearchCandidate{Title: title}
		if i < len(descriptions) {
			c.Snippet = descriptions[i]
		}
		candidates = append(candidates, c)
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}
