package http

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/wikicopy"
)

// Ensure ContentService implements wikicopy.ContentService at compile time.
var _ wikicopy.ContentService = (*ContentService)(nil)

// ContentService fetches article bodies: the full parser render and the
// TextExtracts plain extract.
type ContentService struct {
	client *Client
}

// NewContentService creates a new ContentService.
func NewContentService(client *Client) *ContentService {
	return &ContentService{client: client}
}

type parseResponse struct {
	Error *apiError `json:"error"`
	Parse struct {
		Title  string `json:"title"`
		PageID int    `json:"pageid"`
		Text   string `json:"text"`
	} `json:"parse"`
}

type extractResponse struct {
	Error *apiError `json:"error"`
	Query struct {
		Pages []struct {
			PageID  int    `json:"pageid"`
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// FetchRendered returns the parser output HTML of the article.
func (s *ContentService) FetchRendered(ctx context.Context, ref wikicopy.ArticleRef) (string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("prop", "text")
	params.Set("redirects", "1")
	switch {
	case ref.HasAuthoritativeID():
		params.Set("pageid", strconv.Itoa(ref.ID))
	case ref.Title != "":
		params.Set("page", ref.Title)
	default:
		return "", wikicopy.Errorf(wikicopy.EINVALID, "article id or title required")
	}

	var resp parseResponse
	if err := s.client.get(ctx, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", resp.Error.err()
	}
	if strings.TrimSpace(resp.Parse.Text) == "" {
		return "", wikicopy.Errorf(wikicopy.ENOTFOUND, "article has no rendered content")
	}

	return resp.Parse.Text, nil
}

// FetchExtract returns the plain HTML extract of the article.
func (s *ContentService) FetchExtract(ctx context.Context, ref wikicopy.ArticleRef) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exsectionformat", "wiki")
	params.Set("redirects", "1")
	switch {
	case ref.HasAuthoritativeID():
		params.Set("pageids", strconv.Itoa(ref.ID))
	case ref.Title != "":
		params.Set("titles", ref.Title)
	default:
		return "", wikicopy.Errorf(wikicopy.EINVALID, "article id or title required")
	}

	var resp extractResponse
	if err := s.client.get(ctx, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", resp.Error.err()
	}

	for _, p := range resp.Query.Pages {
		if !p.Missing && strings.TrimSpace(p.Extract) != "" {
			return p.Extract, nil
		}
	}
	return "", wikicopy.Errorf(wikicopy.ENOTFOUND, "article has no extract")
}
