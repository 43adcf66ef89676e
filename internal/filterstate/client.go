package filterstate

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/robertwachen/fritterfrontend/internal/feed"
	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
	"github.com/robertwachen/fritterfrontend/pkg/httpserver"
)

// FeedClient fetches a resolved feed for an encoded filter set.
type FeedClient interface {
	FetchFeed(ctx context.Context, query string) ([]feed.FreetResponse, error)
}

type HTTPClient struct {
	baseURL string
	viewer  uuid.UUID
	http    *http.Client
}

// NewHTTPClient talks to the feed API at baseURL as viewer. uuid.Nil
// browses anonymously.
func NewHTTPClient(baseURL string, viewer uuid.UUID, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		viewer:  viewer,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) FetchFeed(ctx context.Context, query string) ([]feed.FreetResponse, error) {
	url := c.baseURL + "/api/freets"
	if query != "" {
		url += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "filterstate: build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.viewer != uuid.Nil {
		req.Header.Set(httpserver.ViewerHeader, c.viewer.String())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "filterstate: fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error *appErrors.AppError `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == nil {
			return nil, errors.Errorf("filterstate: feed request failed with status %d", resp.StatusCode)
		}
		return nil, body.Error
	}

	var posts []feed.FreetResponse
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, errors.Wrap(err, "filterstate: decode feed")
	}
	return posts, nil
}
