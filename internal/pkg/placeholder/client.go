package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
)

const maxResponseSize = 10 << 20

// Client fetches the user collection from a JSONPlaceholder-compatible endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetUsers performs a single GET and returns the decoded users with liked set to false.
// Every failure wraps model.ErrFetchFailed.
func (c *Client) GetUsers(ctx context.Context) ([]*model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", model.ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, fmt.Errorf("%w: HTTP error! status: %d", model.ErrFetchFailed, resp.StatusCode)
	}

	var dtos []*userDTO
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", model.ErrFetchFailed, err)
	}

	res := make([]*model.User, 0, len(dtos))
	for _, d := range dtos {
		if d == nil {
			continue
		}
		res = append(res, mapToUser(d))
	}

	return res, nil
}
