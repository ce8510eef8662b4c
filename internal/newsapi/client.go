// Package newsapi talks to the news backend: paged social and traditional
// feeds plus the generated social summary.
package newsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/summary"
)

const maxBodyBytes = 8 << 20

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListSocial fetches one page of the social-platform feed. An empty slice
// marks the end of pagination.
func (c *Client) ListSocial(ctx context.Context, page int) ([]news.Item, error) {
	return c.listPage(ctx, "/news/twitter", page, "social feed")
}

// ListTraditional fetches one page of the traditional-media feed.
func (c *Client) ListTraditional(ctx context.Context, page int) ([]news.Item, error) {
	return c.listPage(ctx, "/news/", page, "traditional feed")
}

func (c *Client) ListTab(ctx context.Context, tab news.TabID, page int) ([]news.Item, error) {
	switch tab {
	case news.TabSocial:
		return c.ListSocial(ctx, page)
	case news.TabTraditional:
		return c.ListTraditional(ctx, page)
	default:
		return nil, fmt.Errorf("unknown tab %q", tab)
	}
}

// SocialSummary fetches the generated summary text for a time range.
func (c *Client) SocialSummary(ctx context.Context, r news.Range) (string, error) {
	q := make(url.Values)
	q.Set("hour", string(r))

	body, err := c.get(ctx, "/news/twitter/summary?"+q.Encode(), "summary")
	if err != nil {
		return "", err
	}
	return summary.Decode(body), nil
}

func (c *Client) listPage(ctx context.Context, path string, page int, resource string) ([]news.Item, error) {
	if page < 1 {
		page = 1
	}
	q := make(url.Values)
	q.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, path+"?"+q.Encode(), resource)
	if err != nil {
		return nil, err
	}
	items := news.DecodeItems(body)
	log.WithFields(log.Fields{"resource": resource, "page": page, "items": len(items)}).Debug("page fetched")
	return items, nil
}

func (c *Client) get(ctx context.Context, pathAndQuery, resource string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathAndQuery, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%s failed with status %d: %s", resource, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", resource, err)
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
