package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// httpClient wraps http.Client with the portal's JSON conventions.
type httpClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(cfg *Config) *httpClient {
	return &httpClient{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

// getJSON performs a GET request and decodes a 200 response into v.
func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func (c *httpClient) health(ctx context.Context) error {
	return c.getJSON(ctx, "/healthz", nil, nil)
}

func (c *httpClient) options(ctx context.Context) (Options, error) {
	var o Options
	err := c.getJSON(ctx, "/sports", nil, &o)
	return o, err
}

func (c *httpClient) search(ctx context.Context, q query) (Result, error) {
	param := "sport"
	if q.team {
		param = "team_sport"
	}
	var r Result
	err := c.getJSON(ctx, "/search", url.Values{param: {q.text}}, &r)
	return r, err
}
