package twittertools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// do executes one signed request for a named operation and returns the
// raw response body. Transport failures become *NetworkError, non-2xx
// responses become *APIError. There is no retry.
func (c *Client) do(ctx context.Context, operation string, params url.Values) ([]byte, error) {
	method, urlStr, err := EndpointURL(operation, c.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	endpoint := Endpoints[operation].Path

	var req *http.Request
	if method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, method, urlStr, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		if len(params) > 0 {
			urlStr += "?" + params.Encode()
		}
		req, err = http.NewRequestWithContext(ctx, method, urlStr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(endpoint, resp.StatusCode, body)
		slog.Warn("twitter API request rejected",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.Bool("rate_limited", apiErr.RateLimited()))
		return nil, apiErr
	}

	slog.Debug("twitter API request",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)))
	return body, nil
}

// get executes the operation and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, operation string, params url.Values, out any) error {
	body, err := c.do(ctx, operation, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", Endpoints[operation].Path, err)
	}
	return nil
}
