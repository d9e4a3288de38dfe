// Package twittertools is a small client for the Twitter REST API
// v1.1: rate limit status, user profiles, timelines, tweet lookup,
// trends, follower/friend IDs, search, and status posting.
//
// The client issues strictly sequential, OAuth1-signed requests and
// assembles multi-page results before returning. It never retries or
// backs off on its own; callers are expected to consult RateLimits
// before bulk operations.
package twittertools

import (
	"context"
	"net/http"

	"github.com/dghubble/oauth1"
)

// Client is the Twitter REST API client facade.
type Client struct {
	httpClient *http.Client
	cfg        ClientConfig
}

// NewClient creates a client that signs requests with the configured
// OAuth1 credentials. Invalid credentials are a *ConfigError.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()
	if err := cfg.Credentials.validate(); err != nil {
		return nil, err
	}

	oauthCfg := oauth1.NewConfig(cfg.Credentials.ConsumerKey, cfg.Credentials.ConsumerSecret)
	token := oauth1.NewToken(cfg.Credentials.AccessToken, cfg.Credentials.AccessTokenSecret)

	ctx := oauth1.NoContext
	if cfg.Transport != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, &http.Client{Transport: cfg.Transport})
	}
	httpClient := oauthCfg.Client(ctx, token)
	httpClient.Timeout = cfg.HTTPTimeout

	return &Client{httpClient: httpClient, cfg: cfg}, nil
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string { return c.cfg.BaseURL }
