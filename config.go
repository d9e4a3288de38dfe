package twittertools

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Credentials is the OAuth1 credential bundle used to sign every
// request. It is immutable for the lifetime of the client.
type Credentials struct {
	ConsumerKey       string `json:"consumer_key" split_words:"true"`
	ConsumerSecret    string `json:"consumer_secret" split_words:"true"`
	AccessToken       string `json:"access_token" split_words:"true"`
	AccessTokenSecret string `json:"access_token_secret" split_words:"true"`
}

// validate checks that all four fields are present.
func (c Credentials) validate() error {
	switch {
	case c.ConsumerKey == "":
		return &ConfigError{Reason: "missing consumer_key"}
	case c.ConsumerSecret == "":
		return &ConfigError{Reason: "missing consumer_secret"}
	case c.AccessToken == "":
		return &ConfigError{Reason: "missing access_token"}
	case c.AccessTokenSecret == "":
		return &ConfigError{Reason: "missing access_token_secret"}
	}
	return nil
}

// LoadCredentials reads an application credential file: a JSON object
// with the four snake_case fields of Credentials. A missing file,
// malformed content, or an empty field is a *ConfigError.
func LoadCredentials(path string) (Credentials, error) {
	var creds Credentials
	b, err := os.ReadFile(path)
	if err != nil {
		return creds, &ConfigError{Reason: "read credentials file", Err: err}
	}
	if err := json.Unmarshal(b, &creds); err != nil {
		return creds, &ConfigError{Reason: "parse credentials file", Err: err}
	}
	if err := creds.validate(); err != nil {
		return creds, err
	}
	return creds, nil
}

// CredentialsFromEnv reads credentials from TWITTER_CONSUMER_KEY,
// TWITTER_CONSUMER_SECRET, TWITTER_ACCESS_TOKEN, and
// TWITTER_ACCESS_TOKEN_SECRET.
func CredentialsFromEnv() (Credentials, error) {
	var creds Credentials
	if err := envconfig.Process("twitter", &creds); err != nil {
		return creds, &ConfigError{Reason: "read credentials from environment", Err: err}
	}
	if err := creds.validate(); err != nil {
		return creds, err
	}
	return creds, nil
}

// ClientConfig holds all configuration for the client.
type ClientConfig struct {
	// Credentials signs every outgoing request. Required.
	Credentials Credentials

	// BaseURL overrides the API root, mainly for tests.
	// Default: https://api.twitter.com/1.1
	BaseURL string

	// HTTPTimeout bounds each individual HTTP request.
	HTTPTimeout time.Duration

	// UserAgent is sent on every request.
	UserAgent string

	// Transport overrides the base RoundTripper the OAuth1 signer
	// wraps. Nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "twittertools/1.0"
	}
}
