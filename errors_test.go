package twittertools

import (
	"errors"
	"testing"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		code        int
		wantCode    bool
		rateLimited bool
	}{
		{"no error body", 500, `oops`, CodeInternalError, false, false},
		{"empty errors", 403, `{"errors":[]}`, CodeRateLimitExceeded, false, false},
		{"rate limit 88", 403, `{"errors":[{"code":88,"message":"Rate limit exceeded"}]}`, CodeRateLimitExceeded, true, true},
		{"status 429 without code", 429, `{}`, CodeRateLimitExceeded, false, true},
		{"duplicate 187", 403, `{"errors":[{"code":187,"message":"Status is a duplicate."}]}`, CodeDuplicateStatus, true, false},
		{"auth 32", 401, `{"errors":[{"code":32,"message":"Could not authenticate you."}]}`, CodeCouldNotAuthenticate, true, false},
		{"multiple codes", 403, `{"errors":[{"code":64},{"code":88}]}`, CodeAccountSuspended, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError("/search/tweets", tt.status, []byte(tt.body))
			if err.Status != tt.status {
				t.Fatalf("Status = %d, want %d", err.Status, tt.status)
			}
			if got := err.HasCode(tt.code); got != tt.wantCode {
				t.Fatalf("HasCode(%d) = %v, want %v", tt.code, got, tt.wantCode)
			}
			if got := err.RateLimited(); got != tt.rateLimited {
				t.Fatalf("RateLimited() = %v, want %v", got, tt.rateLimited)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := newAPIError("/statuses/update", 403, []byte(`{"errors":[{"code":187,"message":"Status is a duplicate."}]}`))
	want := "/statuses/update: HTTP 403: Status is a duplicate. (code 187)"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if !err.DuplicateStatus() {
		t.Fatal("expected DuplicateStatus")
	}

	bare := newAPIError("/users/lookup", 404, []byte(`not json`))
	if bare.Error() != "/users/lookup: HTTP 404" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Endpoint: "/search/tweets", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected errors.Is to reach the wrapped error")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Reason: "missing consumer_key"}
	if err.Error() != "config: missing consumer_key" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
