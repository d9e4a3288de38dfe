package twittertools

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Twitter API error codes the client gives names to.
// See https://developer.twitter.com/en/docs/basics/response-codes.
const (
	CodeCouldNotAuthenticate = 32
	CodePageDoesNotExist     = 34
	CodeAccountSuspended     = 64
	CodeRateLimitExceeded    = 88
	CodeInvalidOrExpired     = 89
	CodeOverCapacity         = 130
	CodeInternalError        = 131
	CodeDuplicateStatus      = 187
	CodeBadAuthData          = 215
	CodeAccountLocked        = 326
)

// ConfigError reports missing or invalid client configuration,
// typically an unreadable or incomplete credential file.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return "config: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

// APIErrorDetail is one entry of the "errors" array Twitter attaches
// to rejected requests.
type APIErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError reports a non-2xx platform response. Status is the HTTP
// status code; Errors holds the decoded Twitter error list, which may
// be empty when the body carried no recognizable error payload.
type APIError struct {
	Endpoint string
	Status   int
	Errors   []APIErrorDetail
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.Status)
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s (code %d)", d.Message, d.Code))
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, strings.Join(msgs, "; "))
}

// HasCode reports whether the platform returned the given error code.
func (e *APIError) HasCode(code int) bool {
	for _, d := range e.Errors {
		if d.Code == code {
			return true
		}
	}
	return false
}

// RateLimited reports whether the request was rejected for exceeding
// a rate limit window.
func (e *APIError) RateLimited() bool {
	return e.Status == 429 || e.HasCode(CodeRateLimitExceeded)
}

// DuplicateStatus reports whether a status update was rejected as a
// duplicate of a recently posted tweet.
func (e *APIError) DuplicateStatus() bool {
	return e.HasCode(CodeDuplicateStatus)
}

// newAPIError builds an APIError from a response body, decoding the
// platform error list when present.
func newAPIError(endpoint string, status int, body []byte) *APIError {
	return &APIError{
		Endpoint: endpoint,
		Status:   status,
		Errors:   apiErrorDetails(body),
	}
}

// NetworkError reports a transport-level failure before any usable
// response was received.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// apiErrorDetails decodes Twitter's {"errors":[...]} error body.
// Returns nil when the body carries no such payload.
func apiErrorDetails(body []byte) []APIErrorDetail {
	var errResp struct {
		Errors []APIErrorDetail `json:"errors"`
	}
	if json.Unmarshal(body, &errResp) != nil {
		return nil
	}
	return errResp.Errors
}
