package gh

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"emperror.dev/errors"
	"github.com/simplegithub/sgh/internal/utils/errutils"
)

var ErrNoGitHubToken = errors.Sentinel("No GitHub token is set (do you need to configure one?).")

// APIError is a non-2xx response from the GitHub REST API.
type APIError struct {
	StatusCode int
	// Message is the "message" field of the response body, if any.
	Message          string
	DocumentationURL string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("GitHub API request failed with status %d", e.StatusCode)
}

func newAPIError(res *http.Response, body []byte) *APIError {
	apiErr := &APIError{StatusCode: res.StatusCode}
	var payload struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.DocumentationURL = payload.DocumentationURL
	}
	return apiErr
}

// IsHTTPUnauthorized returns true if the given error is an HTTP 401 Unauthorized error.
func IsHTTPUnauthorized(err error) bool {
	if apiErr, ok := errutils.As[*APIError](err); ok {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	// The GraphQL package doesn't export proper error types so we have to
	// check the string.
	return strings.Contains(err.Error(), "status code: 401")
}
