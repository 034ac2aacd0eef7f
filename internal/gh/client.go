package gh

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/shurcooL/githubv4"
	"github.com/simplegithub/sgh/internal/utils/logutils"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

type Client struct {
	httpClient *http.Client
	gh         *githubv4.Client
	apiBaseUrl string
}

const githubApiBaseUrl = "https://api.github.com"

type Option func(*Client)

// WithAPIBaseURL points the client at a different REST API root (GitHub
// Enterprise Server or a test server). The GraphQL endpoint is derived from
// it.
func WithAPIBaseURL(baseUrl string) Option {
	return func(c *Client) {
		c.apiBaseUrl = strings.TrimSuffix(baseUrl, "/")
	}
}

// WithHTTPClient replaces the token-authenticated HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrNoGitHubToken
	}
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	c := &Client{
		httpClient: oauth2.NewClient(context.Background(), src),
		apiBaseUrl: githubApiBaseUrl,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.gh = githubv4.NewEnterpriseClient(graphqlEndpoint(c.apiBaseUrl), c.httpClient)
	return c, nil
}

// graphqlEndpoint maps a REST API root to its GraphQL endpoint.
// api.github.com serves /graphql, GHES serves /api/graphql next to /api/v3.
func graphqlEndpoint(apiBaseUrl string) string {
	if strings.HasSuffix(apiBaseUrl, "/api/v3") {
		return strings.TrimSuffix(apiBaseUrl, "/v3") + "/graphql"
	}
	return apiBaseUrl + "/graphql"
}

func (c *Client) query(ctx context.Context, query any, variables map[string]any) (reterr error) {
	log := logrus.WithFields(logrus.Fields{
		"variables": logutils.Format("%#+v", variables),
	})
	log.Debug("executing GitHub API query...")
	startTime := time.Now()
	defer func() {
		log := log.WithFields(logrus.Fields{
			"elapsed": time.Since(startTime),
			"result":  logutils.Format("%#+v", query),
		})
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub API query failed")
		} else {
			log.Debug("GitHub API query succeeded")
		}
	}()
	return c.gh.Query(ctx, query, variables)
}

// restGet executes a GET request to the endpoint (e.g., /repos/:owner/:repo)
// and unmarshals the response into result.
// Non-2xx responses are returned as *APIError.
func (c *Client) restGet(ctx context.Context, endpoint string, result any) error {
	if endpoint == "" || endpoint[0] != '/' {
		logrus.WithField("endpoint", endpoint).Panicf("malformed REST endpoint")
	}

	startTime := time.Now()
	url := c.apiBaseUrl + endpoint
	log := logrus.WithField("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	log.Debug("executing GitHub API request...")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to make API request")
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}
	log = log.WithFields(logrus.Fields{
		"elapsed": time.Since(startTime),
		"status":  res.StatusCode,
	})

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.WithField("body", string(resBody)).Debug("GitHub API request failed")
		return newAPIError(res, resBody)
	}
	log.Debug("GitHub API request completed")

	if err := json.Unmarshal(resBody, result); err != nil {
		return errors.Wrap(err, "failed to unmarshal response body")
	}
	return nil
}

// Ptr returns a pointer to the argument.
// Optional fields of the API types are expressed as pointers, and Go
// disallows pointers-to-literals.
func Ptr[T any](v T) *T {
	return &v
}
