package gh

import (
	"context"
	"net/url"
	"strings"

	"emperror.dev/errors"
	"github.com/shurcooL/githubv4"
)

// Repository is the summary of a repository as returned by the REST API
// (GET /repos/{owner}/{repo}).
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stargazers_count"`
	// UpdatedAt is kept in its wire format (e.g., "2018-05-12T10:15:30Z");
	// parsing is up to the presentation layer.
	UpdatedAt string `json:"updated_at"`
	HTMLURL   string `json:"html_url"`
}

// GetRepository fetches the summary of owner/name.
func (c *Client) GetRepository(ctx context.Context, owner string, name string) (*Repository, error) {
	endpoint := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name)
	var repo Repository
	if err := c.restGet(ctx, endpoint, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// ParseSlug splits an "<owner>/<repo>" slug.
func ParseSlug(slug string) (owner string, name string, err error) {
	owner, name, ok := strings.Cut(strings.TrimSuffix(slug, ".git"), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", errors.Errorf(
			"unable to parse repository slug (expected <owner>/<repo>): %q",
			slug,
		)
	}
	return owner, name, nil
}

// RepositorySearchResult is a single hit of SearchRepositories.
type RepositorySearchResult struct {
	NameWithOwner string
	Name          string
	Owner         struct {
		Login string
	}
	Description     string
	StargazerCount  int
	PrimaryLanguage *struct {
		Name string
	}
	UpdatedAt githubv4.DateTime
}

// SearchRepositories runs a repository search with GitHub's search syntax
// (e.g., "bubbletea language:go") and returns at most limit results.
func (c *Client) SearchRepositories(ctx context.Context, query string, limit int) ([]RepositorySearchResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var q struct {
		Search struct {
			RepositoryCount int
			Nodes           []struct {
				Repository RepositorySearchResult `graphql:"... on Repository"`
			}
		} `graphql:"search(query: $query, type: REPOSITORY, first: $first)"`
	}
	err := c.query(ctx, &q, map[string]any{
		"query": githubv4.String(query),
		"first": githubv4.Int(limit),
	})
	if err != nil {
		return nil, errors.WrapIf(err, "failed to search repositories on GitHub")
	}

	results := make([]RepositorySearchResult, 0, len(q.Search.Nodes))
	for _, node := range q.Search.Nodes {
		results = append(results, node.Repository)
	}
	return results, nil
}
