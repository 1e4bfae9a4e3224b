package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// EnvGitHubToken holds an optional GitHub API token.
	EnvGitHubToken = "GITHUB_TOKEN"
	// requestTimeout bounds a single API call.
	requestTimeout = 10 * time.Second
)

var gitHubRepoURL = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/?#]+)`)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance, authenticated when GITHUB_TOKEN is set.
func NewGitHub() *GitHub {
	if token := os.Getenv(EnvGitHubToken); token != "" {
		return &GitHub{client: github.NewTokenClient(context.Background(), token)}
	}
	return &GitHub{client: github.NewClient(nil)}
}

// NewGitHubWithClient creates a GitHub forge around an existing client.
func NewGitHubWithClient(client *github.Client) *GitHub {
	return &GitHub{client: client}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ParseRepositoryURL extracts owner and repository from a github.com address,
// including pull request list addresses.
func (g *GitHub) ParseRepositoryURL(url string) (string, string, error) {
	matches := gitHubRepoURL.FindStringSubmatch(url)
	if len(matches) != 3 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRepoURL, url)
	}
	return matches[1], matches[2], nil
}

// GetRepository fetches repository information from the GitHub API.
func (g *GitHub) GetRepository(ctx context.Context, owner, name string) (*RepositoryInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	repo, resp, err := g.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, owner, name)
	}

	return &RepositoryInfo{
		Owner:    repo.GetOwner().GetLogin(),
		Name:     repo.GetName(),
		URL:      repo.GetHTMLURL(),
		Archived: repo.GetArchived(),
		Private:  repo.GetPrivate(),
	}, nil
}

// handleGitHubError maps GitHub API errors onto forge errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, owner, name string) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, owner, name)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check %s environment variable", ErrUnauthorized, EnvGitHubToken)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to fetch repository: %w", err)
}
