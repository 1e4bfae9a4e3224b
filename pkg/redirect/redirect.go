// Package redirect derives GitHub addresses from Azure DevOps repository addresses.
package redirect

import (
	"fmt"

	"github.com/lerenn/adogh/pkg/ado"
	"github.com/lerenn/adogh/pkg/logger"
)

const (
	// GitHubBaseURL is the root of every generated address.
	GitHubBaseURL = "https://github.com"
	// ClosedPullRequestsQuery filters the pull request list on closed pull requests.
	ClosedPullRequestsQuery = "q=is%3Aclosed+is%3Apr"
)

// PullRequestTarget selects where pull request addresses land on GitHub.
type PullRequestTarget string

const (
	// PullRequestTargetPulls lands on the plain pull request list.
	PullRequestTargetPulls PullRequestTarget = "pulls"
	// PullRequestTargetClosed lands on the pull request list filtered on closed ones.
	PullRequestTargetClosed PullRequestTarget = "closed"
)

// ParsePullRequestTarget validates a pull request target name. Empty means pulls.
func ParsePullRequestTarget(s string) (PullRequestTarget, error) {
	switch PullRequestTarget(s) {
	case "", PullRequestTargetPulls:
		return PullRequestTargetPulls, nil
	case PullRequestTargetClosed:
		return PullRequestTargetClosed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPullRequestTarget, s)
	}
}

// Transformer converts Azure DevOps addresses into GitHub addresses.
type Transformer struct {
	PullRequestTarget PullRequestTarget
	logger            logger.Logger
}

// NewTransformer creates a Transformer with the given pull request target.
func NewTransformer(target PullRequestTarget) *Transformer {
	return &Transformer{
		PullRequestTarget: target,
		logger:            logger.NewNoopLogger(),
	}
}

// SetLogger sets the logger used for organization mismatch warnings.
func (t *Transformer) SetLogger(l logger.Logger) {
	t.logger = l
}

// RepoName returns the GitHub repository name for an ADO project and repository.
// Distinct pairs may collide, e.g. ("a-b", "c") and ("a", "b-c").
func RepoName(project, repo string) string {
	return project + "-" + repo
}

// ToGitHubURL converts adoURL into the matching GitHub address for githubOrg.
// adoOrg is only compared with the address's organization; a mismatch is logged
// and never changes the result.
func (t *Transformer) ToGitHubURL(adoURL, adoOrg, githubOrg string) (string, error) {
	parsed, err := ado.Parse(adoURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCannotConvert, err)
	}

	if adoOrg != "" && parsed.Org != adoOrg {
		t.logger.Logf("Warning: URL ADO org (%s) doesn't match configured org (%s)", parsed.Org, adoOrg)
	}

	repoURL := fmt.Sprintf("%s/%s/%s", GitHubBaseURL, githubOrg, RepoName(parsed.Project, parsed.Repo))
	if !parsed.IsPullRequest {
		return repoURL, nil
	}

	if t.PullRequestTarget == PullRequestTargetClosed {
		return repoURL + "/pulls?" + ClosedPullRequestsQuery, nil
	}
	return repoURL + "/pulls", nil
}

// ToGitHubURL converts adoURL using a transformer landing pull requests on the pulls list.
func ToGitHubURL(adoURL, adoOrg, githubOrg string) (string, error) {
	return NewTransformer(PullRequestTargetPulls).ToGitHubURL(adoURL, adoOrg, githubOrg)
}
