// Package ado classifies and parses Azure DevOps Git repository URLs.
package ado

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// HostMarker identifies the Azure DevOps host in an address.
	HostMarker = "dev.azure.com"
	// GitMarker identifies a Git repository path segment.
	GitMarker = "/_git/"
	// PullRequestMarker identifies a pull request path segment.
	PullRequestMarker = "/pullrequest/"
)

var (
	repoURLPattern    = regexp.MustCompile(`https://dev\.azure\.com/([^/]+)/([^/]+)/_git/([^/?#]+)`)
	pullRequestIDExpr = regexp.MustCompile(`/pullrequest/(\d+)`)
)

// URL is a parsed Azure DevOps repository address.
type URL struct {
	Org           string
	Project       string
	Repo          string
	IsPullRequest bool
	// PullRequestID is nil when the address carries no numeric pull request id.
	PullRequestID *int
}

// IsRepoURL reports whether url looks like an Azure DevOps Git repository page.
// Only substring containment is checked: crafted strings holding both markers
// anywhere are accepted.
func IsRepoURL(url string) bool {
	return strings.Contains(url, HostMarker) && strings.Contains(url, GitMarker)
}

// IsPullRequestURL reports whether url is a repository URL pointing at a pull request.
func IsPullRequestURL(url string) bool {
	return IsRepoURL(url) && strings.Contains(url, PullRequestMarker)
}

// Parse extracts organization, project and repository from an Azure DevOps URL.
func Parse(url string) (*URL, error) {
	matches := repoURLPattern.FindStringSubmatch(url)
	if len(matches) != 4 {
		return nil, fmt.Errorf("%w: %s", ErrNotRepositoryURL, truncate(url))
	}

	parsed := &URL{
		Org:           matches[1],
		Project:       matches[2],
		Repo:          matches[3],
		IsPullRequest: strings.Contains(url, PullRequestMarker),
	}

	if parsed.IsPullRequest {
		if m := pullRequestIDExpr.FindStringSubmatch(url); len(m) == 2 {
			if id, err := strconv.Atoi(m[1]); err == nil {
				parsed.PullRequestID = &id
			}
		}
	}

	return parsed, nil
}

// String rebuilds the canonical repository address.
func (u *URL) String() string {
	base := fmt.Sprintf("https://%s/%s/%s/_git/%s", HostMarker, u.Org, u.Project, u.Repo)
	if u.PullRequestID != nil {
		return fmt.Sprintf("%s/pullrequest/%d", base, *u.PullRequestID)
	}
	return base
}

// maxQuotedURL bounds how much of a rejected URL is quoted in errors.
const maxQuotedURL = 200

func truncate(url string) string {
	if len(url) <= maxQuotedURL {
		return url
	}
	return url[:maxQuotedURL] + "..."
}
