//go:build unit

package forge

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/adogh/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGitHub(t *testing.T, handler http.Handler) *GitHub {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return NewGitHubWithClient(client)
}

func TestManager_GetForge(t *testing.T) {
	manager := NewManager(logger.NewNoopLogger(), NewGitHub())

	githubForge, err := manager.GetForge("github")
	require.NoError(t, err)
	assert.Equal(t, "github", githubForge.Name())

	_, err = manager.GetForge("gitlab")
	assert.ErrorIs(t, err, ErrUnsupportedForge)
}

func TestGitHub_ParseRepositoryURL(t *testing.T) {
	gh := NewGitHub()

	tests := []struct {
		name        string
		url         string
		owner       string
		repo        string
		expectError bool
	}{
		{name: "repository", url: "https://github.com/gh-org/ProjA-RepoA", owner: "gh-org", repo: "ProjA-RepoA"},
		{name: "pulls", url: "https://github.com/gh-org/ProjA-RepoA/pulls", owner: "gh-org", repo: "ProjA-RepoA"},
		{name: "closed pulls", url: "https://github.com/gh-org/ProjA-RepoA/pulls?q=is%3Aclosed+is%3Apr", owner: "gh-org", repo: "ProjA-RepoA"},
		{name: "org only", url: "https://github.com/gh-org", expectError: true},
		{name: "azure devops", url: "https://dev.azure.com/acme/P/_git/R", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := gh.ParseRepositoryURL(tt.url)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidRepoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestGitHub_GetRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/gh-org/ProjA-RepoA", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"ProjA-RepoA","owner":{"login":"gh-org"},"html_url":"https://github.com/gh-org/ProjA-RepoA","archived":true}`)
	})
	mux.HandleFunc("/repos/gh-org/Missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	mux.HandleFunc("/repos/gh-org/Secret", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Bad credentials"}`)
	})
	gh := newTestGitHub(t, mux)

	info, err := gh.GetRepository(context.Background(), "gh-org", "ProjA-RepoA")
	require.NoError(t, err)
	assert.Equal(t, &RepositoryInfo{
		Owner:    "gh-org",
		Name:     "ProjA-RepoA",
		URL:      "https://github.com/gh-org/ProjA-RepoA",
		Archived: true,
	}, info)

	_, err = gh.GetRepository(context.Background(), "gh-org", "Missing")
	assert.ErrorIs(t, err, ErrRepositoryNotFound)

	_, err = gh.GetRepository(context.Background(), "gh-org", "Secret")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestManager_VerifyURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/gh-org/ProjA-RepoA", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"name":"ProjA-RepoA","owner":{"login":"gh-org"}}`)
	})
	manager := NewManager(logger.NewNoopLogger(), newTestGitHub(t, mux))

	info, err := manager.VerifyURL(context.Background(), "https://github.com/gh-org/ProjA-RepoA/pulls")
	require.NoError(t, err)
	assert.Equal(t, "ProjA-RepoA", info.Name)

	_, err = manager.VerifyURL(context.Background(), "https://example.com/x")
	assert.ErrorIs(t, err, ErrUnsupportedForge)
}
