// Package config provides the persisted organization settings for adogh.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lerenn/adogh/pkg/redirect"
)

// Environment variables overriding the stored organizations.
const (
	EnvADOOrg    = "ADOGH_ADO_ORG"
	EnvGitHubOrg = "ADOGH_GITHUB_ORG"
)

// Config represents the application configuration.
type Config struct {
	ADOOrg            string `yaml:"ado_org"`
	GitHubOrg         string `yaml:"github_org"`
	PullRequestTarget string `yaml:"pull_request_target,omitempty"`
	VerifyTarget      bool   `yaml:"verify_target,omitempty"`
}

// IsConfigured reports whether both organizations are set.
func (c Config) IsConfigured() bool {
	return c.ADOOrg != "" && c.GitHubOrg != ""
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if !c.IsConfigured() {
		return ErrSettingsMissing
	}
	if _, err := redirect.ParsePullRequestTarget(c.PullRequestTarget); err != nil {
		return err
	}
	return nil
}

// Target returns the configured pull request target, defaulting to the pulls list.
func (c Config) Target() redirect.PullRequestTarget {
	target, err := redirect.ParsePullRequestTarget(c.PullRequestTarget)
	if err != nil {
		return redirect.PullRequestTargetPulls
	}
	return target
}

// Normalize trims surrounding whitespace from the organization names.
func (c Config) Normalize() Config {
	c.ADOOrg = strings.TrimSpace(c.ADOOrg)
	c.GitHubOrg = strings.TrimSpace(c.GitHubOrg)
	c.PullRequestTarget = strings.TrimSpace(c.PullRequestTarget)
	return c
}

// WithEnv returns c with organizations overridden by non-empty environment values.
// The stored file is never rewritten with these values.
func (c Config) WithEnv() Config {
	if v := os.Getenv(EnvADOOrg); v != "" {
		c.ADOOrg = v
	}
	if v := os.Getenv(EnvGitHubOrg); v != "" {
		c.GitHubOrg = v
	}
	return c
}

// String renders the configuration for display.
func (c Config) String() string {
	return fmt.Sprintf("ADO organization: %s\nGitHub organization: %s\nPull request target: %s\nVerify target: %t",
		orUnset(c.ADOOrg), orUnset(c.GitHubOrg), c.Target(), c.VerifyTarget)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
