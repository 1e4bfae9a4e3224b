package cli

import (
	"os"

	"github.com/lerenn/adogh/pkg/badge"
	"github.com/lerenn/adogh/pkg/browser"
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/dependencies"
	"github.com/lerenn/adogh/pkg/forge"
	defaulthooks "github.com/lerenn/adogh/pkg/hooks/default"
	"github.com/lerenn/adogh/pkg/redirector"
	"github.com/lerenn/adogh/pkg/repostate"
)

// RedirectorOpts selects the adapters used by NewRedirector.
type RedirectorOpts struct {
	// Opener navigates to redirect targets; the system browser when nil.
	Opener browser.Opener
	// BadgeDisplay receives badge updates; badges are printed to stdout when nil.
	BadgeDisplay badge.Display
}

// NewDependencies creates the dependencies shared by every command.
func NewDependencies() *dependencies.Dependencies {
	l := NewLogger()
	deps := dependencies.New()

	return deps.
		WithConfig(config.NewManager(deps.FS, GetConfigPath())).
		WithLogger(l).
		WithChecker(repostate.NewChecker(repostate.NewCheckerParams{
			Token:  os.Getenv(repostate.EnvADOToken),
			Logger: l,
		})).
		WithVerifier(forge.NewManager(l, forge.NewGitHub()))
}

// NewRedirector wires a Redirector with the CLI configuration.
func NewRedirector(opts RedirectorOpts) (redirector.Redirector, error) {
	deps := NewDependencies()
	if opts.Opener != nil {
		deps.WithOpener(opts.Opener)
	}
	if opts.BadgeDisplay != nil {
		deps.WithDisplay(opts.BadgeDisplay)
	}

	hookManager, err := defaulthooks.NewDefaultHooksManager(deps.Opener, deps.Logger)
	if err != nil {
		return nil, err
	}

	return redirector.NewRedirector(redirector.NewRedirectorParams{
		Dependencies: deps.WithHookManager(hookManager),
	})
}
