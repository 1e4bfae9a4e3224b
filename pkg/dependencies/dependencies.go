// Package dependencies provides a centralized dependency container for adogh.
package dependencies

import (
	"errors"
	"os"

	"github.com/lerenn/adogh/pkg/badge"
	"github.com/lerenn/adogh/pkg/browser"
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/forge"
	"github.com/lerenn/adogh/pkg/fs"
	"github.com/lerenn/adogh/pkg/hooks"
	"github.com/lerenn/adogh/pkg/logger"
	"github.com/lerenn/adogh/pkg/prompt"
	"github.com/lerenn/adogh/pkg/repostate"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrPromptMissing      = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrCheckerMissing     = errors.New("checker dependency is required but not set")
	ErrDisplayMissing     = errors.New("display dependency is required but not set")
	ErrOpenerMissing      = errors.New("opener dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Config      config.Manager
	Logger      logger.Logger
	Prompt      prompt.Prompter
	HookManager hooks.HookManagerInterface
	Checker     repostate.Checker
	Display     badge.Display
	Opener      browser.Opener
	// Verifier is optional; redirect targets are not verified without it.
	Verifier forge.Verifier
}

// New creates a new Dependencies instance with defaults for everything but
// the config manager, which needs a path.
func New() *Dependencies {
	return &Dependencies{
		FS:          fs.NewFS(),
		Logger:      logger.NewNoopLogger(),
		Prompt:      prompt.NewPrompt(),
		HookManager: hooks.NewHookManager(),
		Checker:     repostate.NewChecker(repostate.NewCheckerParams{}),
		Display:     badge.NewWriterDisplay(os.Stdout),
		Opener:      browser.NewSystemOpener(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithChecker sets the repository page checker and returns the instance for chaining.
func (d *Dependencies) WithChecker(checker repostate.Checker) *Dependencies {
	d.Checker = checker
	return d
}

// WithDisplay sets the badge display and returns the instance for chaining.
func (d *Dependencies) WithDisplay(display badge.Display) *Dependencies {
	d.Display = display
	return d
}

// WithOpener sets the browser opener and returns the instance for chaining.
func (d *Dependencies) WithOpener(opener browser.Opener) *Dependencies {
	d.Opener = opener
	return d
}

// WithVerifier sets the target verifier and returns the instance for chaining.
func (d *Dependencies) WithVerifier(verifier forge.Verifier) *Dependencies {
	d.Verifier = verifier
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Checker, ErrCheckerMissing},
		{d.Display, ErrDisplayMissing},
		{d.Opener, ErrOpenerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
