// Package redirector ties URL classification, conversion, repository state
// detection, badges and settings into the operations the extension and the
// CLI invoke.
package redirector

import (
	"context"
	"fmt"

	"github.com/lerenn/adogh/pkg/badge"
	"github.com/lerenn/adogh/pkg/config"
	"github.com/lerenn/adogh/pkg/dependencies"
	"github.com/lerenn/adogh/pkg/hooks"
	"github.com/lerenn/adogh/pkg/logger"
	"github.com/lerenn/adogh/pkg/message"
	"github.com/lerenn/adogh/pkg/repostate"
)

// Redirector interface provides the redirect operations.
type Redirector interface {
	// Convert returns the GitHub URL for an ADO URL using the stored settings.
	Convert(adoURL string) (string, error)
	// Redirect converts an ADO URL and navigates to the result.
	Redirect(ctx context.Context, adoURL string, opts ...RedirectOpts) (string, error)
	// CheckRepoStatus fetches a repository page and detects whether it is disabled.
	CheckRepoStatus(ctx context.Context, url string) (repostate.Status, error)
	// CheckPage detects whether already extracted page text shows a disabled repository.
	CheckPage(pageText string) repostate.Status
	// Badge decides and applies the badge for a navigation.
	Badge(event badge.NavigationEvent) badge.Badge
	// GetSettings returns the stored settings, or defaults when none were saved.
	GetSettings() (config.Config, error)
	// SaveSettings validates and stores settings.
	SaveSettings(cfg config.Config) error
	// HandleMessage answers an extension message.
	HandleMessage(ctx context.Context, req message.Request) (message.Response, error)
	// SetLogger sets the logger for this instance.
	SetLogger(l logger.Logger)
}

// NewRedirectorParams contains parameters for creating a new Redirector.
type NewRedirectorParams struct {
	Dependencies *dependencies.Dependencies
}

type realRedirector struct {
	deps    *dependencies.Dependencies
	tracker *badge.Tracker
	logger  logger.Logger
}

// NewRedirector creates a new Redirector.
func NewRedirector(params NewRedirectorParams) (Redirector, error) {
	deps := params.Dependencies
	if deps == nil {
		return nil, fmt.Errorf("%w: dependencies", ErrMissingDependency)
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDependency, err)
	}

	return &realRedirector{
		deps:    deps,
		tracker: badge.NewTracker(deps.Display, deps.Logger),
		logger:  deps.Logger,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (r *realRedirector) VerbosePrint(msg string, args ...interface{}) {
	r.logger.Logf(msg, args...)
}

// SetLogger sets the logger for this instance and its badge tracker.
func (r *realRedirector) SetLogger(l logger.Logger) {
	r.logger = l
	r.tracker.SetLogger(l)
}

// executeWithHooks runs operation between pre-hooks and post- or error-hooks.
func (r *realRedirector) executeWithHooks(
	operationName string, params map[string]interface{}, operation func(results map[string]interface{}) error) error {
	ctx := &hooks.HookContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
	if err := r.deps.HookManager.ExecutePreHooks(operationName, ctx); err != nil {
		return err
	}

	var resultErr error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				resultErr = fmt.Errorf("panic in %s: %v", operationName, rec)
			}
		}()
		resultErr = operation(ctx.Results)
	}()

	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}

	var hookErr error
	if resultErr != nil {
		hookErr = r.deps.HookManager.ExecuteErrorHooks(operationName, ctx)
	} else {
		hookErr = r.deps.HookManager.ExecutePostHooks(operationName, ctx)
	}
	if hookErr != nil {
		return hookErr
	}
	return resultErr
}
