// Package opening provides the hook that navigates to redirect targets.
package opening

import (
	"fmt"

	"github.com/lerenn/adogh/pkg/browser"
	"github.com/lerenn/adogh/pkg/hooks"
	"github.com/lerenn/adogh/pkg/redirector/consts"
)

// ParamDryRun disables navigation when set to true.
const ParamDryRun = "dryRun"

// Hook opens the converted GitHub URL once a redirect succeeded.
type Hook struct {
	Opener browser.Opener
}

// NewHook creates a new opening hook around opener.
func NewHook(opener browser.Opener) *Hook {
	return &Hook{Opener: opener}
}

// RegisterForOperations registers this hook for the redirect operation.
func (h *Hook) RegisterForOperations(registerHook func(operation string, hook hooks.PostHook) error) error {
	return registerHook(consts.Redirect, h)
}

// Name returns the hook name.
func (h *Hook) Name() string {
	return "browser-opening"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *Hook) Priority() int {
	return 150
}

// PostExecute opens the GitHub URL produced by the operation.
func (h *Hook) PostExecute(ctx *hooks.HookContext) error {
	if ctx.Error != nil {
		return nil
	}

	if dryRun, ok := ctx.Parameters[ParamDryRun].(bool); ok && dryRun {
		return nil
	}

	url, ok := ctx.StringResult(consts.ResultGitHubURL)
	if !ok {
		return fmt.Errorf("%s result is required", consts.ResultGitHubURL)
	}

	return h.Opener.Open(url)
}
