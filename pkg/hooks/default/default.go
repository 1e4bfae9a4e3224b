// Package defaulthooks provides default hook implementations for adogh.
package defaulthooks

import (
	"github.com/lerenn/adogh/pkg/browser"
	"github.com/lerenn/adogh/pkg/hooks"
	"github.com/lerenn/adogh/pkg/hooks/opening"
	"github.com/lerenn/adogh/pkg/logger"
	"github.com/lerenn/adogh/pkg/redirector/consts"
)

// NewDefaultHooksManager creates a hooks manager with operation logging and
// browser opening after redirects.
func NewDefaultHooksManager(opener browser.Opener, l logger.Logger) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if err := hooks.NewLoggingHook(l).RegisterForOperations(hm, consts.All...); err != nil {
		return nil, err
	}

	if err := opening.NewHook(opener).RegisterForOperations(hm.RegisterPostHook); err != nil {
		return nil, err
	}

	return hm, nil
}
