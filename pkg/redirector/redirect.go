package redirector

import (
	"context"
	"fmt"

	"github.com/lerenn/adogh/pkg/hooks/opening"
	"github.com/lerenn/adogh/pkg/redirector/consts"
)

// RedirectOpts contains optional parameters for Redirect.
type RedirectOpts struct {
	// DryRun converts without navigating.
	DryRun bool
	// Verify checks the GitHub target exists before navigating.
	Verify bool
}

// Redirect converts an ADO URL and navigates to the result through the
// browser-opening post-hook.
func (r *realRedirector) Redirect(ctx context.Context, adoURL string, opts ...RedirectOpts) (string, error) {
	var options RedirectOpts
	if len(opts) > 0 {
		options = opts[0]
	}

	params := map[string]interface{}{
		consts.ParamURL:     adoURL,
		opening.ParamDryRun: options.DryRun,
	}

	var githubURL string
	err := r.executeWithHooks(consts.Redirect, params, func(results map[string]interface{}) error {
		cfg, err := r.configuredSettings()
		if err != nil {
			return err
		}

		githubURL, err = r.convert(cfg, adoURL)
		if err != nil {
			return err
		}

		if options.Verify || cfg.VerifyTarget {
			if err := r.verify(ctx, githubURL); err != nil {
				return err
			}
		}

		results[consts.ResultGitHubURL] = githubURL
		return nil
	})
	if err != nil {
		return "", err
	}
	return githubURL, nil
}

// verify checks the target repository when a verifier is available.
func (r *realRedirector) verify(ctx context.Context, githubURL string) error {
	if r.deps.Verifier == nil {
		r.VerbosePrint("No verifier configured, skipping verification of %s", githubURL)
		return nil
	}

	info, err := r.deps.Verifier.VerifyURL(ctx, githubURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTargetUnavailable, err)
	}
	if info.Archived {
		r.logger.Logf("Warning: %s/%s is archived on GitHub", info.Owner, info.Name)
	}
	return nil
}
