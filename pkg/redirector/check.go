package redirector

import (
	"context"

	"github.com/lerenn/adogh/pkg/redirector/consts"
	"github.com/lerenn/adogh/pkg/repostate"
)

// CheckRepoStatus fetches a repository page and detects whether it is disabled.
func (r *realRedirector) CheckRepoStatus(ctx context.Context, url string) (repostate.Status, error) {
	params := map[string]interface{}{
		consts.ParamURL: url,
	}

	var status repostate.Status
	err := r.executeWithHooks(consts.CheckRepoStatus, params, func(results map[string]interface{}) error {
		var err error
		status, err = r.deps.Checker.Check(ctx, url)
		if err != nil {
			return err
		}
		results["isDisabled"] = status.IsDisabled
		return nil
	})
	if err != nil {
		return repostate.Status{}, err
	}
	return status, nil
}

// CheckPage detects whether page text shows a disabled repository.
func (r *realRedirector) CheckPage(pageText string) repostate.Status {
	status := repostate.Status{IsDisabled: repostate.IsRepositoryDisabled(pageText)}
	r.VerbosePrint("Page check: disabled=%t", status.IsDisabled)
	return status
}
