package redirector

import "errors"

// Error definitions for redirector package.
var (
	// ErrNothingToCheck is returned when a status check has neither page text nor URL.
	ErrNothingToCheck = errors.New("either page text or a URL is required")
	// ErrTargetUnavailable is returned when redirect verification rejects the GitHub target.
	ErrTargetUnavailable = errors.New("GitHub target is unavailable")
	// ErrMissingDependency is returned when the redirector cannot be wired.
	ErrMissingDependency = errors.New("missing redirector dependency")
)
