package redirect

import "errors"

// Error definitions for redirect package.
var (
	// ErrCannotConvert is returned when an address has no GitHub equivalent.
	ErrCannotConvert = errors.New("cannot convert this URL to GitHub format")
	// ErrUnknownPullRequestTarget is returned for an unsupported pull request target.
	ErrUnknownPullRequestTarget = errors.New("unknown pull request target")
)
