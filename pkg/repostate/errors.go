package repostate

import "errors"

// Error definitions for repostate package.
var (
	ErrFetchPage        = errors.New("failed to fetch page")
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrParsePage        = errors.New("failed to parse page")
)
