package ado

import "errors"

// Error definitions for ado package.
var (
	// ErrNotRepositoryURL is returned when a URL does not match the ADO Git repository layout.
	ErrNotRepositoryURL = errors.New("not an Azure DevOps git repository URL")
)
