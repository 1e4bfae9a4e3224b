// Package prompt provides interactive prompt functionality for adogh.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrEmptyInput               = errors.New("a value is required")
	ErrInvalidOrganization      = errors.New("organization names cannot contain slashes or spaces")
	ErrNoChoices                = errors.New("no choices available")
	ErrNoSelection              = errors.New("no selection made")
)
