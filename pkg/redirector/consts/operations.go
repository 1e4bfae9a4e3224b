// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// URL operations.
	Convert  = "Convert"
	Redirect = "Redirect"

	// Repository state operations.
	CheckRepoStatus = "CheckRepoStatus"

	// Settings operations.
	SaveSettings = "SaveSettings"
)

// All lists every operation name.
var All = []string{Convert, Redirect, CheckRepoStatus, SaveSettings}

// Hook context keys shared by operations and hooks.
const (
	ParamURL        = "url"
	ResultGitHubURL = "githubURL"
)
