// Package repostate detects Azure DevOps repositories that have been disabled.
package repostate

import (
	"strings"
)

// DisabledPhrases are the page fragments Azure DevOps shows on a disabled repository.
var DisabledPhrases = []string{
	"is disabled",
	"This repository has been disabled",
	"contact your project administrator to re-enable it",
}

// IsRepositoryDisabled reports whether pageText holds any disabled phrase.
// Matching ignores case.
func IsRepositoryDisabled(pageText string) bool {
	lowered := strings.ToLower(pageText)
	for _, phrase := range DisabledPhrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
