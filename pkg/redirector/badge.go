package redirector

import (
	"github.com/lerenn/adogh/pkg/badge"
)

// Badge decides and applies the badge for a navigation. Display failures
// never surface.
func (r *realRedirector) Badge(event badge.NavigationEvent) badge.Badge {
	return r.tracker.Navigate(event)
}
