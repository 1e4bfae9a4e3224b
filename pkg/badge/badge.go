// Package badge decides and applies the toolbar badge shown for a browser tab.
package badge

import (
	"github.com/lerenn/adogh/pkg/ado"
)

// State is the per-tab badge flag.
type State int

const (
	// Inactive clears the badge.
	Inactive State = iota
	// Active shows the badge.
	Active
)

// String returns the state name.
func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Badge texts and titles.
const (
	RepositoryText  = "ADO"
	PullRequestText = "→"
	ActiveTitle     = "Redirect to GitHub"
	InactiveTitle   = "ADO to GitHub Redirector"
)

// Color is an RGBA badge background color.
type Color [4]uint8

// ActiveColor is the badge background for Azure DevOps repository pages.
var ActiveColor = Color{255, 51, 51, 255}

// EventKind tells which browser event produced a navigation.
type EventKind string

// Navigation event kinds.
const (
	TabActivated EventKind = "activated"
	TabUpdated   EventKind = "updated"
	Installed    EventKind = "installed"
)

// NavigationEvent is a tab showing a new address.
type NavigationEvent struct {
	TabID int       `json:"tabId"`
	URL   string    `json:"url"`
	Kind  EventKind `json:"kind,omitempty"`
}

// Badge is the desired badge for one tab.
type Badge struct {
	State State  `json:"-"`
	Text  string `json:"text"`
	Color Color  `json:"color"`
	Title string `json:"title"`
}

// Decide computes the badge for a navigation event.
func Decide(event NavigationEvent) Badge {
	if !ado.IsRepoURL(event.URL) {
		return Badge{
			State: Inactive,
			Title: InactiveTitle,
		}
	}

	text := RepositoryText
	if ado.IsPullRequestURL(event.URL) {
		text = PullRequestText
	}

	return Badge{
		State: Active,
		Text:  text,
		Color: ActiveColor,
		Title: ActiveTitle,
	}
}
