package present

import "strings"

// NavAction says what activating a result should do in the client.
type NavAction string

const (
	// NavActionScroll scrolls to an element on the current page.
	NavActionScroll NavAction = "scroll"
	// NavActionScrollTop scrolls the current page to the top.
	NavActionScrollTop NavAction = "scroll-top"
	// NavActionNavigate loads another page.
	NavActionNavigate NavAction = "navigate"
)

// Navigation is the resolved activation of a result.
type Navigation struct {
	Action NavAction `json:"action"`
	// Target is the element ID for scroll actions, or the URL for navigate.
	Target string `json:"target,omitempty"`
}

// ResolveNavigation decides how activating a result URL behaves relative to
// the page the user is on: same-page anchors scroll, the current page's own
// path scrolls to the top, and everything else navigates.
func ResolveNavigation(url string, currentPath string) Navigation {
	if anchor, ok := strings.CutPrefix(url, "#"); ok {
		return Navigation{Action: NavActionScroll, Target: anchor}
	}

	path, fragment, hasFragment := strings.Cut(url, "#")
	if hasFragment && path == currentPath {
		return Navigation{Action: NavActionScroll, Target: fragment}
	}

	if url == currentPath {
		return Navigation{Action: NavActionScrollTop}
	}

	return Navigation{Action: NavActionNavigate, Target: url}
}
