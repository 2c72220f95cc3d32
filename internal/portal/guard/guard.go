// Package guard decides whether a navigation is permitted for the current
// session. Decisions are advisory and drive rendering only: the gateway
// independently re-authorizes every request a screen makes.
package guard

import "github.com/campushq/collegeportal/internal/portal/session"

// Well-known redirect targets.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Kind classifies an authorization decision.
type Kind int

const (
	// Allow lets the navigation through.
	Allow Kind = iota
	// Redirect sends the user to Decision.Target instead.
	Redirect
	// Pending means the session is still initializing. This is a suspension
	// point, not a failure: the caller renders a neutral placeholder and
	// re-evaluates once the session state resolves.
	Pending
)

// Decision is the outcome of authorizing one navigation.
type Decision struct {
	Kind   Kind
	Target string // redirect target, set only when Kind == Redirect
}

// Authorize applies a route's allowed-roles policy to the session snapshot.
//
// An empty allowed set means "any authenticated role". A role mismatch is a
// silent redirect to the default landing screen, never an error shown to
// the user.
func Authorize(s session.Session, allowed []session.Role) Decision {
	switch s.State {
	case session.StateInitializing:
		return Decision{Kind: Pending}
	case session.StateUnauthenticated:
		return Decision{Kind: Redirect, Target: RouteLogin}
	}

	if len(allowed) == 0 {
		return Decision{Kind: Allow}
	}
	if s.User != nil {
		for _, role := range allowed {
			if s.User.Role == role {
				return Decision{Kind: Allow}
			}
		}
	}
	return Decision{Kind: Redirect, Target: RouteDashboard}
}
