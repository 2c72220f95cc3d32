package cli

import (
	"fmt"
	"strings"

	"github.com/campushq/collegeportal/internal/portal/guard"
)

// Open navigates to a screen, subject to the route guard. Redirects follow
// the guard's target; a pending decision leaves the current route alone so
// the command can simply be retried.
func (a *App) Open(path string) {
	route, ok := guard.Lookup(path)
	if !ok {
		printlnFn("Unknown route:", path)
		return
	}

	d := guard.Authorize(a.session.Current(), route.Allowed)
	switch d.Kind {
	case guard.Allow:
		a.navigateTo(route.Path)
		printlnFn("Opened:", route.Title)
	case guard.Redirect:
		a.navigateTo(d.Target)
	case guard.Pending:
		printlnFn("Session is still loading, try again")
	}
}

// ListRoutes prints the screen table with each screen's role policy.
func (a *App) ListRoutes() {
	for _, r := range guard.Routes {
		policy := "any role"
		if len(r.Allowed) > 0 {
			names := make([]string, 0, len(r.Allowed))
			for _, role := range r.Allowed {
				names = append(names, string(role))
			}
			policy = strings.Join(names, ", ")
		}
		printlnFn(fmt.Sprintf("%-15s %-20s %s", r.Path, r.Title, policy))
	}
}
