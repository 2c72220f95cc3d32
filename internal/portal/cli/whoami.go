package cli

import (
	"fmt"

	"github.com/campushq/collegeportal/internal/portal/session"
)

// Whoami prints the current session snapshot.
func (a *App) Whoami() {
	cur := a.session.Current()
	switch cur.State {
	case session.StateInitializing:
		printlnFn("Session is still loading")
		return
	case session.StateUnauthenticated:
		printlnFn("Not logged in")
		return
	}

	u := cur.User
	printlnFn(fmt.Sprintf("%s %s <%s>", u.FirstName, u.LastName, u.Email))
	printlnFn("Role:", string(u.Role))
	if u.CollegeName != "" {
		printlnFn("College:", u.CollegeName)
	}
	if u.Department != "" {
		printlnFn("Department:", u.Department)
	}
}
