package guard

import "github.com/campushq/collegeportal/internal/portal/session"

// Route couples a navigable screen with its allowed-roles policy. The policy
// is declared once per screen here instead of ad hoc checks scattered across
// the view code. A nil Allowed set admits any authenticated role.
type Route struct {
	Path    string
	Title   string
	Allowed []session.Role
}

// Routes is the portal's screen table.
var Routes = []Route{
	{Path: RouteDashboard, Title: "Dashboard"},
	{Path: "/profile", Title: "Profile settings"},
	{Path: "/schedule", Title: "Class schedule"},
	{Path: "/departments", Title: "Departments",
		Allowed: []session.Role{session.RolePrincipal}},
	{Path: "/staff", Title: "Staff roster",
		Allowed: []session.Role{session.RolePrincipal, session.RoleHOD}},
	{Path: "/students", Title: "Student roster",
		Allowed: []session.Role{session.RolePrincipal, session.RoleHOD, session.RoleStaff}},
	{Path: "/attendance", Title: "Attendance register",
		Allowed: []session.Role{session.RoleHOD, session.RoleStaff}},
	{Path: "/grades", Title: "Grade entry",
		Allowed: []session.Role{session.RoleHOD, session.RoleStaff}},
	{Path: "/fees", Title: "Fee payments",
		Allowed: []session.Role{session.RoleStudent}},
	{Path: "/certificates", Title: "Certificates",
		Allowed: []session.Role{session.RoleStudent}},
}

// Lookup returns the declared route for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
