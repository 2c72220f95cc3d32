package session

import "fmt"

// Role is the portal role carried in token claims. Screens key off it for
// rendering and routing only; the gateway re-checks permissions on every
// request regardless of what the client decoded.
type Role string

const (
	RolePrincipal Role = "PRINCIPAL"
	RoleHOD       Role = "HOD"
	RoleStaff     Role = "STAFF"
	RoleStudent   Role = "STUDENT"
)

// ParseRole validates a raw role claim. Unknown values are rejected so a
// token with a bogus role can never produce an authenticated session.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePrincipal, RoleHOD, RoleStaff, RoleStudent:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
