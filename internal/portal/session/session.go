// Package session owns the single live client session: the reconciled user
// identity, the tri-state lifecycle, and the login/logout transitions.
package session

import "github.com/campushq/collegeportal/internal/portal/token"

// State is the session lifecycle. Screens must not render role-gated
// content until the state has left StateInitializing.
type State string

const (
	StateInitializing    State = "initializing"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// User is the reconciled profile shown by the portal.
type User struct {
	ID          string
	Email       string
	Role        Role
	FirstName   string
	LastName    string
	CollegeName string
	Department  string
}

// Session is a snapshot of the current authentication state. Guard and view
// code receive copies; only the Manager mutates the live one.
type Session struct {
	Token string
	User  *User
	State State
}

// ProfileHint carries profile fields supplied alongside a token, either by
// the gateway's login response or by the persisted store. An empty field
// means "not supplied".
type ProfileHint struct {
	ID          string
	Email       string
	FirstName   string
	LastName    string
	CollegeName string
	Department  string
}

// reconcile merges a profile hint with token claims. Hint values win for
// identity and display fields with claims as the fallback; the role always
// comes from the claims — profile data (possibly a stale client-side cache)
// is never trusted to carry a role.
func reconcile(claims *token.Claims, role Role, hint ProfileHint) *User {
	return &User{
		ID:          firstNonEmpty(hint.ID, claims.Subject),
		Email:       firstNonEmpty(hint.Email, claims.Email),
		Role:        role,
		FirstName:   firstNonEmpty(hint.FirstName, claims.FirstName),
		LastName:    firstNonEmpty(hint.LastName, claims.LastName),
		CollegeName: firstNonEmpty(hint.CollegeName, claims.CollegeName),
		Department:  firstNonEmpty(hint.Department, claims.Department),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
