// Package state persists the client-side session material in a local
// key/value table. It is the portal's stand-in for browser-local storage:
// scoped to the local profile, survives restarts, no encryption and no TTL
// (an accepted limitation inherited from the product, not a bug).
package state

import "context"

// Persisted keys. SessionKeys lists the ones that make up a session and are
// wiped together on logout; rememberedEmail is a login-form convenience
// value unrelated to session validity and survives a session clear.
const (
	KeyToken           = "token"
	KeyUserID          = "userId"
	KeyFirstName       = "firstName"
	KeyLastName        = "lastName"
	KeyCollegeName     = "collegeName"
	KeyDepartment      = "department"
	KeyRememberedEmail = "rememberedEmail"
)

// SessionKeys returns the exact key set cleared on logout, in a fresh slice.
func SessionKeys() []string {
	return []string{
		KeyToken,
		KeyUserID,
		KeyFirstName,
		KeyLastName,
		KeyCollegeName,
		KeyDepartment,
	}
}

// Repository is the persisted key/value surface. Get reports absence via the
// boolean instead of an error; callers treat any subset of keys as optional.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	ClearSession(ctx context.Context) error
}
