package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campushq/collegeportal/internal/dbx"
	"github.com/campushq/collegeportal/internal/logging"
	"github.com/campushq/collegeportal/internal/portal/repositories/state"
	"github.com/campushq/collegeportal/internal/portal/token"
)

// Well-known navigation targets. Login lands on the default authenticated
// screen, logout returns to the login screen.
const (
	defaultLanding = "/dashboard"
	loginRoute     = "/login"
)

// Manager owns the single live session for this client context. All state
// transitions run through it; everything else reads snapshots via Current.
//
// The portal is single-threaded (one interactive loop), so the Manager does
// no locking. The one asynchronous hazard is a login round-trip resolving
// after the user has navigated away: Close marks the manager torn down and
// any transition arriving later becomes a no-op.
type Manager struct {
	db       *sql.DB
	log      logging.Logger
	navigate func(route string)
	cur      Session
	closed   bool
}

// NewManager builds a Manager over the local state database. The navigate
// hook is invoked once per login/logout transition; nil means no navigation.
func NewManager(db *sql.DB, log logging.Logger, navigate func(route string)) *Manager {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Manager{
		db:       db,
		log:      log,
		navigate: navigate,
		cur:      Session{State: StateInitializing},
	}
}

// Current returns a read-only snapshot of the session.
func (m *Manager) Current() Session {
	return m.cur
}

// Close marks the manager torn down. Transitions resolving afterwards
// (a network round-trip finishing after teardown) are discarded silently.
func (m *Manager) Close() {
	m.closed = true
}

// Init rehydrates the session from the persisted store.
//
// No persisted token resolves straight to the unauthenticated state. A token
// that fails to decode, or whose role claim is not a known role, invalidates
// the whole persisted session: the store is cleared and the user lands on
// the login screen. On cold start this is deliberately silent (logged, not
// surfaced) — the user just sees the login form.
func (m *Manager) Init(ctx context.Context) error {
	if m.closed {
		return nil
	}

	fields, err := state.NewSQLiteRepository(m.db).List(ctx)
	if err != nil {
		m.cur = Session{State: StateUnauthenticated}
		return fmt.Errorf("load persisted session: %w", err)
	}

	tok := fields[state.KeyToken]
	if tok == "" {
		m.cur = Session{State: StateUnauthenticated}
		return nil
	}

	claims, role, err := decodeWithRole(tok)
	if err != nil {
		m.log.Warn(ctx, "discarding invalid persisted token", "error", err)
		if clearErr := m.clearStore(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear invalid session", "error", clearErr)
		}
		m.cur = Session{State: StateUnauthenticated}
		return nil
	}

	hint := ProfileHint{
		ID:          fields[state.KeyUserID],
		FirstName:   fields[state.KeyFirstName],
		LastName:    fields[state.KeyLastName],
		CollegeName: fields[state.KeyCollegeName],
		Department:  fields[state.KeyDepartment],
	}
	m.cur = Session{Token: tok, User: reconcile(claims, role, hint), State: StateAuthenticated}
	return nil
}

// Login enters an authenticated session from a freshly issued token.
//
// An undecodable token (or one without a valid role claim) is reported to
// the caller and leaves both the live session and the persisted state
// untouched — no partial writes. This is the only path that derives the
// role from a fresh decode.
func (m *Manager) Login(ctx context.Context, tok string, hint ProfileHint) error {
	if m.closed {
		return nil
	}

	claims, role, err := decodeWithRole(tok)
	if err != nil {
		return err
	}

	user := reconcile(claims, role, hint)
	if err := m.persist(ctx, tok, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if m.closed {
		return nil
	}

	m.cur = Session{Token: tok, User: user, State: StateAuthenticated}
	m.log.Info(ctx, "session established", "userId", user.ID, "role", string(user.Role))
	m.navigate(defaultLanding)
	return nil
}

// Logout clears the persisted session, drops the live one, and navigates to
// the login screen. Calling it on an already-unauthenticated session is
// harmless and leaves the same state behind.
func (m *Manager) Logout(ctx context.Context) error {
	if m.closed {
		return nil
	}

	if err := m.clearStore(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	m.cur = Session{State: StateUnauthenticated}
	m.navigate(loginRoute)
	return nil
}

// RememberedEmail returns the login-form convenience value, if any.
func (m *Manager) RememberedEmail(ctx context.Context) (string, error) {
	v, _, err := state.NewSQLiteRepository(m.db).Get(ctx, state.KeyRememberedEmail)
	return v, err
}

// RememberEmail stores the login-form convenience value. It is outside the
// session key set and survives logout.
func (m *Manager) RememberEmail(ctx context.Context, email string) error {
	return state.NewSQLiteRepository(m.db).Set(ctx, state.KeyRememberedEmail, email)
}

func decodeWithRole(tok string) (*token.Claims, Role, error) {
	claims, err := token.Decode(tok)
	if err != nil {
		return nil, "", err
	}
	role, err := ParseRole(claims.Role)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", token.ErrMalformed, err)
	}
	return claims, role, nil
}

// persist writes the session fields in one transaction. Undefined fields
// are deleted rather than written as empty strings, so a later load returns
// exactly the fields that were defined at save time.
func (m *Manager) persist(ctx context.Context, tok string, u *User) error {
	fields := map[string]string{
		state.KeyToken:       tok,
		state.KeyUserID:      u.ID,
		state.KeyFirstName:   u.FirstName,
		state.KeyLastName:    u.LastName,
		state.KeyCollegeName: u.CollegeName,
		state.KeyDepartment:  u.Department,
	}

	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		for _, key := range state.SessionKeys() {
			if v := fields[key]; v != "" {
				if err := repo.Set(ctx, key, v); err != nil {
					return err
				}
			} else if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *Manager) clearStore(ctx context.Context) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return state.NewSQLiteRepository(tx).ClearSession(ctx)
	})
}
