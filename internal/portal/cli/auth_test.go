package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/collegeportal/internal/logging"
	"github.com/campushq/collegeportal/internal/portal/api"
	"github.com/campushq/collegeportal/internal/portal/config"
	"github.com/campushq/collegeportal/internal/portal/guard"
	"github.com/campushq/collegeportal/internal/portal/repositories/state"
	"github.com/campushq/collegeportal/internal/portal/session"
)

// ---- helpers ----

// newTestApp wires a real App over an in-memory state database and a test
// gateway. dbName must be unique per test so databases do not leak between
// tests.
func newTestApp(t *testing.T, dbName, gatewayURL string) *App {
	t.Helper()
	ctx := context.Background()

	db, err := state.Open(ctx, fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewText(io.Discard, slog.LevelDebug)
	cfg := &config.Config{GatewayBaseURL: gatewayURL, RequestTimeout: 2 * time.Second}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		route:  guard.RouteLogin,
		reader: bufio.NewReader(strings.NewReader("")),
	}
	a.api = api.NewClient(gatewayURL, cfg.RequestTimeout, log)
	a.session = session.NewManager(db, log, a.navigateTo)
	return a
}

// stubInputs replaces the interactive input seams. Text prompts are answered
// from the queue in order; the password prompt always returns password.
func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.Less(t, i, len(texts), "unexpected extra text prompt")
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func storedKeys(t *testing.T, a *App) map[string]string {
	t.Helper()
	all, err := state.NewSQLiteRepository(a.db).List(context.Background())
	require.NoError(t, err)
	return all
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)

	tok := signToken(t, jwt.MapClaims{"sub": "42", "role": "HOD", "email": "stale@y.com"})

	var gotCreds api.Credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/authentication", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreds))
		json.NewEncoder(w).Encode(api.AuthResponse{
			Token:     tok,
			UserID:    "42",
			Email:     "x@y.com",
			FirstName: "Alan",
		})
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(t, "clilogintest", srv.URL)
	require.NoError(t, a.session.Init(context.Background()))
	stubInputs(t, []string{"x@y.com"}, []byte("pw"))

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, api.Credentials{Email: "x@y.com", Password: "pw"}, gotCreds)

	cur := a.session.Current()
	require.Equal(t, session.StateAuthenticated, cur.State)
	assert.Equal(t, "42", cur.User.ID)
	assert.Equal(t, session.RoleHOD, cur.User.Role)
	// the profile response's email wins over the stale email claim
	assert.Equal(t, "x@y.com", cur.User.Email)
	assert.Equal(t, "Alan", cur.User.FirstName)

	assert.Equal(t, guard.RouteDashboard, a.route)

	stored := storedKeys(t, a)
	assert.Equal(t, tok, stored[state.KeyToken])
	assert.Equal(t, "42", stored[state.KeyUserID])
	assert.Equal(t, "x@y.com", stored[state.KeyRememberedEmail])
}

func TestLogin_EmptyEmailFallsBackToRemembered(t *testing.T) {
	silencePrintln(t)

	tok := signToken(t, jwt.MapClaims{"sub": "7", "role": "STUDENT", "email": "old@y.com"})

	var gotCreds api.Credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreds))
		json.NewEncoder(w).Encode(api.AuthResponse{Token: tok, UserID: "7"})
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(t, "cliremembertest", srv.URL)
	require.NoError(t, a.session.Init(context.Background()))
	require.NoError(t, a.session.RememberEmail(context.Background(), "old@y.com"))
	stubInputs(t, []string{""}, []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "old@y.com", gotCreds.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	silencePrintln(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(t, "clibadcredstest", srv.URL)
	require.NoError(t, a.session.Init(context.Background()))
	stubInputs(t, []string{"x@y.com"}, []byte("wrong"))

	err := a.Login(context.Background())
	require.ErrorIs(t, err, api.ErrInvalidCredentials)

	assert.Equal(t, session.StateUnauthenticated, a.session.Current().State)
	assert.Equal(t, guard.RouteLogin, a.route)
	assert.Empty(t, storedKeys(t, a))
}

func TestLogin_ServerUnavailable(t *testing.T) {
	silencePrintln(t)

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestApp(t, "cliunavailtest", url)
	require.NoError(t, a.session.Init(context.Background()))
	stubInputs(t, []string{"x@y.com"}, []byte("pw"))

	err := a.Login(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Equal(t, session.StateUnauthenticated, a.session.Current().State)
}

// ---- logout ----

func TestLogout_ClearsSessionKeepsRememberedEmail(t *testing.T) {
	silencePrintln(t)

	tok := signToken(t, jwt.MapClaims{"sub": "42", "role": "STAFF", "email": "x@y.com"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.AuthResponse{Token: tok, UserID: "42"})
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(t, "clilogouttest", srv.URL)
	require.NoError(t, a.session.Init(context.Background()))
	stubInputs(t, []string{"x@y.com"}, []byte("pw"))
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, session.StateUnauthenticated, a.session.Current().State)
	assert.Equal(t, guard.RouteLogin, a.route)
	assert.Equal(t,
		map[string]string{state.KeyRememberedEmail: "x@y.com"},
		storedKeys(t, a))
}
