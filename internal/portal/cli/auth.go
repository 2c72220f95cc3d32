package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/campushq/collegeportal/internal/portal/api"
	"github.com/campushq/collegeportal/internal/portal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the gateway and
// establishes the session.
//
// The previously remembered email is offered as a default so a returning
// user can just press Enter. Rejected credentials and an unreachable gateway
// are reported to the user and leave the session untouched; only a
// successful round-trip mutates anything.
func (a *App) Login(ctx context.Context) error {
	remembered, err := a.session.RememberedEmail(ctx)
	if err != nil {
		a.log.Warn(ctx, "error reading remembered email", "error", err)
	}

	prompt := "Enter email"
	if remembered != "" {
		prompt = fmt.Sprintf("Enter email [%s]", remembered)
	}
	email, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = remembered
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	resp, err := a.api.Authenticate(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidCredentials):
			printlnFn("Invalid email or password")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server unavailable, try again later")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	hint := session.ProfileHint{
		ID:          resp.UserID,
		Email:       resp.Email,
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		CollegeName: resp.CollegeName,
		Department:  resp.Department,
	}
	if err := a.session.Login(ctx, resp.Token, hint); err != nil {
		a.log.Error(ctx, "error establishing session", "error", err)
		printlnFn("Login failed:", err.Error())
		return err
	}
	a.api.SetToken(resp.Token)

	if err := a.session.RememberEmail(ctx, email); err != nil {
		a.log.Warn(ctx, "error remembering email", "error", err)
	}

	printlnFn("Success!")
	return nil
}

// Logout drops the session and the bearer token. Safe to call when already
// logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.api.SetToken("")
	return nil
}
