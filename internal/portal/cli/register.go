package cli

import (
	"context"
	"os"

	"github.com/campushq/collegeportal/internal/portal/api"
	"github.com/campushq/collegeportal/internal/portal/session"
)

// Register walks the user through account creation.
//
// The email is checked against the gateway first so the user learns about a
// duplicate before typing the rest of the form. A verified registration
// issues a token exactly like a login does, so the session is established
// immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	taken, err := a.api.EmailRegistered(ctx, email)
	if err != nil {
		printlnFn("Could not verify email:", err.Error())
		return err
	}
	if taken {
		printlnFn("An account with this email already exists")
		return nil
	}

	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	roleRaw, err := getSimpleText(a.reader, "Enter role (PRINCIPAL, HOD, STAFF or STUDENT)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := session.ParseRole(roleRaw)
	if err != nil {
		printlnFn("Unknown role:", roleRaw)
		return err
	}
	collegeName, err := getSimpleText(a.reader, "Enter college name", os.Stdout)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Enter department", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	resp, err := a.api.VerifyRegistration(ctx, api.RegistrationRequest{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Password:    string(password),
		Role:        string(role),
		CollegeName: collegeName,
		Department:  department,
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	hint := session.ProfileHint{
		ID:          resp.User.ID,
		Email:       resp.User.Email,
		FirstName:   resp.User.FirstName,
		LastName:    resp.User.LastName,
		CollegeName: resp.User.CollegeName,
		Department:  resp.User.Department,
	}
	if err := a.session.Login(ctx, resp.Token, hint); err != nil {
		a.log.Error(ctx, "error establishing session", "error", err)
		printlnFn("Registration succeeded but login failed:", err.Error())
		return err
	}
	a.api.SetToken(resp.Token)

	if err := a.session.RememberEmail(ctx, email); err != nil {
		a.log.Warn(ctx, "error remembering email", "error", err)
	}

	printlnFn("Success!")
	return nil
}
