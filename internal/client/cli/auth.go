package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/autohub/autohub-cli/internal/client/session"
)

// getSimpleText, getPassword and sleepFn are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	sleepFn       = time.Sleep
)

// Login prompts for credentials and authenticates. On success the token is
// persisted, the user object populated, and the user lands on the listing
// screen. On failure the server's message is shown and session state stays
// untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Login successful!")
	return a.Browse(ctx)
}

// Signup collects the registration form and submits it. The password
// confirmation is checked locally before any network call; a mismatch is
// shown inline next to the field it concerns. Registration never logs the
// user in — the account must be verified by email first.
func (a *App) Signup(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	err = a.session.Signup(ctx, session.SignupForm{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		if errors.Is(err, session.ErrPasswordMismatch) {
			printlnFn("Confirm password: passwords do not match")
			return err
		}
		printlnFn("Signup failed:", err.Error())
		return err
	}

	printlnFn("Signup successful! Please verify your email.")
	return nil
}

// Verify probes the verification endpoint once and reports the result,
// then pauses briefly before returning the user to the auth screens —
// login after success, signup after failure.
func (a *App) Verify(ctx context.Context, token string) error {
	if err := a.session.Verify(ctx, token); err != nil {
		printlnFn("Invalid or expired token. Returning to signup...")
		sleepFn(a.config.VerifyRedirectDelay)
		return err
	}

	printlnFn("Account verified successfully. Returning to login...")
	sleepFn(a.config.VerifyRedirectDelay)
	return nil
}

// Logout clears the session unconditionally and confirms it to the user.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out successfully")
	return nil
}
