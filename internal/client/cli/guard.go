package cli

import "context"

// requireAuth gates a screen behind the presence of a persisted token.
// This is a presence check only: the token is not validated against the
// backend here, so a stale token briefly grants access until the next
// session fetch clears it. Without a token the user is bounced to the
// login screen instead.
func (a *App) requireAuth(ctx context.Context, fn func(context.Context) error) error {
	if !a.session.HasToken(ctx) {
		printlnFn("You need to be logged in for that.")
		return a.Login(ctx)
	}
	return fn(ctx)
}
