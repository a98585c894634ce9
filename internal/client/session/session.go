// Package session holds the client's authentication state: which user, if
// any, is currently logged in. The state lives in one explicit Manager that
// screens receive by reference and observe through Subscribe, instead of an
// ambient global. The persisted bearer token is the sole durable piece of
// state; the user object is a cache of server truth rebuilt on every start.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/autohub/autohub-cli/internal/client/api"
	"github.com/autohub/autohub-cli/internal/client/models"
	"github.com/autohub/autohub-cli/internal/client/storage"
	"github.com/autohub/autohub-cli/internal/logging"
)

// ErrPasswordMismatch is reported by Signup before any network call when the
// password and its confirmation differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// SignupForm is the registration input. Validation beyond the password
// confirmation is the backend's business.
type SignupForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Manager is the session store. All writes go through its methods and are
// serialized by an internal mutex, so overlapping FetchUser calls (say, a
// rapid double login) cannot interleave half-written state.
type Manager struct {
	client api.Client
	tokens storage.Repository
	log    logging.Logger

	mu   sync.Mutex
	user *models.User
	subs []func(*models.User)
}

func NewManager(client api.Client, tokens storage.Repository, log logging.Logger) *Manager {
	return &Manager{client: client, tokens: tokens, log: log}
}

// Subscribe registers a callback invoked after every change of the current
// user, including the change to nil on logout or forced logout. Callbacks
// run with the manager lock held and must not call back into the Manager.
func (m *Manager) Subscribe(fn func(*models.User)) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

// Current returns the in-memory user, or nil when unauthenticated.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// HasToken reports whether a bearer token is persisted. This is the route
// guard's presence check: it does not validate the token against the
// backend, so a stale token grants optimistic access until the next
// FetchUser clears it.
func (m *Manager) HasToken(ctx context.Context) bool {
	token, err := m.tokens.Get(ctx, storage.TokenKey)
	if err != nil {
		m.log.Warn(ctx, "token lookup failed", "error", err)
		return false
	}
	return token != ""
}

func (m *Manager) setUser(u *models.User) {
	m.user = u
	subs := make([]func(*models.User), len(m.subs))
	copy(subs, m.subs)
	for _, fn := range subs {
		fn(u)
	}
}

// FetchUser rebuilds the user object from the "who am I" endpoint.
//
// No persisted token means unauthenticated, which is not a failure: state
// is left alone and nil is returned without any network call. A present
// token that the backend rejects (or any failure of this one call) is
// treated as an expired session: the token and the user are cleared and
// api.ErrUnauthorized is reported so the caller can send the user to the
// login screen.
func (m *Manager) FetchUser(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.tokens.Get(ctx, storage.TokenKey)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return nil
	}

	m.client.SetToken(token)
	user, err := m.client.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "session rejected, forcing logout", "error", err)
		m.clearLocked(ctx)
		return fmt.Errorf("%w: session expired", api.ErrUnauthorized)
	}

	m.setUser(user)
	return nil
}

// Login authenticates against the backend. On success the token is
// persisted, installed on the client, and the user object is populated via
// the same path FetchUser uses. On failure session state is untouched and
// the server-provided message comes back in the error.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, _, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	if err := m.tokens.Set(ctx, storage.TokenKey, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return m.FetchUser(ctx)
}

// Logout clears the persisted token and the in-memory user unconditionally.
// Storage errors are logged, not returned: logout cannot fail.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked(ctx)
}

func (m *Manager) clearLocked(ctx context.Context) {
	if err := m.tokens.Delete(ctx, storage.TokenKey); err != nil {
		m.log.Warn(ctx, "token delete failed", "error", err)
	}
	m.client.SetToken("")
	m.setUser(nil)
}

// Signup registers a new account. The password/confirmation check runs
// locally before any network call. Registration never mutates session
// state: the account must pass email verification before it can log in.
func (m *Manager) Signup(ctx context.Context, form SignupForm) error {
	if form.Password != form.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return m.client.Register(ctx, api.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
}

// Verify probes the verify-by-token endpoint once. A nil error means the
// account is verified and the caller should steer the user to login.
func (m *Manager) Verify(ctx context.Context, token string) error {
	return m.client.Verify(ctx, token)
}
