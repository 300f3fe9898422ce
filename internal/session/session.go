// Package session owns the authenticated identity of the running client and
// is the only package that reads or writes the persisted key-value store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/db"
	"storefront/internal/metrics"
	"storefront/internal/model"
	"storefront/internal/router"

	"github.com/dgrijalva/jwt-go"
)

// Persisted entry names.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Authenticator is the auth boundary.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (model.AuthResult, error)
	Register(ctx context.Context, reg model.Registration) error
}

// Clearer is notified on logout. The cart engine registers itself here.
type Clearer interface {
	Clear()
}

// ClearFunc adapts a plain function to Clearer.
type ClearFunc func()

func (f ClearFunc) Clear() { f() }

// Store holds the token and user of the running client. The token is
// non-empty exactly when a user is set. Not safe for concurrent use.
type Store struct {
	kv        db.Store
	namespace string
	auth      Authenticator
	clearers  []Clearer
	metrics   *metrics.Metrics
	now       func() time.Time

	token string
	user  *model.User
}

// New creates a session store persisting under namespace.
func New(kv db.Store, namespace string, auth Authenticator, m *metrics.Metrics) *Store {
	if namespace == "" {
		namespace = "default"
	}
	return &Store{kv: kv, namespace: namespace, auth: auth, metrics: m, now: time.Now}
}

// OnLogout registers c to be cleared whenever the session ends.
func (s *Store) OnLogout(c Clearer) {
	s.clearers = append(s.clearers, c)
}

func (s *Store) Authenticated() bool { return s.token != "" && s.user != nil }

func (s *Store) Token() string { return s.token }

// User returns the logged-in user.
func (s *Store) User() (model.User, bool) {
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Role is the logged-in user's role, or "" when logged out.
func (s *Store) Role() model.Role {
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// Restore hydrates the session from persisted entries. It reports false and
// changes nothing when either entry is missing or unreadable. A JWT whose
// exp claim has passed is removed from storage.
func (s *Store) Restore() (router.View, bool) {
	token, err := s.kv.GetEntry(s.namespace, KeyToken)
	if err != nil {
		slog.Error("failed to read persisted token", "error", err)
		return router.Home, false
	}
	raw, err := s.kv.GetEntry(s.namespace, KeyUser)
	if err != nil {
		slog.Error("failed to read persisted user", "error", err)
		return router.Home, false
	}
	if token == "" || raw == "" {
		return router.Home, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.Username == "" {
		slog.Warn("ignoring unreadable persisted user", "error", err)
		return router.Home, false
	}

	if expired(token, s.now()) {
		slog.Info("persisted session expired", "user", user.Username)
		s.erase()
		return router.Home, false
	}

	s.token = token
	s.user = &user
	s.metrics.SetSession(true)
	slog.Debug("session restored", "user", user.Username, "role", user.Role)
	return router.LandingView(user.Role), true
}

// Authenticate calls the auth boundary without touching the session. It is
// safe to run off the event path; apply its result with Establish.
func (s *Store) Authenticate(ctx context.Context, username, password string) (model.AuthResult, error) {
	return s.auth.Login(ctx, username, password)
}

// Establish persists and adopts a successful login. On failure the session
// is left as it was.
func (s *Store) Establish(res model.AuthResult) (router.View, error) {
	if res.Token == "" || res.Username == "" {
		return "", errors.New("login response is missing its token or user")
	}
	user := res.User()

	raw, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.kv.SetEntry(s.namespace, KeyToken, res.Token); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.kv.SetEntry(s.namespace, KeyUser, string(raw)); err != nil {
		_ = s.kv.DeleteEntry(s.namespace, KeyToken)
		return "", fmt.Errorf("failed to persist user: %w", err)
	}

	s.token = res.Token
	s.user = &user
	s.metrics.SetSession(true)
	slog.Info("logged in", "user", user.Username, "role", user.Role)
	return router.LandingView(user.Role), nil
}

// Login authenticates and establishes the session in one step.
func (s *Store) Login(ctx context.Context, username, password string) (router.View, error) {
	res, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.Establish(res)
}

// Register creates an account. The session does not change; the user is sent
// to the login view.
func (s *Store) Register(ctx context.Context, username, email, password string, role model.Role) (router.View, error) {
	err := s.auth.Register(ctx, model.Registration{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role.Short(),
	})
	if err != nil {
		return "", err
	}
	slog.Info("registered", "user", username, "role", role)
	return router.Login, nil
}

// Logout forgets the session, clears registered clearers and returns Home.
func (s *Store) Logout() router.View {
	if s.user != nil {
		slog.Info("logged out", "user", s.user.Username)
	}
	s.erase()
	s.token = ""
	s.user = nil
	for _, c := range s.clearers {
		c.Clear()
	}
	s.metrics.SetSession(false)
	return router.Home
}

func (s *Store) erase() {
	for _, key := range []string{KeyToken, KeyUser} {
		if err := s.kv.DeleteEntry(s.namespace, key); err != nil {
			slog.Error("failed to delete persisted entry", "key", key, "error", err)
		}
	}
}

// expired reports whether token is a JWT whose exp claim is before now.
// Tokens that are not JWTs are left for the server to judge.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), false)
}
