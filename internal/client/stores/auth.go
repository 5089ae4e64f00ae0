package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/mantis/internal/client/client"
	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
	"github.com/dmitrijs2005/mantis/internal/common"
	"github.com/dmitrijs2005/mantis/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// UserStorageKey is the local storage key of a remembered session.
	UserStorageKey = "user"

	// DefaultLandingPath is where a successful login lands without a return URL.
	DefaultLandingPath = "/dashboard"

	// LoginPath is where logout lands.
	LoginPath = "/auth/login"

	keepMeField = "keepMe"
)

// ErrLoginFailed wraps every login failure. Callers show one generic
// message whether the credentials were wrong or the backend was down.
var ErrLoginFailed = errors.New("login failed")

// Navigator performs programmatic navigation.
type Navigator interface {
	Push(ctx context.Context, path string) error
}

// User is the backend's opaque user payload plus the local keepMe flag.
type User map[string]any

// KeepMe reports whether the session was chosen to survive restarts.
func (u User) KeepMe() bool {
	v, _ := u[keepMeField].(bool)
	return v
}

// Token returns the access token the backend put into the payload, if any.
func (u User) Token() string {
	v, _ := u[common.TokenField].(string)
	return v
}

// DisplayName picks the most human field available.
func (u User) DisplayName() string {
	for _, k := range []string{"name", "username", "email"} {
		if v, ok := u[k].(string); ok && v != "" {
			return v
		}
	}
	return "user"
}

func (u User) clone() User {
	if u == nil {
		return nil
	}
	c := make(User, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// Session is a snapshot of the auth store state.
type Session struct {
	User      User
	ReturnURL string
}

type AuthOptions struct {
	// LoginTimeout bounds a single login round-trip. Zero means no bound.
	LoginTimeout time.Duration
	// Now is the clock used to judge restored tokens.
	Now func() time.Time
}

// AuthStore manages the authenticated-session lifecycle.
//
// States are Anonymous (User == nil) and Authenticated. Login moves to
// Authenticated (overwriting any previous user), Logout to Anonymous.
// Nothing expires a live session; only restore drops expired tokens.
type AuthStore struct {
	api     client.Client
	durable webstorage.Storage
	nav     Navigator
	logger  logging.Logger
	opts    AuthOptions

	mu        sync.RWMutex
	user      User
	returnURL string
}

// NewAuthStore creates the store and seeds it from the durable "user"
// entry. A missing, unreadable or unparsable entry yields Anonymous.
func NewAuthStore(ctx context.Context, api client.Client, durable webstorage.Storage, nav Navigator, logger logging.Logger, opts AuthOptions) *AuthStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &AuthStore{
		api:     api,
		durable: durable,
		nav:     nav,
		logger:  logger.With("module", "auth_store"),
		opts:    opts,
	}
	s.user = s.restore(ctx)
	return s
}

func (s *AuthStore) restore(ctx context.Context) User {
	raw, ok, err := s.durable.GetItem(ctx, UserStorageKey)
	if err != nil {
		s.logger.Warn(ctx, "reading persisted session failed", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Warn(ctx, "ignoring corrupt persisted session", "error", err)
		return nil
	}
	if u == nil {
		return nil
	}

	if tokenExpired(u.Token(), s.opts.Now()) {
		s.logger.Info(ctx, "persisted session expired, dropping it")
		if err := s.durable.RemoveItem(ctx, UserStorageKey); err != nil {
			s.logger.Warn(ctx, "removing expired session failed", "error", err)
		}
		return nil
	}

	s.logger.Debug(ctx, "session restored", "user", u.DisplayName())
	return u
}

// tokenExpired reads the exp claim without verifying the signature; the
// client does not hold the signing key. Opaque tokens never expire here.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time)
}

// Login authenticates against the backend. On success the user payload is
// merged with keepMe, persisted (keepMe) or scrubbed (!keepMe) from local
// storage, and the app navigates to the recorded return URL or to
// DefaultLandingPath. On failure the session is left untouched and the
// error wraps ErrLoginFailed.
func (s *AuthStore) Login(ctx context.Context, username, password string, keepMe bool) error {
	callCtx := ctx
	if s.opts.LoginTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.LoginTimeout)
		defer cancel()
	}

	payload, err := s.api.Authenticate(callCtx, username, password)
	if err != nil {
		s.logger.Warn(ctx, "login unsuccessful", "username", username, "error", err)
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	user := make(User, len(payload)+1)
	for k, v := range payload {
		user[k] = v
	}
	user[keepMeField] = keepMe

	if err := s.persist(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	s.mu.Lock()
	s.user = user
	target := s.returnURL
	s.returnURL = ""
	s.mu.Unlock()

	if target == "" {
		target = DefaultLandingPath
	}
	s.logger.Info(ctx, "login successful", "user", user.DisplayName(), "keep_me", keepMe)

	return s.nav.Push(ctx, target)
}

// persist writes user to local storage when keepMe is set and removes any
// earlier entry otherwise, so a stale remembered session cannot leak in.
func (s *AuthStore) persist(ctx context.Context, user User) error {
	if !user.KeepMe() {
		return s.durable.RemoveItem(ctx, UserStorageKey)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.durable.SetItem(ctx, UserStorageKey, string(data))
}

// Logout clears the session and its durable entry, then navigates to the
// login page. Calling it while Anonymous is harmless. Navigation happens even
// when the durable entry cannot be removed; both errors are returned joined.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	removeErr := s.durable.RemoveItem(ctx, UserStorageKey)
	if removeErr != nil {
		s.logger.Error(ctx, "remembered session is still stored and may be restored on next start",
			"key", UserStorageKey, "error", removeErr)
	}
	return errors.Join(removeErr, s.nav.Push(ctx, LoginPath))
}

// SetReturnURL records where to go after the next successful login.
func (s *AuthStore) SetReturnURL(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returnURL = path
}

func (s *AuthStore) ReturnURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.returnURL
}

// User returns a copy of the current user, nil when Anonymous.
func (s *AuthStore) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.clone()
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Session returns a snapshot of the whole state.
func (s *AuthStore) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{User: s.user.clone(), ReturnURL: s.returnURL}
}
