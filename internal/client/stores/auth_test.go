package stores

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mantis/internal/client/client"
	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
	"github.com/dmitrijs2005/mantis/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newAuth(t *testing.T, api *fakeAPI, local webstorage.Storage, nav *fakeNavigator) *AuthStore {
	t.Helper()
	return NewAuthStore(context.Background(), api, local, nav, logging.NewDiscardLogger(), AuthOptions{
		LoginTimeout: time.Second,
		Now:          func() time.Time { return testNow },
	})
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestLogin_KeepMe_PersistsAndNavigatesToDashboard(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{user: map[string]any{"id": float64(1), "name": "Alice"}}
	local := webstorage.NewMemoryStorage()
	nav := &fakeNavigator{}
	s := newAuth(t, api, local, nav)

	require.NoError(t, s.Login(ctx, "alice", "pw", true))

	want := User{"id": float64(1), "name": "Alice", "keepMe": true}
	if diff := cmp.Diff(want, s.User()); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, s.IsAuthenticated())

	raw, ok, err := local.GetItem(ctx, UserStorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":1,"keepMe":true,"name":"Alice"}`, raw)
	assert.Equal(t, `{"id":1,"keepMe":true,"name":"Alice"}`, raw)

	assert.Equal(t, []string{DefaultLandingPath}, nav.Paths())
	assert.Equal(t, "alice", api.lastUser)
	assert.Equal(t, "pw", api.lastPass)
}

func TestLogin_WithoutKeepMe_RemovesDurableEntry(t *testing.T) {
	ctx := context.Background()
	local := webstorage.NewMemoryStorage()
	require.NoError(t, local.SetItem(ctx, UserStorageKey, `{"id":9,"name":"Old","keepMe":true}`))

	api := &fakeAPI{user: map[string]any{"id": float64(1), "name": "Alice"}}
	nav := &fakeNavigator{}
	s := newAuth(t, api, local, nav)
	require.True(t, s.IsAuthenticated(), "old entry should have been restored")

	require.NoError(t, s.Login(ctx, "alice", "pw", false))

	_, ok, err := local.GetItem(ctx, UserStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	u := s.User()
	assert.Equal(t, "Alice", u["name"])
	assert.False(t, u.KeepMe())
}

func TestLogin_UsesAndClearsReturnURL(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{user: map[string]any{"id": float64(1)}}
	nav := &fakeNavigator{}
	s := newAuth(t, api, webstorage.NewMemoryStorage(), nav)

	s.SetReturnURL("/colors")
	require.NoError(t, s.Login(ctx, "a", "b", false))
	assert.Equal(t, []string{"/colors"}, nav.Paths())
	assert.Empty(t, s.ReturnURL())

	require.NoError(t, s.Login(ctx, "a", "b", false))
	assert.Equal(t, []string{"/colors", DefaultLandingPath}, nav.Paths())
}

func TestLogin_Failure_LeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	local := webstorage.NewMemoryStorage()
	api := &fakeAPI{err: client.ErrUnauthorized}
	nav := &fakeNavigator{}
	s := newAuth(t, api, local, nav)
	s.SetReturnURL("/shadow")

	err := s.Login(ctx, "alice", "wrong", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "/shadow", s.ReturnURL())
	assert.Empty(t, nav.Paths())
	keys, err := local.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, 1, api.calls, "login must not retry")
}

func TestLogin_Failure_KeepsPreviousUser(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{user: map[string]any{"id": float64(1), "name": "Alice"}}
	s := newAuth(t, api, webstorage.NewMemoryStorage(), &fakeNavigator{})
	require.NoError(t, s.Login(ctx, "alice", "pw", false))

	api.err = client.ErrUnavailable
	require.ErrorIs(t, s.Login(ctx, "alice", "pw", false), ErrLoginFailed)
	assert.Equal(t, "Alice", s.User()["name"])
}

func TestLogin_TimesOut(t *testing.T) {
	api := &fakeAPI{block: true}
	s := NewAuthStore(context.Background(), api, webstorage.NewMemoryStorage(), &fakeNavigator{}, logging.NewDiscardLogger(), AuthOptions{
		LoginTimeout: 20 * time.Millisecond,
	})

	start := time.Now()
	err := s.Login(context.Background(), "a", "b", true)
	require.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, s.IsAuthenticated())
}

func TestLogin_PersistFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	api := &fakeAPI{user: map[string]any{"id": float64(1)}}
	nav := &fakeNavigator{}
	s := newAuth(t, api, failingStorage{Storage: webstorage.NewMemoryStorage(), err: storeErr}, nav)

	err := s.Login(context.Background(), "a", "b", true)
	require.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, nav.Paths())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	local := webstorage.NewMemoryStorage()
	api := &fakeAPI{user: map[string]any{"id": float64(1)}}
	nav := &fakeNavigator{}
	s := newAuth(t, api, local, nav)
	require.NoError(t, s.Login(ctx, "a", "b", true))

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	_, ok, err := local.GetItem(ctx, UserStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// idempotent
	require.NoError(t, s.Logout(ctx))
	assert.Equal(t, []string{DefaultLandingPath, LoginPath, LoginPath}, nav.Paths())
}

func TestLogout_RemoveFailureStillNavigates(t *testing.T) {
	removeErr := errors.New("read-only")
	nav := &fakeNavigator{}
	s := newAuth(t, &fakeAPI{}, failingStorage{Storage: webstorage.NewMemoryStorage(), err: removeErr}, nav)

	err := s.Logout(context.Background())
	require.ErrorIs(t, err, removeErr)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, []string{LoginPath}, nav.Paths())
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		stored     string
		wantAuth   bool
		wantKept   bool
		wantUserID any
	}{
		{name: "absent", wantAuth: false},
		{name: "valid", stored: `{"id":7,"keepMe":true}`, wantAuth: true, wantKept: true, wantUserID: float64(7)},
		{name: "corrupt", stored: `{not json`, wantAuth: false, wantKept: true},
		{name: "json null", stored: `null`, wantAuth: false, wantKept: true},
		{name: "opaque token", stored: `{"id":3,"token":"abc"}`, wantAuth: true, wantKept: true, wantUserID: float64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := webstorage.NewMemoryStorage()
			if tt.stored != "" {
				require.NoError(t, local.SetItem(ctx, UserStorageKey, tt.stored))
			}

			s := newAuth(t, &fakeAPI{}, local, &fakeNavigator{})
			assert.Equal(t, tt.wantAuth, s.IsAuthenticated())
			if tt.wantAuth {
				assert.Equal(t, tt.wantUserID, s.User()["id"])
			}

			_, ok, err := local.GetItem(ctx, UserStorageKey)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKept, ok)
		})
	}
}

func TestRestore_ExpiredTokenIsDropped(t *testing.T) {
	ctx := context.Background()
	local := webstorage.NewMemoryStorage()

	data, err := json.Marshal(map[string]any{"id": 1, "token": signedToken(t, testNow.Add(-time.Minute))})
	require.NoError(t, err)
	require.NoError(t, local.SetItem(ctx, UserStorageKey, string(data)))

	s := newAuth(t, &fakeAPI{}, local, &fakeNavigator{})
	assert.False(t, s.IsAuthenticated())

	_, ok, err := local.GetItem(ctx, UserStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRestore_LiveTokenIsKept(t *testing.T) {
	ctx := context.Background()
	local := webstorage.NewMemoryStorage()

	tok := signedToken(t, testNow.Add(time.Hour))
	data, err := json.Marshal(map[string]any{"id": 1, "token": tok, "keepMe": true})
	require.NoError(t, err)
	require.NoError(t, local.SetItem(ctx, UserStorageKey, string(data)))

	s := newAuth(t, &fakeAPI{}, local, &fakeNavigator{})
	require.True(t, s.IsAuthenticated())
	assert.Equal(t, tok, s.User().Token())
}

func TestRestore_StorageErrorMeansAnonymous(t *testing.T) {
	s := newAuth(t, &fakeAPI{}, failingStorage{err: errors.New("boom")}, &fakeNavigator{})
	assert.False(t, s.IsAuthenticated())
}

func TestSession_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{user: map[string]any{"id": float64(1), "name": "Alice"}}
	s := newAuth(t, api, webstorage.NewMemoryStorage(), &fakeNavigator{})
	require.NoError(t, s.Login(ctx, "a", "b", false))

	snap := s.Session()
	snap.User["name"] = "Mallory"
	assert.Equal(t, "Alice", s.User()["name"])
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Alice", User{"name": "Alice", "username": "alice"}.DisplayName())
	assert.Equal(t, "alice", User{"username": "alice"}.DisplayName())
	assert.Equal(t, "a@b.c", User{"email": "a@b.c"}.DisplayName())
	assert.Equal(t, "user", User{"id": 1}.DisplayName())
}
