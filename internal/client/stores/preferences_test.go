package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
	"github.com/dmitrijs2005/mantis/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_SeedsFromEnvironment(t *testing.T) {
	env := Environment{PrefersDark: true, Languages: []string{"de_DE.UTF-8"}}
	s := NewPreferenceStore(context.Background(), webstorage.NewMemoryStorage(), "", env, logging.NewDiscardLogger())

	assert.True(t, s.IsDarkTheme())
	assert.Equal(t, "de-DE", s.Locale())
}

func TestPreferenceStore_ToggleTheme_Persists(t *testing.T) {
	ctx := context.Background()
	session := webstorage.NewMemoryStorage()
	s := NewPreferenceStore(ctx, session, DefaultNamespace, Environment{}, logging.NewDiscardLogger())
	require.False(t, s.IsDarkTheme())

	s.ToggleTheme(ctx)
	assert.True(t, s.IsDarkTheme())

	raw, ok, err := session.GetItem(ctx, DefaultNamespace)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"isDarkTheme":true,"locale":"en"}`, raw)

	s.ToggleTheme(ctx)
	assert.False(t, s.IsDarkTheme())
}

func TestPreferenceStore_SetLocale_AcceptsAnything(t *testing.T) {
	ctx := context.Background()
	session := webstorage.NewMemoryStorage()
	s := NewPreferenceStore(ctx, session, "prefs", Environment{}, logging.NewDiscardLogger())

	s.SetLocale(ctx, "klingon")
	assert.Equal(t, "klingon", s.Locale())

	raw, ok, err := session.GetItem(ctx, "prefs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"isDarkTheme":false,"locale":"klingon"}`, raw)
}

func TestPreferenceStore_HydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	session := webstorage.NewMemoryStorage()
	require.NoError(t, session.SetItem(ctx, "vuetify", `{"isDarkTheme":true,"locale":"fr"}`))

	s := NewPreferenceStore(ctx, session, "vuetify", Environment{Languages: []string{"en_US"}}, logging.NewDiscardLogger())
	assert.Equal(t, Preferences{IsDarkTheme: true, Locale: "fr"}, s.State())
}

func TestPreferenceStore_PartialStorageKeepsEnvironmentDefaults(t *testing.T) {
	env := Environment{PrefersDark: true, Languages: []string{"de_DE"}}

	tests := []struct {
		name       string
		stored     string
		wantDark   bool
		wantLocale string
	}{
		{name: "empty object", stored: `{}`, wantDark: true, wantLocale: env.PreferredLocale()},
		{name: "null", stored: `null`, wantDark: true, wantLocale: env.PreferredLocale()},
		{name: "locale only", stored: `{"locale":"fr"}`, wantDark: true, wantLocale: "fr"},
		{name: "explicit light theme", stored: `{"isDarkTheme":false}`, wantDark: false, wantLocale: env.PreferredLocale()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			session := webstorage.NewMemoryStorage()
			require.NoError(t, session.SetItem(ctx, "vuetify", tt.stored))

			s := NewPreferenceStore(ctx, session, "vuetify", env, logging.NewDiscardLogger())
			assert.Equal(t, tt.wantDark, s.IsDarkTheme())
			assert.Equal(t, tt.wantLocale, s.Locale())
		})
	}
}

func TestPreferenceStore_CorruptStorageFallsBackToEnvironment(t *testing.T) {
	ctx := context.Background()
	session := webstorage.NewMemoryStorage()
	require.NoError(t, session.SetItem(ctx, "vuetify", `garbage`))

	s := NewPreferenceStore(ctx, session, "vuetify", Environment{PrefersDark: true}, logging.NewDiscardLogger())
	assert.Equal(t, Preferences{IsDarkTheme: true, Locale: "en"}, s.State())
}

func TestPreferenceStore_PersistFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	s := NewPreferenceStore(ctx, failingStorage{err: errors.New("quota")}, "vuetify", Environment{}, logging.NewDiscardLogger())

	s.ToggleTheme(ctx)
	s.SetLocale(ctx, "lv")
	assert.Equal(t, Preferences{IsDarkTheme: true, Locale: "lv"}, s.State())
}
