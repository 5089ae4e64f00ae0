package stores

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
	"github.com/dmitrijs2005/mantis/internal/logging"
)

// DefaultNamespace is the session storage key preferences live under.
const DefaultNamespace = "vuetify"

// Preferences is the persisted preference state.
type Preferences struct {
	IsDarkTheme bool   `json:"isDarkTheme"`
	Locale      string `json:"locale"`
}

// PreferenceStore holds theme and locale. Every mutation writes the full
// state to session storage; a failed write is logged and otherwise ignored.
type PreferenceStore struct {
	storage   webstorage.Storage
	namespace string
	logger    logging.Logger

	mu    sync.RWMutex
	state Preferences
}

// NewPreferenceStore seeds from env, then overlays whatever fields the
// namespace key holds when it is a valid document.
func NewPreferenceStore(ctx context.Context, storage webstorage.Storage, namespace string, env Environment, logger logging.Logger) *PreferenceStore {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	s := &PreferenceStore{
		storage:   storage,
		namespace: namespace,
		logger:    logger.With("module", "preference_store"),
		state: Preferences{
			IsDarkTheme: env.PrefersDark,
			Locale:      env.PreferredLocale(),
		},
	}

	raw, ok, err := storage.GetItem(ctx, namespace)
	switch {
	case err != nil:
		s.logger.Warn(ctx, "reading preferences failed", "error", err)
	case ok:
		p := s.state
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.logger.Warn(ctx, "ignoring corrupt preferences", "error", err)
		} else {
			s.state = p
		}
	}

	return s
}

// ToggleTheme flips dark mode.
func (s *PreferenceStore) ToggleTheme(ctx context.Context) {
	s.mu.Lock()
	s.state.IsDarkTheme = !s.state.IsDarkTheme
	snapshot := s.state
	s.mu.Unlock()

	s.save(ctx, snapshot)
}

// SetLocale stores value as is.
func (s *PreferenceStore) SetLocale(ctx context.Context, value string) {
	s.mu.Lock()
	s.state.Locale = value
	snapshot := s.state
	s.mu.Unlock()

	s.save(ctx, snapshot)
}

func (s *PreferenceStore) IsDarkTheme() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsDarkTheme
}

func (s *PreferenceStore) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Locale
}

func (s *PreferenceStore) State() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *PreferenceStore) save(ctx context.Context, p Preferences) {
	data, err := json.Marshal(p)
	if err != nil {
		s.logger.Error(ctx, "encoding preferences failed", "error", err)
		return
	}
	if err := s.storage.SetItem(ctx, s.namespace, string(data)); err != nil {
		s.logger.Warn(ctx, "persisting preferences failed", "error", err)
	}
}
