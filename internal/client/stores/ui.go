package stores

import "sync/atomic"

// UIStore holds the global loading flag. It is never persisted.
type UIStore struct {
	loading atomic.Bool
}

func NewUIStore() *UIStore {
	return &UIStore{}
}

func (s *UIStore) IsLoading() bool {
	return s.loading.Load()
}

func (s *UIStore) SetLoading(v bool) {
	s.loading.Store(v)
}

// Track raises the loading flag for the duration of fn and lowers it
// however fn returns, panics included.
func (s *UIStore) Track(fn func() error) error {
	s.SetLoading(true)
	defer s.SetLoading(false)
	return fn()
}
