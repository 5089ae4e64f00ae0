package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/mantis/internal/client/repositories/webstorage"
)

type fakeAPI struct {
	mu       sync.Mutex
	user     map[string]any
	err      error
	block    bool
	calls    int
	lastUser string
	lastPass string
}

func (f *fakeAPI) Authenticate(ctx context.Context, username, password string) (map[string]any, error) {
	f.mu.Lock()
	f.calls++
	f.lastUser, f.lastPass = username, password
	block, user, err := f.block, f.user, f.err
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(user))
	for k, v := range user {
		out[k] = v
	}
	return out, nil
}

func (f *fakeAPI) Register(ctx context.Context, email, username, password string) (map[string]any, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) Ping(ctx context.Context) error { return nil }

func (f *fakeAPI) Close() error { return nil }

type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (n *fakeNavigator) Push(_ context.Context, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
	return n.err
}

func (n *fakeNavigator) Paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.paths...)
}

// failingStorage fails every call after wrapping a working storage.
type failingStorage struct {
	webstorage.Storage
	err error
}

func (f failingStorage) GetItem(context.Context, string) (string, bool, error) {
	return "", false, f.err
}

func (f failingStorage) SetItem(context.Context, string, string) error { return f.err }

func (f failingStorage) RemoveItem(context.Context, string) error { return f.err }
