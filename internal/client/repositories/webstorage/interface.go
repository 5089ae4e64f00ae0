package webstorage

import "context"

// Storage is a string key/value area with browser Web Storage semantics:
// missing keys are not errors, removing a missing key is a no-op.
type Storage interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}
