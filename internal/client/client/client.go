package client

import "context"

// Client is the dashboard's view of the backend API.
type Client interface {
	// Authenticate checks credentials and returns the backend's user record
	// as an opaque JSON object.
	Authenticate(ctx context.Context, username, password string) (map[string]any, error)
	// Register creates an account and returns the created user record.
	Register(ctx context.Context, email, username, password string) (map[string]any, error)
	// Ping reports backend liveness.
	Ping(ctx context.Context) error
	Close() error
}
