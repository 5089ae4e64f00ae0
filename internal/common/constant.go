// Package common contains shared constants, sentinel errors and small helpers
// used by both the dashboard client and its development backend.
package common

const (
	// UsersPrefix is the backend route prefix for user endpoints.
	UsersPrefix = "/users"

	// AuthenticatePath is appended to UsersPrefix for credential checks.
	AuthenticatePath = "/authenticate"

	// TokenField is the key under which the backend puts the access token
	// inside the user payload it returns from authenticate.
	TokenField = "token"
)
