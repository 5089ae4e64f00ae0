package router

import "context"

// AuthState is the part of the auth store the guard needs.
type AuthState interface {
	IsAuthenticated() bool
	SetReturnURL(path string)
}

// RequireAuth sends anonymous users away from protected routes to
// loginPath, remembering where they were heading.
func RequireAuth(auth AuthState, loginPath string) Guard {
	return func(_ context.Context, to Location) (string, error) {
		if to.Access != AccessProtected || auth.IsAuthenticated() {
			return "", nil
		}
		auth.SetReturnURL(to.Path)
		return loginPath, nil
	}
}
