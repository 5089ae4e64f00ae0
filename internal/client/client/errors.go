package client

import "errors"

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("already exists")
	ErrMalformedResponse = errors.New("malformed response")
)
