// Package httpapi exposes the user endpoints the dashboard talks to as a
// JSON API mounted under /api/v1.
//
//	GET  /api/v1/                     hello
//	POST /api/v1/users/authenticate   credentials -> user + token (throttled)
//	POST /api/v1/users/               register
//	GET  /api/v1/users/?skip=&limit=  list
//	GET  /api/v1/users/{id}           fetch one
//	POST /api/v1/login/test-token     bearer token -> owner
//
// Errors are JSON objects of the form {"detail": "..."}.
package httpapi
