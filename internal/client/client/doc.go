// Package client contains the client-side building blocks that talk to the
// outside world.
//
// # Overview
//
//  1. A transport-agnostic API contract (Client): Authenticate, Register,
//     Ping, Close.
//  2. APIClient, the concrete implementation: JSON over HTTP for the users
//     endpoints (POST {baseURL}/users/authenticate, POST {baseURL}/users/)
//     and the standard gRPC health service for liveness checks.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring the
//     SQLite database behind the web storage areas and applying the embedded
//     goose migrations.
//
// # Error Handling
//
// Transport failures and 5xx answers map to ErrUnavailable, rejected
// credentials (400/401/403) to ErrUnauthorized, 409 to ErrConflict. Match
// them with errors.Is; the backend's "detail" message is kept in the text.
//
// # Contexts
//
// Every call honors ctx cancellation and deadlines; no call retries.
package client
