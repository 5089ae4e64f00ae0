// Package webstorage provides the two key/value storage areas the dashboard
// client persists state into.
//
//   - Local storage (area "local") survives client restarts. The auth store
//     keeps the remembered session under key "user" here.
//   - Session storage (area "session:<id>") is bound to the terminal session
//     that launched the client. Areas of other sessions that have been idle
//     longer than the configured max age are purged when a session area is
//     opened, which approximates "cleared when the browsing session ends".
//
// Both areas live in one SQLite table (see the client migrations) and are
// served by SQLiteStorage. MemoryStorage is a process-local implementation
// used in tests and as a fallback when no database is configured.
package webstorage
