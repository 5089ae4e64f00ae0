// Package stores holds the dashboard's state containers.
//
//   - AuthStore: the authenticated session, its durable persistence and the
//     redirects that follow login/logout.
//   - PreferenceStore: theme and locale, persisted to session storage.
//   - UIStore: the transient global loading flag.
//
// Registry builds the three once per process and hands them out by
// reference. Stores never reach for globals: storage areas, the backend
// client and the navigator are injected.
package stores
