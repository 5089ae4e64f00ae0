// Package router is the dashboard's navigation registry.
//
// Route tables are validated once in New. Push resolves a path, runs the
// guards installed with BeforeEach and notifies OnNavigate listeners.
// Views are built lazily on first use and memoized per route.
package router
