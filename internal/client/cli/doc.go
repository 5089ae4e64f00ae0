// Package cli provides the interactive Mantis dashboard client.
//
// It wires configuration, local storage, the backend client, the router
// and the stores, then runs a REPL that stands in for the browser: every
// navigation renders the matching layout and page to the terminal.
//
// Typical flow: restore a remembered session, navigate to the landing
// page, start the connectivity watcher and execute user commands until
// exit. See App.Run and runREPL for details.
package cli
