// Command scriptdesk is the CLI for the scriptdesk daemon. It talks JSON-RPC
// over the daemon's Unix socket and renders tasks, the loaded script, view
// state, and preferences.
package main
