// Package daemon owns the lifetime of the state core process: the single
// instance lock, the volatile session, the preference store, and the status
// aggregate the CLI shows.
package daemon
