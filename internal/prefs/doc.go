// Package prefs persists user preferences in a small SQLite database.
//
// Preferences are the only state that survives a daemon restart. Task records
// and loaded scripts are always rebuilt from scratch, so everything outside
// this package stays in memory.
package prefs
