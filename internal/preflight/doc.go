// Package preflight provides readiness checks for the filesystem paths the
// daemon depends on.
//
// The daemon runs RunAll once at startup and refuses to serve when a check
// fails. The CLI "scriptdesk status" command reuses the same checks to show
// why a daemon might not come up.
package preflight
