// Package api exposes the state core as transport-friendly operations.
//
// The Service wraps a session and the preference store, translating between
// wire DTOs and the internal task and script types. Both the IPC server and
// any in-process consumer go through it, so validation and conversion happen
// in exactly one place.
package api
