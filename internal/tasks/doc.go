// Package tasks tracks externally-executed generation jobs and drives their
// lifecycle.
//
// The Registry is a keyed, in-memory collection of Task records with a bounded
// status machine: pending -> running -> completed|failed, where completed and
// failed are terminal. Progress is constrained to [0,100] and may not decrease
// while a task is running. All mutations are synchronous and atomic; reads
// return copies so callers never observe a partially-merged record.
//
// Task records are deliberately volatile. They describe in-flight work and are
// lost on restart; anything that must survive a reload lives in the prefs
// store, not here.
package tasks
