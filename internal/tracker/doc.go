// Package tracker holds the task list and the transient selection state of a
// session, and derives the filtered view and aggregate counts from them.
//
// State is a value: every mutation returns a new State and leaves the
// receiver untouched, so earlier snapshots stay valid. Operations that change
// the task collection also report whether they did, which is the caller's cue
// to persist the collection.
package tracker
