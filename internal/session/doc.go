// Package session owns the live editable state of a running link.
//
// A Session guards the curve, duration and view bounds with a read-write
// lock so trigger handling reads a consistent copy while edits are applied.
// Every forward edit records an undo snapshot and is persisted when
// persistence is on.
package session
