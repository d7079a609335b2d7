// Package editor defines the editable curve state (control points, duration
// bounds and view bounds) together with the clamping rules applied by edits.
//
// State is a plain value: copying it copies everything, so snapshots taken
// for undo/redo never alias the live state.
package editor
