// Package history implements bounded linear undo/redo over editor snapshots.
package history
