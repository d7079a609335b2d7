// Package curve persists the editable curve state as JSON on disk.
//
// The FileRepository reads and writes the state file and can watch it for
// edits made by other programs.
package curve
