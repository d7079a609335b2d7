// Package ctl implements the shocker-ctl commands.
//
// Each command dials the control API of a running shocker-link, performs a
// single call and prints the result as plain text.
package ctl
