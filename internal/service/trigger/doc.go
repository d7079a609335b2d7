// Package trigger turns inbound trigger updates into queued actuation commands.
package trigger
