// Package instance keeps a single shocker-link running per machine.
//
// Two daemons would fight over the OSC listen port and the serial port,
// so the daemon refuses to start when another process with the same
// executable name is alive.
package instance
