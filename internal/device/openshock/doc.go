// Package openshock talks to an OpenShock-compatible RF transmitter over a
// serial port.
//
// Commands are sent as a single ASCII line, "rftransmit " followed by a JSON
// object. A port is accepted only after it answers the "domain" probe with a
// response containing the firmware marker. When no port is configured every
// serial port on the machine is tried.
package openshock
