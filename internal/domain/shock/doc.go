// Package shock contains the value types flowing through the trigger path:
// inbound trigger events and the actuation commands sent to the device.
package shock
