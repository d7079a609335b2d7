// Package status publishes short status lines to the chatbox over OSC.
package status
