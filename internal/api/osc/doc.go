// Package osc receives avatar parameter updates over OSC and forwards the
// configured trigger parameters to the trigger handler.
package osc
