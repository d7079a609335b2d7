// Package control implements the gRPC transport of the control API.
//
// It adapts domain types to control messages and calls into the live
// session, the cooldown limiter and the trigger handler.
package control
