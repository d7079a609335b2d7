// Package link runs the shocker-link daemon.
//
// Run loads the settings and wires the OSC trigger listener, the cooldown
// limiter, the curve session, the serial dispatcher, the chatbox status
// sink, the control gRPC API and the optional HTTP metrics endpoint, then
// blocks until the context is canceled. The curve state is saved on the
// way out.
package link
