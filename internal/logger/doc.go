// Package logger wraps zap with:
//   - a global sugared logger using a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and a shared atomic level,
//   - leveled convenience functions (Infof, WarnKV, ErrorKV, ...).
//
// Components receive a context and log through it, so every message carries
// the name of the component and the fields of the operation that produced it.
package logger
