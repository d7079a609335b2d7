// Package httpapi serves the read-only HTTP surface of the daemon:
// liveness, Prometheus metrics and a JSON view of the live state.
package httpapi
