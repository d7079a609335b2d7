// Package metrics holds the Prometheus collectors of the link daemon.
//
// Every method is safe on a nil *Metrics, so components can run without
// instrumentation.
package metrics
