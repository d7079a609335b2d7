// Package dispatcher serializes actuation commands onto the serial transport.
//
// A single worker owns the transport: it reconnects on demand, writes each
// command with a bounded number of retries and drops commands it cannot
// deliver. Callers only ever enqueue, which never blocks.
package dispatcher
