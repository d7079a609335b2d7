package dispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/logger"
	"github.com/oshokin/shocker-link/internal/metrics"
)

const (
	// DefaultQueueSize bounds the number of pending commands.
	DefaultQueueSize = 32
	// DefaultRetries is the number of write attempts per command.
	DefaultRetries = 3
	// DefaultRetryBackoff is the pause between two write attempts.
	DefaultRetryBackoff = 500 * time.Millisecond
)

// ErrQueueFull is returned by Enqueue when the pending queue is at capacity.
var ErrQueueFull = errors.New("command queue is full")

// Transport is the device link driven by the worker.
type Transport interface {
	Connected() bool
	Connect(ctx context.Context) error
	Send(cmd shock.Command) error
	Disconnect() error
}

// FailureFunc is notified when a command is dropped.
type FailureFunc func(cmd shock.Command, err error)

// Options configures a Dispatcher. Zero values take the package defaults.
type Options struct {
	QueueSize    int
	Retries      int
	RetryBackoff time.Duration
	// ConnectOnStart makes Run open the transport before the first command.
	ConnectOnStart bool
	Metrics        *metrics.Metrics
	OnFailure      FailureFunc
}

// Dispatcher queues commands for a single transport worker.
type Dispatcher struct {
	transport Transport
	queue     chan shock.Command
	opts      Options
}

// New creates a Dispatcher over transport.
func New(transport Transport, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	if opts.Retries <= 0 {
		opts.Retries = DefaultRetries
	}

	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = DefaultRetryBackoff
	}

	return &Dispatcher{
		transport: transport,
		queue:     make(chan shock.Command, opts.QueueSize),
		opts:      opts,
	}
}

// Enqueue hands cmd to the worker without blocking.
func (d *Dispatcher) Enqueue(cmd shock.Command) error {
	select {
	case d.queue <- cmd:
		d.opts.Metrics.SetQueueDepth(len(d.queue))

		return nil
	default:
		d.opts.Metrics.ObserveCommand(metrics.CommandDropped)

		return ErrQueueFull
	}
}

// Pending returns the number of queued commands.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Run consumes the queue until ctx is done, then closes the transport.
// Queued commands that were not picked up are discarded.
func (d *Dispatcher) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "dispatcher")

	defer func() {
		if err := d.transport.Disconnect(); err != nil {
			logger.WarnKV(ctx, "Failed to close transport", "error", err)
		}

		d.opts.Metrics.SetConnected(false)
	}()

	if d.opts.ConnectOnStart {
		if err := d.connect(ctx); err != nil && ctx.Err() == nil {
			logger.WarnKV(ctx, "Device unavailable at startup", "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Dispatcher stopped")

			return nil
		case cmd := <-d.queue:
			d.opts.Metrics.SetQueueDepth(len(d.queue))
			d.dispatch(ctx, cmd)
		}
	}
}

// dispatch delivers one command, reconnecting first if needed.
func (d *Dispatcher) dispatch(ctx context.Context, cmd shock.Command) {
	if !d.transport.Connected() {
		if err := d.connect(ctx); err != nil {
			d.drop(ctx, cmd, metrics.CommandDropped, err)

			return
		}
	}

	var err error

	for attempt := 1; attempt <= d.opts.Retries; attempt++ {
		d.opts.Metrics.ObserveSendAttempt()

		if err = d.transport.Send(cmd); err == nil {
			d.opts.Metrics.ObserveCommand(metrics.CommandSent)
			logger.InfoKV(ctx, "Command sent", "command", cmd.String(), "attempt", attempt)

			return
		}

		logger.WarnKV(ctx, "Command write failed", "attempt", attempt, "retries", d.opts.Retries, "error", err)

		if attempt < d.opts.Retries {
			if sleepErr := sleep(ctx, d.opts.RetryBackoff); sleepErr != nil {
				d.drop(ctx, cmd, metrics.CommandFailed, sleepErr)

				return
			}
		}
	}

	// The port is presumed dead; the next command reconnects.
	if discErr := d.transport.Disconnect(); discErr != nil {
		logger.WarnKV(ctx, "Failed to close transport", "error", discErr)
	}

	d.opts.Metrics.SetConnected(false)
	d.drop(ctx, cmd, metrics.CommandFailed, err)
}

func (d *Dispatcher) connect(ctx context.Context) error {
	err := d.transport.Connect(ctx)
	d.opts.Metrics.ObserveReconnect(err)

	return err
}

func (d *Dispatcher) drop(ctx context.Context, cmd shock.Command, outcome string, err error) {
	d.opts.Metrics.ObserveCommand(outcome)
	logger.ErrorKV(ctx, "Command dropped", "command", cmd.String(), "reason", outcome, "error", err)

	if d.opts.OnFailure != nil {
		d.opts.OnFailure(cmd, err)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
