package trigger

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/oshokin/shocker-link/internal/cooldown"
	"github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/logger"
	"github.com/oshokin/shocker-link/internal/metrics"
	"github.com/oshokin/shocker-link/internal/status"
)

// Admitter decides whether a trigger may proceed.
type Admitter interface {
	Admit(now time.Time) cooldown.Decision
}

// StateSource returns a consistent copy of the editable state.
type StateSource interface {
	Current() editor.State
}

// Queue accepts commands without blocking.
type Queue interface {
	Enqueue(cmd shock.Command) error
}

// StatusSink shows a short status line to the user.
type StatusSink interface {
	Post(text string) bool
}

// Outcome describes what happened to one trigger.
type Outcome int

const (
	// Ignored means the value was not actionable.
	Ignored Outcome = iota
	// OnCooldown means the limiter rejected the trigger.
	OnCooldown
	// Queued means a command was handed to the dispatcher.
	Queued
	// Dropped means the dispatcher queue refused the command.
	Dropped
)

// String implements fmt.Stringer with the metric label of the outcome.
func (o Outcome) String() string {
	switch o {
	case Ignored:
		return metrics.TriggerIgnored
	case OnCooldown:
		return metrics.TriggerCooldown
	case Queued:
		return metrics.TriggerQueued
	case Dropped:
		return metrics.TriggerDropped
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result reports the handling of one trigger.
type Result struct {
	Outcome  Outcome
	Decision cooldown.Decision
	// Command is set for Queued and Dropped.
	Command shock.Command
}

// Options configures a Handler.
type Options struct {
	// Steps is the curve sampling resolution; zero means curve.DefaultSteps.
	Steps int
	// Now replaces the wall clock, mainly in tests.
	Now func() time.Time
	// Source replaces the random generator, mainly in tests.
	Source  curve.Source
	Status  StatusSink
	Metrics *metrics.Metrics
}

// Handler is invoked once per trigger update. It is safe for concurrent use
// as long as its collaborators are.
type Handler struct {
	limiter Admitter
	state   StateSource
	queue   Queue
	opts    Options
}

// NewHandler creates a Handler.
func NewHandler(limiter Admitter, state StateSource, queue Queue, opts Options) *Handler {
	if opts.Steps <= 0 {
		opts.Steps = curve.DefaultSteps
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Source == nil {
		opts.Source = globalSource{}
	}

	return &Handler{
		limiter: limiter,
		state:   state,
		queue:   queue,
		opts:    opts,
	}
}

// Handle runs the admission check, samples the curve and queues the command.
func (h *Handler) Handle(ctx context.Context, trig shock.Trigger) Result {
	result := h.handle(ctx, trig)
	h.opts.Metrics.ObserveTrigger(trig.Parameter, result.Outcome.String())

	return result
}

// Fire handles an actionable trigger for parameter, bypassing value checks.
func (h *Handler) Fire(ctx context.Context, parameter shock.Parameter) Result {
	return h.Handle(ctx, shock.Trigger{Parameter: parameter, Value: true})
}

func (h *Handler) handle(ctx context.Context, trig shock.Trigger) Result {
	if !trig.Actionable() {
		return Result{Outcome: Ignored}
	}

	decision := h.limiter.Admit(h.opts.Now())
	if !decision.Admitted {
		logger.DebugKV(ctx, "Trigger on cooldown",
			"parameter", trig.Parameter,
			"remaining", decision.Remaining,
			"cooldown", decision.Cooldown,
		)
		h.post(fmt.Sprintf("On cooldown: %.1fs", decision.RemainingSeconds()))

		return Result{Outcome: OnCooldown, Decision: decision}
	}

	current := h.state.Current()

	dist := curve.Sample(current.Points, h.opts.Steps)
	if trig.Parameter == shock.Secondary {
		dist = dist.UpperHalf()
	}

	cmd := shock.NewCommand(
		dist.Pick(h.opts.Source),
		curve.DrawDuration(h.opts.Source, current.MinDuration, current.MaxDuration),
	)

	if err := h.queue.Enqueue(cmd); err != nil {
		logger.ErrorKV(ctx, "Command not queued", "command", cmd.String(), "error", err)

		return Result{Outcome: Dropped, Decision: decision, Command: cmd}
	}

	h.opts.Metrics.ObserveQueued(cmd)
	logger.InfoKV(ctx, "Command queued",
		"parameter", trig.Parameter,
		"command", cmd.String(),
		"recent", decision.Recent,
	)
	h.post(status.ActuationMarker + " " + cmd.String())

	return Result{Outcome: Queued, Decision: decision, Command: cmd}
}

func (h *Handler) post(text string) {
	if h.opts.Status != nil {
		h.opts.Status.Post(text)
	}
}

// globalSource draws from the goroutine-safe top-level generator.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64() //nolint:gosec // Not security sensitive.
}
