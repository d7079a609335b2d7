package cooldown

import (
	"math"
	"sync"
	"time"
)

// Defaults for Config.
const (
	DefaultBase   = 2 * time.Second
	DefaultFactor = 400 * time.Millisecond
	DefaultMax    = 6 * time.Second
	DefaultWindow = 30 * time.Second
)

// Config tunes the limiter.
type Config struct {
	// Base is the cooldown with an empty window.
	Base time.Duration
	// Factor is added per trigger still inside the window.
	Factor time.Duration
	// Max caps the dynamic cooldown.
	Max time.Duration
	// Window is how long an admitted trigger keeps counting.
	Window time.Duration
	// Disabled admits every trigger while still recording them.
	Disabled bool
}

// DefaultConfig returns the stock tuning: 2s + 0.4s per trigger, capped at 6s, 30s window.
func DefaultConfig() Config {
	return Config{
		Base:   DefaultBase,
		Factor: DefaultFactor,
		Max:    DefaultMax,
		Window: DefaultWindow,
	}
}

// Decision is the result of one admission check.
type Decision struct {
	// Admitted is true when the trigger may proceed.
	Admitted bool
	// Remaining is the time left until the cooldown expires when rejected.
	Remaining time.Duration
	// Cooldown is the dynamic cooldown that applied to this check.
	Cooldown time.Duration
	// Recent is the number of triggers inside the window before this one.
	Recent int
}

// RemainingSeconds returns Remaining in seconds rounded to 0.1s for display.
func (d Decision) RemainingSeconds() float64 {
	return math.Round(d.Remaining.Seconds()*10) / 10
}

// Limiter decides whether a trigger is admitted. It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	window  []time.Time
	last    time.Time
	hasLast bool
}

// New creates a Limiter. Zero durations in cfg take their defaults;
// a zero Factor stays zero.
func New(cfg Config) *Limiter {
	if cfg.Base <= 0 {
		cfg.Base = DefaultBase
	}

	if cfg.Max <= 0 {
		cfg.Max = DefaultMax
	}

	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}

	cfg.Factor = max(cfg.Factor, 0)

	return &Limiter{cfg: cfg}
}

// Cooldown returns the dynamic cooldown for count recent triggers:
// min(Base + Factor*count, Max).
func (c Config) Cooldown(count int) time.Duration {
	return min(c.Base+time.Duration(count)*c.Factor, c.Max)
}

// Admit runs the whole admission decision for a trigger at now as one atomic step:
// prune the window, compute the cooldown, compare with the last admitted
// trigger and, when admitted, record now.
func (l *Limiter) Admit(now time.Time) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)

	d := Decision{
		Recent:   len(l.window),
		Cooldown: l.cfg.Cooldown(len(l.window)),
	}

	if !l.cfg.Disabled && l.hasLast {
		if elapsed := now.Sub(l.last); elapsed <= d.Cooldown {
			d.Remaining = d.Cooldown - elapsed

			return d
		}
	}

	d.Admitted = true
	l.last, l.hasLast = now, true
	l.window = append(l.window, now)

	return d
}

// SetEnabled switches the cooldown on or off.
func (l *Limiter) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cfg.Disabled = !enabled
}

// Enabled reports whether the cooldown is enforced.
func (l *Limiter) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return !l.cfg.Disabled
}

// Recent returns the number of triggers inside the window at now.
func (l *Limiter) Recent(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)

	return len(l.window)
}

// prune drops timestamps older than the window. Callers hold mu.
func (l *Limiter) prune(now time.Time) {
	keep := l.window[:0]

	for _, t := range l.window {
		if now.Sub(t) <= l.cfg.Window {
			keep = append(keep, t)
		}
	}

	clear(l.window[len(keep):])
	l.window = keep
}
