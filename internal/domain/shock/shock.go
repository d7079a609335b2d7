package shock

import (
	"fmt"
	"time"
)

// Parameter identifies which configured trigger parameter fired.
type Parameter int

const (
	// Primary samples the full intensity distribution.
	Primary Parameter = iota
	// Secondary samples only the upper half of the distribution.
	Secondary
)

// String implements fmt.Stringer.
func (p Parameter) String() string {
	switch p {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("parameter(%d)", int(p))
	}
}

// ParseParameter converts "primary"/"secondary" (or "1"/"2") to a Parameter.
func ParseParameter(s string) (Parameter, bool) {
	switch s {
	case "primary", "1", "":
		return Primary, true
	case "secondary", "2":
		return Secondary, true
	default:
		return Primary, false
	}
}

// Trigger is an inbound parameter update.
type Trigger struct {
	Parameter Parameter
	// Value is the raw parameter value. Only a value equal to one is actionable.
	Value any
}

// Actionable reports whether the value equals one. Booleans count as 0/1.
func (t Trigger) Actionable() bool {
	switch v := t.Value.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int32:
		return v == 1
	case int64:
		return v == 1
	case float32:
		return v == 1
	case float64:
		return v == 1
	default:
		return false
	}
}

// Command is one actuation request. It is immutable once created.
type Command struct {
	intensity int
	duration  time.Duration
}

// NewCommand builds a Command, clamping intensity to [0,100] and the duration to at least 1ms.
func NewCommand(intensity int, duration time.Duration) Command {
	return Command{
		intensity: max(0, min(intensity, 100)),
		duration:  max(duration, time.Millisecond),
	}
}

// Intensity returns the intensity percentage.
func (c Command) Intensity() int {
	return c.intensity
}

// Duration returns how long the actuation lasts.
func (c Command) Duration() time.Duration {
	return c.duration
}

// DurationMs returns the duration in whole milliseconds.
func (c Command) DurationMs() int64 {
	return c.duration.Milliseconds()
}

// String renders the command the way the status line shows it.
func (c Command) String() string {
	return fmt.Sprintf("%d%% | %.1fs", c.intensity, c.duration.Seconds())
}
