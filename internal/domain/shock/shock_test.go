package shock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestTriggerActionable checks which raw values count as "one".
func TestTriggerActionable(t *testing.T) {
	t.Parallel()

	actionable := []any{true, 1, int32(1), int64(1), float32(1), 1.0}
	for _, v := range actionable {
		require.True(t, Trigger{Value: v}.Actionable(), "%T(%v)", v, v)
	}

	ignored := []any{false, 0, int32(2), float32(0.5), 1.01, "1", nil}
	for _, v := range ignored {
		require.False(t, Trigger{Value: v}.Actionable(), "%T(%v)", v, v)
	}
}

// TestParseParameter verifies names and numeric aliases.
func TestParseParameter(t *testing.T) {
	t.Parallel()

	p, ok := ParseParameter("secondary")
	require.True(t, ok)
	require.Equal(t, Secondary, p)

	p, ok = ParseParameter("")
	require.True(t, ok)
	require.Equal(t, Primary, p)

	_, ok = ParseParameter("tertiary")
	require.False(t, ok)

	require.Equal(t, "secondary", Secondary.String())
	require.Equal(t, "parameter(7)", Parameter(7).String())
}

// TestNewCommand_Clamps ensures out-of-range values are clamped.
func TestNewCommand_Clamps(t *testing.T) {
	t.Parallel()

	c := NewCommand(150, 0)
	require.Equal(t, 100, c.Intensity())
	require.Equal(t, time.Millisecond, c.Duration())

	c = NewCommand(50, 1200*time.Millisecond)
	require.Equal(t, int64(1200), c.DurationMs())
	require.Equal(t, "50% | 1.2s", c.String())
}
