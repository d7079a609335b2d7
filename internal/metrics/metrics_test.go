package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/shocker-link/internal/domain/shock"
)

// TestMetrics_NilSafe ensures a nil receiver is a no-op.
func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics

	require.NotPanics(t, func() {
		m.ObserveTrigger(shock.Primary, TriggerQueued)
		m.ObserveQueued(shock.NewCommand(10, time.Second))
		m.ObserveCommand(CommandSent)
		m.ObserveSendAttempt()
		m.SetConnected(true)
		m.SetQueueDepth(3)
		m.ObserveReconnect(nil)
	})
	require.Nil(t, m.Registry())
}

// TestMetrics_Counters checks label wiring of the counters and gauges.
func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()

	m.ObserveTrigger(shock.Secondary, TriggerCooldown)
	m.ObserveTrigger(shock.Secondary, TriggerCooldown)
	m.ObserveCommand(CommandFailed)
	m.ObserveSendAttempt()
	m.SetConnected(true)
	m.SetQueueDepth(4)

	require.InDelta(t, 2, testutil.ToFloat64(m.triggers.WithLabelValues("secondary", TriggerCooldown)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.commands.WithLabelValues(CommandFailed)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.sendAttempts), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.connected), 0)
	require.InDelta(t, 4, testutil.ToFloat64(m.queueDepth), 0)
}

// TestMetrics_Handler serves the text exposition format.
func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveCommand(CommandSent)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `shocker_link_commands_total{outcome="sent"} 1`)
}
