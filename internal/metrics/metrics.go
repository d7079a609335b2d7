package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oshokin/shocker-link/internal/domain/shock"
)

const namespace = "shocker_link"

// Trigger outcomes.
const (
	TriggerIgnored  = "ignored"
	TriggerCooldown = "cooldown"
	TriggerQueued   = "queued"
	TriggerDropped  = "dropped"
)

// Command outcomes.
const (
	CommandSent    = "sent"
	CommandFailed  = "failed"
	CommandDropped = "dropped"
)

// Metrics groups the daemon collectors under a private registry.
type Metrics struct {
	registry *prometheus.Registry

	triggers     *prometheus.CounterVec
	commands     *prometheus.CounterVec
	sendAttempts prometheus.Counter
	reconnects   *prometheus.CounterVec
	intensity    prometheus.Histogram
	duration     prometheus.Histogram
	connected    prometheus.Gauge
	queueDepth   prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triggers_total",
			Help:      "Inbound trigger updates by parameter and outcome.",
		}, []string{"parameter", "outcome"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Dispatched commands by outcome.",
		}, []string{"outcome"}),
		sendAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "send_attempts_total",
			Help:      "Serial write attempts, retries included.",
		}),
		reconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconnects_total",
			Help:      "Serial reconnect attempts by result.",
		}, []string{"result"}),
		intensity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_intensity_percent",
			Help:      "Intensity of queued commands.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of queued commands.",
			Buckets:   []float64{0.2, 0.5, 1, 1.5, 2, 3, 5},
		}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "serial_connected",
			Help:      "1 while the serial link is open.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Commands waiting for the dispatcher.",
		}),
	}

	m.registry.MustRegister(
		m.triggers,
		m.commands,
		m.sendAttempts,
		m.reconnects,
		m.intensity,
		m.duration,
		m.connected,
		m.queueDepth,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct // Defaults.
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	//nolint:exhaustruct // Default handler options.
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTrigger counts one trigger update.
func (m *Metrics) ObserveTrigger(parameter shock.Parameter, outcome string) {
	if m == nil {
		return
	}

	m.triggers.WithLabelValues(parameter.String(), outcome).Inc()
}

// ObserveQueued records the shape of a command accepted by the queue.
func (m *Metrics) ObserveQueued(cmd shock.Command) {
	if m == nil {
		return
	}

	m.intensity.Observe(float64(cmd.Intensity()))
	m.duration.Observe(cmd.Duration().Seconds())
}

// ObserveCommand counts a finished command.
func (m *Metrics) ObserveCommand(outcome string) {
	if m == nil {
		return
	}

	m.commands.WithLabelValues(outcome).Inc()
}

// ObserveSendAttempt counts one serial write attempt.
func (m *Metrics) ObserveSendAttempt() {
	if m == nil {
		return
	}

	m.sendAttempts.Inc()
}

// ObserveReconnect counts one reconnect attempt and mirrors the link state.
func (m *Metrics) ObserveReconnect(err error) {
	if m == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "failed"
	}

	m.reconnects.WithLabelValues(result).Inc()
	m.SetConnected(err == nil)
}

// SetConnected mirrors the serial link state.
func (m *Metrics) SetConnected(connected bool) {
	if m == nil {
		return
	}

	if connected {
		m.connected.Set(1)
	} else {
		m.connected.Set(0)
	}
}

// SetQueueDepth mirrors the number of pending commands.
func (m *Metrics) SetQueueDepth(depth int) {
	if m == nil {
		return
	}

	m.queueDepth.Set(float64(depth))
}
