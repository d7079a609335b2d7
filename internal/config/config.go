package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by shocker-link and shocker-ctl.
type Config struct {
	// OSC configures the trigger listener and the chatbox target.
	OSC OSC `yaml:"osc"`
	// Serial configures the transmitter link.
	Serial Serial `yaml:"serial"`
	// Cooldown tunes the dynamic trigger cooldown.
	Cooldown Cooldown `yaml:"cooldown"`
	// Chatbox tunes status messages.
	Chatbox Chatbox `yaml:"chatbox"`
	// Dispatch tunes the command queue.
	Dispatch Dispatch `yaml:"dispatch"`
	// CurveFile is the JSON file holding the editable curve state.
	CurveFile string `yaml:"curve_file"`
	// Persist saves curve edits to CurveFile.
	Persist bool `yaml:"persist"`
	// ControlAddress is the gRPC control API address.
	ControlAddress string `yaml:"control_addr"`
	// MetricsAddress serves /metrics and /healthz over HTTP; empty disables it.
	MetricsAddress string `yaml:"metrics_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Timeout bounds control API calls made by shocker-ctl.
	Timeout time.Duration `yaml:"timeout"`
}

// OSC holds the OSC endpoints and parameter names.
type OSC struct {
	ListenAddress      string `yaml:"listen_addr"`
	ChatboxAddress     string `yaml:"chatbox_addr"`
	PrimaryParameter   string `yaml:"primary_parameter"`
	SecondaryParameter string `yaml:"secondary_parameter"`
}

// Serial holds the transmitter link settings.
type Serial struct {
	// Port pins the serial port; empty enables autodetection.
	Port             string        `yaml:"port"`
	BaudRate         int           `yaml:"baud_rate"`
	ShockerModel     string        `yaml:"shocker_model"`
	ShockerID        int           `yaml:"shocker_id"`
	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	ReconnectDelay   time.Duration `yaml:"reconnect_delay"`
	// LogLevel overrides log_level for the serial link; empty keeps the shared level.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Cooldown mirrors the limiter tuning.
type Cooldown struct {
	Enabled bool          `yaml:"enabled"`
	Base    time.Duration `yaml:"base"`
	Factor  time.Duration `yaml:"factor"`
	Max     time.Duration `yaml:"max"`
	Window  time.Duration `yaml:"window"`
}

// Chatbox tunes status messages.
type Chatbox struct {
	Enabled         bool          `yaml:"enabled"`
	MessageCooldown time.Duration `yaml:"message_cooldown"`
	ClearAfter      time.Duration `yaml:"clear_after"`
}

// Dispatch tunes the command queue and write retries.
type Dispatch struct {
	QueueSize    int           `yaml:"queue_size"`
	Retries      int           `yaml:"retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "shocker-link-settings.yaml"
	// DefaultCurveFilename is the default filename for the curve state JSON.
	DefaultCurveFilename = "curve_config.json"
	// DefaultControlAddress is where the control API listens by default.
	DefaultControlAddress = "127.0.0.1:50061"
	// DefaultPrimaryParameter is the avatar parameter of the full curve.
	DefaultPrimaryParameter = "Shock"
	// DefaultSecondaryParameter is the avatar parameter of the upper half.
	DefaultSecondaryParameter = "SlapShock"
	// DefaultTimeout is the default duration for control API calls.
	DefaultTimeout = 5 * time.Second
	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidLogLevel is returned for an unknown log_level.
	errInvalidLogLevel = errors.New("unknown log level")
	// errInvalidCooldown is returned when max cooldown is below the base.
	errInvalidCooldown = errors.New("cooldown max must not be below base")
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		OSC: OSC{
			ListenAddress:      "127.0.0.1:9001",
			ChatboxAddress:     "127.0.0.1:9000",
			PrimaryParameter:   DefaultPrimaryParameter,
			SecondaryParameter: DefaultSecondaryParameter,
		},
		Serial: Serial{
			BaudRate:         115200,
			ShockerModel:     "caixianlin",
			ShockerID:        41838,
			HandshakeTimeout: time.Second,
			ReconnectDelay:   3 * time.Second,
		},
		Cooldown: Cooldown{
			Enabled: true,
			Base:    2 * time.Second,
			Factor:  400 * time.Millisecond,
			Max:     6 * time.Second,
			Window:  30 * time.Second,
		},
		Chatbox: Chatbox{
			Enabled:         true,
			MessageCooldown: 1200 * time.Millisecond,
			ClearAfter:      4 * time.Second,
		},
		Dispatch: Dispatch{
			QueueSize:    32,
			Retries:      3,
			RetryBackoff: 500 * time.Millisecond,
		},
		CurveFile:      DefaultCurveFilename,
		Persist:        true,
		ControlAddress: DefaultControlAddress,
		LogLevel:       "info",
		Timeout:        DefaultTimeout,
	}
}

// Load reads configuration from the provided path over the defaults and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is Load that returns the defaults when the file does not exist.
// found reports whether the file was read.
func LoadOrDefault(path string) (cfg *Config, found bool, err error) {
	cfg, err = Load(path)

	switch {
	case err == nil:
		return cfg, true, nil
	case errors.Is(err, os.ErrNotExist):
		return Default(), false, nil
	default:
		return nil, false, err
	}
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills zero values with defaults and checks addresses and tuning.
//
//nolint:cyclop,funlen // Flat list of independent checks.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	defaults := Default()

	settings.OSC.PrimaryParameter = orDefault(settings.OSC.PrimaryParameter, defaults.OSC.PrimaryParameter)
	// An empty secondary name would match the bare parameter prefix.
	settings.OSC.SecondaryParameter = orDefault(settings.OSC.SecondaryParameter, defaults.OSC.SecondaryParameter)
	settings.OSC.ListenAddress = orDefault(settings.OSC.ListenAddress, defaults.OSC.ListenAddress)
	settings.OSC.ChatboxAddress = orDefault(settings.OSC.ChatboxAddress, defaults.OSC.ChatboxAddress)
	settings.ControlAddress = orDefault(settings.ControlAddress, defaults.ControlAddress)
	settings.CurveFile = orDefault(settings.CurveFile, defaults.CurveFile)
	settings.LogLevel = orDefault(settings.LogLevel, defaults.LogLevel)

	positive(&settings.Serial.BaudRate, defaults.Serial.BaudRate)
	positive(&settings.Serial.HandshakeTimeout, defaults.Serial.HandshakeTimeout)
	positive(&settings.Serial.ReconnectDelay, defaults.Serial.ReconnectDelay)
	positive(&settings.Cooldown.Base, defaults.Cooldown.Base)
	positive(&settings.Cooldown.Max, defaults.Cooldown.Max)
	positive(&settings.Cooldown.Window, defaults.Cooldown.Window)
	positive(&settings.Chatbox.MessageCooldown, defaults.Chatbox.MessageCooldown)
	positive(&settings.Chatbox.ClearAfter, defaults.Chatbox.ClearAfter)
	positive(&settings.Dispatch.QueueSize, defaults.Dispatch.QueueSize)
	positive(&settings.Dispatch.Retries, defaults.Dispatch.Retries)
	positive(&settings.Dispatch.RetryBackoff, defaults.Dispatch.RetryBackoff)
	positive(&settings.Timeout, defaults.Timeout)

	settings.Serial.ShockerModel = orDefault(settings.Serial.ShockerModel, defaults.Serial.ShockerModel)
	positive(&settings.Serial.ShockerID, defaults.Serial.ShockerID)

	if settings.Cooldown.Factor < 0 {
		settings.Cooldown.Factor = 0
	}

	if settings.Cooldown.Max < settings.Cooldown.Base {
		return fmt.Errorf("%w: base %s, max %s", errInvalidCooldown, settings.Cooldown.Base, settings.Cooldown.Max)
	}

	if _, err := net.ResolveUDPAddr("udp", settings.OSC.ListenAddress); err != nil {
		return fmt.Errorf("invalid OSC listen address: %w", err)
	}

	if _, err := net.ResolveUDPAddr("udp", settings.OSC.ChatboxAddress); err != nil {
		return fmt.Errorf("invalid chatbox address: %w", err)
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ControlAddress); err != nil {
		return fmt.Errorf("invalid control socket: %w", err)
	}

	if settings.MetricsAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", settings.MetricsAddress); err != nil {
			return fmt.Errorf("invalid metrics socket: %w", err)
		}
	}

	if !knownLevel(settings.LogLevel) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	settings.Serial.LogLevel = strings.TrimSpace(settings.Serial.LogLevel)
	if settings.Serial.LogLevel != "" && !knownLevel(settings.Serial.LogLevel) {
		return fmt.Errorf("serial: %w: %q", errInvalidLogLevel, settings.Serial.LogLevel)
	}

	return nil
}

func knownLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return strings.TrimSpace(value)
}

func positive[T int | time.Duration](value *T, fallback T) {
	if *value <= 0 {
		*value = fallback
	}
}
