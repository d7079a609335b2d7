package link

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/shocker-link/internal/config"
	"github.com/oshokin/shocker-link/internal/logger"
)

// TestLoadSettings_Overrides applies command line overrides on top of the file.
func TestLoadSettings_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultConfigFilename)

	cfg := config.Default()
	cfg.CurveFile = "from-file.json"
	require.NoError(t, config.Save(path, cfg))

	got, err := loadSettings(context.Background(), &Options{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, "from-file.json", got.CurveFile)

	got, err = loadSettings(context.Background(), &Options{ConfigPath: path, CurveFile: "override.json"})
	require.NoError(t, err)
	require.Equal(t, "override.json", got.CurveFile)
}

// TestLoadSettings_MissingFileUsesDefaults starts with defaults when there is no settings file.
func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	got, err := loadSettings(context.Background(), &Options{ConfigPath: filepath.Join(t.TempDir(), "none.yaml")})
	require.NoError(t, err)
	require.Equal(t, config.Default().ControlAddress, got.ControlAddress)
}

// TestLoadSettings_Rejects reports unreadable files and invalid overrides.
func TestLoadSettings_Rejects(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("osc: ["), 0o600))

	_, err := loadSettings(context.Background(), &Options{ConfigPath: path})
	require.Error(t, err)

	_, err = loadSettings(context.Background(), &Options{Config: config.Default(), LogLevel: "chatty"})
	require.Error(t, err)
}

// TestDeviceLogger pins the serial logger level independently of the shared one.
func TestDeviceLogger(t *testing.T) {
	t.Parallel()

	ctx := logger.ToContext(context.Background(), logger.New(zapcore.ErrorLevel))

	require.False(t, deviceLogger(ctx, "").Desugar().Core().Enabled(zapcore.DebugLevel))
	require.True(t, deviceLogger(ctx, "debug").Desugar().Core().Enabled(zapcore.DebugLevel))
}

// TestRun_FailsOnBusyPort stops at startup when the control address is taken.
func TestRun_FailsOnBusyPort(t *testing.T) {
	t.Parallel()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = busy.Close() }()

	cfg := config.Default()
	cfg.OSC.ListenAddress = "127.0.0.1:0"
	cfg.ControlAddress = busy.Addr().String()
	cfg.CurveFile = filepath.Join(t.TempDir(), config.DefaultCurveFilename)

	err = Run(context.Background(), &Options{Config: cfg, AllowMultiple: true})
	require.ErrorContains(t, err, "listen on")
}
