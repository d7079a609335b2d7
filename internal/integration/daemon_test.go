package integration

import (
	"context"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	goosc "github.com/hypebeast/go-osc/osc"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/shocker-link/internal/config"
	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/service/link"
)

// fakeDevice is a serial transport that records delivered commands.
type fakeDevice struct {
	mu        sync.Mutex
	connected bool
	sent      chan shock.Command
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{sent: make(chan shock.Command, 16)}
}

func (d *fakeDevice) Connected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.connected
}

func (d *fakeDevice) Connect(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.connected = true

	return nil
}

func (d *fakeDevice) Send(cmd shock.Command) error {
	d.sent <- cmd

	return nil
}

func (d *fakeDevice) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.connected = false

	return nil
}

func (d *fakeDevice) PortName() string {
	return "/dev/ttyFAKE"
}

// fakeChatbox records the text of every chatbox message.
type fakeChatbox struct {
	texts chan string
}

func (c *fakeChatbox) Send(packet goosc.Packet) error {
	msg, ok := packet.(*goosc.Message)
	if ok && len(msg.Arguments) > 0 {
		if text, ok := msg.Arguments[0].(string); ok {
			c.texts <- text
		}
	}

	return nil
}

// daemon is a running shocker-link with fake hardware.
type daemon struct {
	addrs     link.Addresses
	device    *fakeDevice
	chatbox   *fakeChatbox
	curveFile string
	stop      func() error
}

// testConfig returns settings bound to loopback ephemeral ports.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.OSC.ListenAddress = "127.0.0.1:0"
	cfg.ControlAddress = "127.0.0.1:0"
	cfg.MetricsAddress = "127.0.0.1:0"
	cfg.CurveFile = filepath.Join(t.TempDir(), config.DefaultCurveFilename)

	return cfg
}

// startDaemon runs link.Run in the background and waits until it is ready.
func startDaemon(t *testing.T, cfg *config.Config) *daemon {
	t.Helper()

	d := &daemon{
		device:    newFakeDevice(),
		chatbox:   &fakeChatbox{texts: make(chan string, 64)},
		curveFile: cfg.CurveFile,
	}

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan link.Addresses, 1)
	done := make(chan error, 1)

	go func() {
		done <- link.Run(ctx, &link.Options{
			Config:        cfg,
			Device:        d.device,
			Chatbox:       d.chatbox,
			AllowMultiple: true,
			Ready:         func(addrs link.Addresses) { ready <- addrs },
		})
	}()

	select {
	case d.addrs = <-ready:
	case err := <-done:
		cancel()
		t.Fatalf("daemon exited before ready: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("daemon did not become ready")
	}

	var once sync.Once

	var stopErr error

	d.stop = func() error {
		once.Do(func() {
			cancel()
			stopErr = <-done
		})

		return stopErr
	}

	t.Cleanup(func() { _ = d.stop() })

	return d
}

// sendParameter sends one OSC avatar parameter update to the daemon.
func sendParameter(t *testing.T, addr net.Addr, name string, value any) {
	t.Helper()

	udp, ok := addr.(*net.UDPAddr)
	require.True(t, ok)

	client := goosc.NewClient(udp.IP.String(), udp.Port)
	require.NoError(t, client.Send(goosc.NewMessage("/avatar/parameters/"+name, value)))
}

// waitText returns the first chatbox text accepted by match.
func waitText(t *testing.T, texts <-chan string, match func(string) bool) string {
	t.Helper()

	timeout := time.After(3 * time.Second)

	for {
		select {
		case text := <-texts:
			if match(text) {
				return text
			}
		case <-timeout:
			t.Fatal("expected chatbox message did not arrive")

			return ""
		}
	}
}
