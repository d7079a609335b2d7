package openshock

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/logger"
)

const (
	// DefaultBaudRate is the firmware console speed.
	DefaultBaudRate = 115200
	// DefaultModel is the shocker protocol model name.
	DefaultModel = "caixianlin"
	// DefaultShockerID is the transmitter id paired with the collar.
	DefaultShockerID = 41838
	// DefaultHandshakeTimeout bounds the wait for the probe answer.
	DefaultHandshakeTimeout = time.Second
	// DefaultReconnectDelay is the pause between two failed passes.
	DefaultReconnectDelay = 3 * time.Second
	// DefaultPasses is how many times the candidate list is walked.
	DefaultPasses = 3

	handshakeProbe     = "domain\n"
	handshakeMarker    = "openshock"
	handshakeReadLimit = 50
)

var (
	// ErrUnavailable means no candidate port answered the handshake.
	ErrUnavailable = errors.New("no responding serial device")
	// ErrNotConnected is returned by Send without an open port.
	ErrNotConnected = errors.New("serial link not connected")
	// errHandshake means the port answered without the firmware marker.
	errHandshake = errors.New("handshake response without firmware marker")
)

// Options configures a Link. Zero values take the package defaults.
type Options struct {
	// PortName pins a single port; empty enables autodetection.
	PortName         string
	BaudRate         int
	Model            string
	ShockerID        int
	HandshakeTimeout time.Duration
	ReconnectDelay   time.Duration
	Passes           int
	// Open and List replace the real serial implementation, mainly in tests.
	Open OpenFunc
	List ListFunc
}

// Link owns the serial connection to the transmitter.
// Connect and Send are meant to be driven by a single worker; the mutex only
// guards the port against a concurrent Disconnect or Connected call.
type Link struct {
	opts Options

	mu   sync.Mutex
	port Port
	name string
}

// NewLink creates a disconnected Link.
func NewLink(opts Options) *Link {
	if opts.BaudRate <= 0 {
		opts.BaudRate = DefaultBaudRate
	}

	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	if opts.ShockerID == 0 {
		opts.ShockerID = DefaultShockerID
	}

	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = DefaultHandshakeTimeout
	}

	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = DefaultReconnectDelay
	}

	if opts.Passes <= 0 {
		opts.Passes = DefaultPasses
	}

	if opts.Open == nil {
		opts.Open = OpenSerial
	}

	if opts.List == nil {
		opts.List = ListSerial
	}

	return &Link{opts: opts}
}

// Connected reports whether a port is open.
func (l *Link) Connected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.port != nil
}

// PortName returns the name of the open port, or "" when disconnected.
func (l *Link) PortName() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.name
}

// Connect walks the candidate ports up to Passes times, pausing
// ReconnectDelay between failed passes, and keeps the first port that passes
// the handshake. It returns ErrUnavailable when every pass fails.
func (l *Link) Connect(ctx context.Context) error {
	if l.Connected() {
		return nil
	}

	for pass := 1; pass <= l.opts.Passes; pass++ {
		candidates, err := l.candidates()
		if err != nil {
			logger.WarnKV(ctx, "Unable to enumerate serial ports", "error", err)
		}

		logger.DebugKV(ctx, "Probing serial ports", "candidates", candidates, "pass", pass)

		for _, name := range candidates {
			if err = ctx.Err(); err != nil {
				return err
			}

			port, err := l.probe(name)
			if err != nil {
				logger.WarnKV(ctx, "Serial candidate rejected", "port", name, "error", err)

				continue
			}

			l.mu.Lock()
			l.port, l.name = port, name
			l.mu.Unlock()

			logger.InfoKV(ctx, "Connected to serial device", "port", name)

			return nil
		}

		logger.WarnKV(ctx, "Serial reconnection pass failed", "pass", pass, "passes", l.opts.Passes)

		if pass < l.opts.Passes {
			if err = sleep(ctx, l.opts.ReconnectDelay); err != nil {
				return err
			}
		}
	}

	return ErrUnavailable
}

// Send writes cmd and flushes it to the device.
func (l *Link) Send(cmd shock.Command) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.port == nil {
		return ErrNotConnected
	}

	line := Encode(l.opts.Model, l.opts.ShockerID, cmd)

	n, err := l.port.Write(line)
	if err != nil {
		return fmt.Errorf("write %s: %w", l.name, err)
	}

	if n < len(line) {
		return fmt.Errorf("write %s: %w", l.name, io.ErrShortWrite)
	}

	if err = l.port.Drain(); err != nil {
		return fmt.Errorf("flush %s: %w", l.name, err)
	}

	return nil
}

// Disconnect closes the port. It is a no-op when already disconnected.
func (l *Link) Disconnect() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.port == nil {
		return nil
	}

	err := l.port.Close()
	l.port, l.name = nil, ""

	if err != nil {
		return fmt.Errorf("close serial port: %w", err)
	}

	return nil
}

func (l *Link) candidates() ([]string, error) {
	if name := strings.TrimSpace(l.opts.PortName); name != "" {
		return []string{name}, nil
	}

	return l.opts.List()
}

// probe opens name and runs the handshake. The port is closed on any failure.
func (l *Link) probe(name string) (Port, error) {
	port, err := l.opts.Open(name, l.opts.BaudRate)
	if err != nil {
		return nil, err
	}

	if err = handshake(port, l.opts.HandshakeTimeout); err != nil {
		_ = port.Close()

		return nil, err
	}

	return port, nil
}

// handshake sends the probe and reads until the marker shows up, the read
// limit is reached or the port stays silent for the timeout.
func handshake(port Port, timeout time.Duration) error {
	if err := port.SetReadTimeout(timeout); err != nil {
		return fmt.Errorf("set read timeout: %w", err)
	}

	if _, err := port.Write([]byte(handshakeProbe)); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}

	var (
		response = make([]byte, 0, handshakeReadLimit)
		chunk    = make([]byte, handshakeReadLimit)
		deadline = time.Now().Add(timeout)
	)

	for len(response) < handshakeReadLimit && time.Now().Before(deadline) {
		n, err := port.Read(chunk[:handshakeReadLimit-len(response)])
		response = append(response, chunk[:n]...)

		if bytes.Contains(response, []byte(handshakeMarker)) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read probe response: %w", err)
		}

		// A zero-byte read is the serial read timeout expiring.
		if n == 0 {
			break
		}
	}

	return errHandshake
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
