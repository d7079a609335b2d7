package status

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hypebeast/go-osc/osc"

	"github.com/oshokin/shocker-link/internal/logger"
)

const (
	// ChatboxAddress is the OSC address of the chatbox input.
	ChatboxAddress = "/chatbox/input"
	// ActuationMarker tags messages that always bypass the message cooldown.
	ActuationMarker = "⚡"
	// DefaultCooldown is the minimum gap between two ordinary messages.
	DefaultCooldown = 1200 * time.Millisecond
	// DefaultClearAfter is the delay before a sent message is cleared.
	DefaultClearAfter = 4 * time.Second
)

// Sender delivers an OSC packet. *osc.Client satisfies it.
type Sender interface {
	Send(packet osc.Packet) error
}

// Options configures a Chatbox. Zero durations take the package defaults.
type Options struct {
	Cooldown   time.Duration
	ClearAfter time.Duration
	Disabled   bool
}

// Chatbox rate-limits status messages and clears them after a delay.
// Its lock is independent from any trigger admission lock.
type Chatbox struct {
	ctx    context.Context //nolint:containedctx // Used only for logging from the clear timer.
	sender Sender
	opts   Options

	mu         sync.Mutex
	enabled    bool
	lastSent   time.Time
	clearTimer *time.Timer
	generation uint64
}

// Dial creates an OSC client for a "host:port" chatbox address.
func Dial(addr string) (*osc.Client, error) {
	host, portText, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("parse chatbox address %q: %w", addr, err)
	}

	port, err := strconv.Atoi(portText)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("parse chatbox port %q: invalid port", portText)
	}

	return osc.NewClient(host, port), nil
}

// NewChatbox creates a Chatbox sending through sender.
func NewChatbox(ctx context.Context, sender Sender, opts Options) *Chatbox {
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}

	if opts.ClearAfter <= 0 {
		opts.ClearAfter = DefaultClearAfter
	}

	return &Chatbox{
		ctx:     logger.WithName(ctx, "chatbox"),
		sender:  sender,
		opts:    opts,
		enabled: !opts.Disabled,
	}
}

// Post sends text unless the chatbox is disabled or an ordinary message was
// sent less than the cooldown ago. A sent message schedules an empty one
// after ClearAfter, replacing any clear still pending. It reports whether
// the message went out.
func (c *Chatbox) Post(text string) bool {
	return c.post(text, true)
}

// SetEnabled turns the chatbox on or off. Disabling cancels a pending clear.
func (c *Chatbox) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = enabled
	if !enabled {
		c.stopClearLocked()
	}
}

// Enabled reports whether messages are sent.
func (c *Chatbox) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.enabled
}

// Close cancels a pending clear.
func (c *Chatbox) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopClearLocked()
}

func (c *Chatbox) post(text string, clearAfter bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.postLocked(text, clearAfter)
}

func (c *Chatbox) postLocked(text string, clearAfter bool) bool {
	if !c.enabled {
		return false
	}

	now := time.Now()

	if !strings.Contains(text, ActuationMarker) && !c.lastSent.IsZero() && now.Sub(c.lastSent) < c.opts.Cooldown {
		logger.DebugKV(c.ctx, "Status message suppressed", "text", text)

		return false
	}

	c.lastSent = now

	if err := c.sender.Send(osc.NewMessage(ChatboxAddress, text, true, false)); err != nil {
		logger.ErrorKV(c.ctx, "Failed to send status message", "error", err)

		return false
	}

	if clearAfter {
		c.scheduleClearLocked()
	}

	logger.DebugKV(c.ctx, "Status message sent", "text", text)

	return true
}

func (c *Chatbox) scheduleClearLocked() {
	c.stopClearLocked()

	generation := c.generation

	c.clearTimer = time.AfterFunc(c.opts.ClearAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.generation == generation {
			c.postLocked("", false)
		}
	})
}

// stopClearLocked cancels the pending clear; a callback already running
// sees a newer generation and does nothing.
func (c *Chatbox) stopClearLocked() {
	c.generation++

	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}
