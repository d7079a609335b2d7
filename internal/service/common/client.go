//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/shocker-link/internal/config"
	pb "github.com/oshokin/shocker-link/internal/pb/v1"
)

// Client wraps the control API stub with call timeouts and the caller identity.
type Client struct {
	// conn is the underlying gRPC connection to the daemon.
	conn *grpc.ClientConn
	// api is the control service stub.
	api pb.ControlClient
	// actor is attached to every request for the audit log.
	actor *pb.Actor

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor sets the identity sent with every request.
func WithActor(actor *pb.Actor) Option {
	return func(c *Client) {
		c.actor = actor
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial creates a client for the control API at address.
// The control API is meant for localhost, so transport credentials are insecure.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial control API: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewControlClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// State retrieves the live state.
func (c *Client) State(ctx context.Context) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.GetState(callCtx, &pb.GetStateRequest{Actor: c.actor})
}

// Distribution retrieves the sampled distribution for parameter.
func (c *Client) Distribution(ctx context.Context, parameter string, steps int) (*pb.DistributionResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.GetDistribution(callCtx, &pb.GetDistributionRequest{
		Actor:     c.actor,
		Steps:     int32(min(steps, math.MaxInt32)), //nolint:gosec // Clamped to int32.
		Parameter: parameter,
	})
}

// EditPoint applies a free-text "intensity,weight" edit.
func (c *Client) EditPoint(ctx context.Context, text string) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.EditPoint(callCtx, &pb.EditPointRequest{Actor: c.actor, Text: text})
}

// DragPoint moves the point at index.
func (c *Client) DragPoint(ctx context.Context, index int, intensity, weight float64) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.DragPoint(callCtx, &pb.DragPointRequest{
		Actor:     c.actor,
		Index:     int32(index), //nolint:gosec // Curves have three points.
		Intensity: intensity,
		Weight:    weight,
	})
}

// SetDurations replaces the duration bounds.
func (c *Client) SetDurations(ctx context.Context, lo, hi time.Duration) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.SetDurations(callCtx, &pb.SetDurationsRequest{
		Actor:         c.actor,
		MinDurationMs: lo.Milliseconds(),
		MaxDurationMs: hi.Milliseconds(),
	})
}

// SetView replaces the view bounds.
func (c *Client) SetView(ctx context.Context, lo, hi int) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.SetView(callCtx, &pb.SetViewRequest{
		Actor:   c.actor,
		ViewMin: int32(lo), //nolint:gosec // View bounds are percentages.
		ViewMax: int32(hi), //nolint:gosec // View bounds are percentages.
	})
}

// Undo restores the previous snapshot.
func (c *Client) Undo(ctx context.Context) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.Undo(callCtx, &pb.HistoryRequest{Actor: c.actor})
}

// Redo reapplies the last undone snapshot.
func (c *Client) Redo(ctx context.Context) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.Redo(callCtx, &pb.HistoryRequest{Actor: c.actor})
}

// SetCooldown switches the trigger cooldown.
func (c *Client) SetCooldown(ctx context.Context, enabled bool) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.SetCooldown(callCtx, &pb.ToggleRequest{Actor: c.actor, Enabled: enabled})
}

// SetPersistence switches saving of the curve state.
func (c *Client) SetPersistence(ctx context.Context, enabled bool) (*pb.StateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.SetPersistence(callCtx, &pb.ToggleRequest{Actor: c.actor, Enabled: enabled})
}

// Trigger fires a test trigger for parameter.
func (c *Client) Trigger(ctx context.Context, parameter string) (*pb.TriggerResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	return c.api.Trigger(callCtx, &pb.TriggerRequest{Actor: c.actor, Parameter: parameter})
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
