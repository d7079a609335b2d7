//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/shocker-link/internal/config"
	pb "github.com/oshokin/shocker-link/internal/pb/v1"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestDial_Options applies the timeout and actor options.
func TestDial_Options(t *testing.T) {
	t.Parallel()

	actor := &pb.Actor{Hostname: "desk", Username: "oleg"}

	c, err := Dial(context.Background(), "127.0.0.1:1", WithCallTimeout(time.Second), WithActor(actor))
	require.NoError(t, err)

	defer func() { _ = c.Close() }()

	require.Equal(t, time.Second, c.callTimeout)
	require.Same(t, actor, c.actor)

	d, err := Dial(context.Background(), "127.0.0.1:1", WithCallTimeout(-time.Second))
	require.NoError(t, err)

	defer func() { _ = d.Close() }()

	require.Equal(t, config.DefaultTimeout, d.callTimeout)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_CloseNil is safe on a nil client.
func TestClient_CloseNil(t *testing.T) {
	t.Parallel()

	var c *Client
	require.NoError(t, c.Close())
}
