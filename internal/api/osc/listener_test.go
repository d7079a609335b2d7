package osc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	goosc "github.com/hypebeast/go-osc/osc"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/service/trigger"
)

// recordingHandler stores every trigger it receives.
type recordingHandler struct {
	mu       sync.Mutex
	triggers []shock.Trigger
}

func (h *recordingHandler) Handle(_ context.Context, trig shock.Trigger) trigger.Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.triggers = append(h.triggers, trig)

	return trigger.Result{}
}

func (h *recordingHandler) snapshot() []shock.Trigger {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]shock.Trigger(nil), h.triggers...)
}

// TestParameterAddress accepts bare names and full addresses.
func TestParameterAddress(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/avatar/parameters/Shock", ParameterAddress("Shock"))
	require.Equal(t, "/avatar/parameters/Shock", ParameterAddress("/avatar/parameters/Shock"))
}

// TestListen_RejectsDuplicateParameters refuses two kinds on one address.
func TestListen_RejectsDuplicateParameters(t *testing.T) {
	t.Parallel()

	_, err := Listen(context.Background(), "127.0.0.1:0",
		Parameters{shock.Primary: "Shock", shock.Secondary: "Shock"}, &recordingHandler{})
	require.ErrorIs(t, err, errDuplicateParameter)
}

// TestListener_RoutesParameters delivers configured addresses and ignores others.
func TestListener_RoutesParameters(t *testing.T) {
	t.Parallel()

	handler := &recordingHandler{}

	listener, err := Listen(context.Background(), "127.0.0.1:0",
		Parameters{shock.Primary: "Shock", shock.Secondary: "SlapShock"}, handler)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- listener.Serve(ctx) }()

	udp, ok := listener.Addr().(*net.UDPAddr)
	require.True(t, ok)

	client := goosc.NewClient("127.0.0.1", udp.Port)
	require.NoError(t, client.Send(goosc.NewMessage("/avatar/parameters/Other", int32(1))))
	require.NoError(t, client.Send(goosc.NewMessage("/avatar/parameters/Shock", true)))
	require.NoError(t, client.Send(goosc.NewMessage("/avatar/parameters/SlapShock", float32(1))))

	require.Eventually(t, func() bool { return len(handler.snapshot()) == 2 }, 2*time.Second, 10*time.Millisecond)

	byParameter := map[shock.Parameter]any{}
	for _, trig := range handler.snapshot() {
		byParameter[trig.Parameter] = trig.Value
	}

	require.Equal(t, true, byParameter[shock.Primary])
	require.InDelta(t, 1, byParameter[shock.Secondary], 0)

	cancel()
	require.NoError(t, <-done)
}
