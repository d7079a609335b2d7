package dispatcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/shocker-link/internal/domain/shock"
)

var (
	errTestWrite   = errors.New("test write error")
	errTestConnect = errors.New("test connect error")
)

// fakeTransport scripts connect and send results.
type fakeTransport struct {
	mu          sync.Mutex
	connected   bool
	connectErr  error
	sendErrs    []error
	connects    int
	disconnects int
	sent        []shock.Command
	attempts    []time.Time
}

func (f *fakeTransport) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.connected
}

func (f *fakeTransport) Connect(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.connects++
	if f.connectErr != nil {
		return f.connectErr
	}

	f.connected = true

	return nil
}

func (f *fakeTransport) Send(cmd shock.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts = append(f.attempts, time.Now())

	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]

		if err != nil {
			return err
		}
	}

	f.sent = append(f.sent, cmd)

	return nil
}

func (f *fakeTransport) Disconnect() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.disconnects++
	f.connected = false

	return nil
}

func (f *fakeTransport) snapshot() fakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()

	return fakeTransport{
		connected:   f.connected,
		connects:    f.connects,
		disconnects: f.disconnects,
		sent:        append([]shock.Command(nil), f.sent...),
		attempts:    append([]time.Time(nil), f.attempts...),
	}
}

// failures collects OnFailure notifications.
type failures struct {
	mu   sync.Mutex
	errs []error
}

func (f *failures) record(_ shock.Command, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errs = append(f.errs, err)
}

func (f *failures) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.errs)
}

// start runs d in the background and returns a stop function waiting for exit.
func start(t *testing.T, d *Dispatcher) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- d.Run(ctx) }()

	return func() {
		cancel()
		require.NoError(t, <-done)
	}
}

// TestDispatcher_EnqueueNeverBlocks ensures a full queue rejects instead of waiting.
func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	t.Parallel()

	d := New(&fakeTransport{}, Options{QueueSize: 2})

	require.NoError(t, d.Enqueue(shock.NewCommand(10, time.Second)))
	require.NoError(t, d.Enqueue(shock.NewCommand(20, time.Second)))
	require.ErrorIs(t, d.Enqueue(shock.NewCommand(30, time.Second)), ErrQueueFull)
	require.Equal(t, 2, d.Pending())
}

// TestDispatcher_ConnectsOnDemand ensures the first command opens the transport.
func TestDispatcher_ConnectsOnDemand(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		transport := &fakeTransport{}
		d := New(transport, Options{})
		stop := start(t, d)

		cmd := shock.NewCommand(55, 1200*time.Millisecond)
		require.NoError(t, d.Enqueue(cmd))
		synctest.Wait()

		got := transport.snapshot()
		require.Equal(t, 1, got.connects)
		require.Equal(t, []shock.Command{cmd}, got.sent)

		stop()
		require.Equal(t, 1, transport.snapshot().disconnects)
	})
}

// TestDispatcher_RetriesWithBackoff ensures failed writes are retried in place.
func TestDispatcher_RetriesWithBackoff(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		transport := &fakeTransport{connected: true, sendErrs: []error{errTestWrite, errTestWrite, nil}}
		fails := &failures{}
		d := New(transport, Options{OnFailure: fails.record})
		stop := start(t, d)

		require.NoError(t, d.Enqueue(shock.NewCommand(40, time.Second)))
		time.Sleep(2 * DefaultRetryBackoff)
		synctest.Wait()

		got := transport.snapshot()
		require.Len(t, got.attempts, 3)
		require.Len(t, got.sent, 1)
		require.Equal(t, DefaultRetryBackoff, got.attempts[1].Sub(got.attempts[0]))
		require.Equal(t, DefaultRetryBackoff, got.attempts[2].Sub(got.attempts[1]))
		require.Zero(t, got.disconnects)
		require.Zero(t, fails.len())

		stop()
	})
}

// TestDispatcher_GivesUpAfterRetries ensures a command is dropped after three
// failed writes and the next command reconnects.
func TestDispatcher_GivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		transport := &fakeTransport{
			connected: true,
			sendErrs:  []error{errTestWrite, errTestWrite, errTestWrite},
		}
		fails := &failures{}
		d := New(transport, Options{OnFailure: fails.record})
		stop := start(t, d)

		require.NoError(t, d.Enqueue(shock.NewCommand(40, time.Second)))
		time.Sleep(time.Minute)
		synctest.Wait()

		got := transport.snapshot()
		require.Len(t, got.attempts, DefaultRetries)
		require.Empty(t, got.sent)
		require.False(t, got.connected)
		require.Equal(t, 1, fails.len())

		next := shock.NewCommand(60, time.Second)
		require.NoError(t, d.Enqueue(next))
		synctest.Wait()

		got = transport.snapshot()
		require.Equal(t, 1, got.connects)
		require.Equal(t, []shock.Command{next}, got.sent)

		stop()
	})
}

// TestDispatcher_DropsWhenReconnectFails ensures an unreachable device is never fatal.
func TestDispatcher_DropsWhenReconnectFails(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		transport := &fakeTransport{connectErr: errTestConnect}
		fails := &failures{}
		d := New(transport, Options{ConnectOnStart: true, OnFailure: fails.record})
		stop := start(t, d)
		synctest.Wait()

		require.Equal(t, 1, transport.snapshot().connects)

		require.NoError(t, d.Enqueue(shock.NewCommand(40, time.Second)))
		require.NoError(t, d.Enqueue(shock.NewCommand(41, time.Second)))
		synctest.Wait()

		got := transport.snapshot()
		require.Equal(t, 3, got.connects)
		require.Empty(t, got.attempts)
		require.Equal(t, 2, fails.len())
		require.Zero(t, d.Pending())

		stop()
	})
}
