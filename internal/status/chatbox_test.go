package status

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/hypebeast/go-osc/osc"
	"github.com/stretchr/testify/require"
)

// sent is one recorded chatbox message.
type sent struct {
	text string
	at   time.Time
}

// fakeSender records the chatbox messages it receives.
type fakeSender struct {
	mu       sync.Mutex
	messages []sent
	err      error
}

func (f *fakeSender) Send(packet osc.Packet) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	msg, ok := packet.(*osc.Message)
	if !ok {
		return errors.New("unexpected packet type")
	}

	text, _ := msg.Arguments[0].(string)
	f.messages = append(f.messages, sent{text: text, at: time.Now()})

	return nil
}

func (f *fakeSender) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, m.text)
	}

	return out
}

// TestChatbox_MessageShape checks the address and argument layout.
func TestChatbox_MessageShape(t *testing.T) {
	t.Parallel()

	var captured *osc.Message

	c := NewChatbox(context.Background(), senderFunc(func(p osc.Packet) error {
		captured, _ = p.(*osc.Message)

		return nil
	}), Options{})
	defer c.Close()

	require.True(t, c.Post("hello"))
	require.NotNil(t, captured)
	require.Equal(t, ChatboxAddress, captured.Address)
	require.Equal(t, []any{"hello", true, false}, captured.Arguments)
}

// TestChatbox_CooldownAndBypass ensures ordinary messages are throttled while
// actuation messages always pass.
func TestChatbox_CooldownAndBypass(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sender := &fakeSender{}
		c := NewChatbox(context.Background(), sender, Options{})
		defer c.Close()

		require.True(t, c.Post("On cooldown: 1.5s"))
		require.False(t, c.Post("On cooldown: 1.4s"))
		require.True(t, c.Post(ActuationMarker+" 50% | 1.0s"))

		time.Sleep(DefaultCooldown)
		require.True(t, c.Post("On cooldown: 0.2s"))

		require.Equal(t, []string{"On cooldown: 1.5s", ActuationMarker + " 50% | 1.0s", "On cooldown: 0.2s"}, sender.texts())
	})
}

// TestChatbox_AutoClear ensures a message is cleared after the delay and a newer
// send supersedes the pending clear.
func TestChatbox_AutoClear(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sender := &fakeSender{}
		c := NewChatbox(context.Background(), sender, Options{})
		defer c.Close()

		start := time.Now()

		require.True(t, c.Post("first"))
		time.Sleep(3 * time.Second)
		require.True(t, c.Post("second"))

		time.Sleep(DefaultClearAfter + time.Second)
		synctest.Wait()

		require.Equal(t, []string{"first", "second", ""}, sender.texts())

		sender.mu.Lock()
		clearedAt := sender.messages[2].at
		sender.mu.Unlock()

		require.Equal(t, 3*time.Second+DefaultClearAfter, clearedAt.Sub(start))
	})
}

// TestChatbox_Disabled ensures nothing is sent and pending clears are cancelled.
func TestChatbox_Disabled(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		sender := &fakeSender{}
		c := NewChatbox(context.Background(), sender, Options{})

		require.True(t, c.Post("hello"))
		c.SetEnabled(false)
		require.False(t, c.Enabled())
		require.False(t, c.Post(ActuationMarker+" 10% | 0.5s"))

		time.Sleep(2 * DefaultClearAfter)
		synctest.Wait()

		require.Equal(t, []string{"hello"}, sender.texts())

		off := NewChatbox(context.Background(), sender, Options{Disabled: true})
		require.False(t, off.Post("ignored"))
	})
}

// TestChatbox_CloseAtClearDeadline ensures nothing is sent once Close returns,
// even when Close lands on the instant the clear timer fires.
func TestChatbox_CloseAtClearDeadline(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		for range 50 {
			sender := &fakeSender{}
			c := NewChatbox(context.Background(), sender, Options{})

			require.True(t, c.Post("hello"))

			time.Sleep(DefaultClearAfter)
			c.Close()

			sentBeforeClose := len(sender.texts())

			time.Sleep(DefaultClearAfter)
			synctest.Wait()

			require.Len(t, sender.texts(), sentBeforeClose)
		}
	})
}

// TestChatbox_SendError reports a failed send and schedules no clear.
func TestChatbox_SendError(t *testing.T) {
	t.Parallel()

	c := NewChatbox(context.Background(), &fakeSender{err: errors.New("network down")}, Options{})
	defer c.Close()

	require.False(t, c.Post("hello"))
}

// TestDial validates chatbox addresses.
func TestDial(t *testing.T) {
	t.Parallel()

	client, err := Dial("127.0.0.1:9000")
	require.NoError(t, err)
	require.Equal(t, 9000, client.Port())

	_, err = Dial("127.0.0.1")
	require.Error(t, err)

	_, err = Dial("127.0.0.1:http")
	require.Error(t, err)
}

// senderFunc adapts a function to Sender.
type senderFunc func(osc.Packet) error

func (f senderFunc) Send(p osc.Packet) error { return f(p) }
