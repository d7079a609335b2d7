package osc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	goosc "github.com/hypebeast/go-osc/osc"

	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/logger"
	"github.com/oshokin/shocker-link/internal/service/trigger"
)

// ParameterPrefix is the OSC address prefix of avatar parameters.
const ParameterPrefix = "/avatar/parameters/"

// errDuplicateParameter is returned when both trigger parameters share a name.
var errDuplicateParameter = errors.New("trigger parameters must differ")

// Handler processes one trigger update.
type Handler interface {
	Handle(ctx context.Context, trig shock.Trigger) trigger.Result
}

// Parameters maps trigger kinds to avatar parameter names.
type Parameters map[shock.Parameter]string

// ParameterAddress returns the OSC address of an avatar parameter.
func ParameterAddress(name string) string {
	return ParameterPrefix + strings.TrimPrefix(name, ParameterPrefix)
}

// Listener serves OSC packets from a UDP socket.
type Listener struct {
	conn   net.PacketConn
	server *goosc.Server
}

// Listen binds addr and routes the configured parameter addresses to handler.
// Updates on any other address are ignored.
func Listen(ctx context.Context, addr string, params Parameters, handler Handler) (*Listener, error) {
	ctx = logger.WithName(ctx, "osc")

	dispatcher := goosc.NewStandardDispatcher()
	seen := make(map[string]shock.Parameter, len(params))

	for parameter, name := range params {
		address := ParameterAddress(name)
		if other, ok := seen[address]; ok {
			return nil, fmt.Errorf("%w: %s and %s both use %s", errDuplicateParameter, other, parameter, address)
		}

		seen[address] = parameter

		err := dispatcher.AddMsgHandler(address, func(msg *goosc.Message) {
			if len(msg.Arguments) == 0 {
				return
			}

			handler.Handle(ctx, shock.Trigger{Parameter: parameter, Value: msg.Arguments[0]})
		})
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", address, err)
		}
	}

	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	logger.InfoKV(ctx, "OSC listener ready", "address", conn.LocalAddr().String(), "parameters", seen)

	return &Listener{
		conn:   conn,
		server: &goosc.Server{Addr: conn.LocalAddr().String(), Dispatcher: dispatcher},
	}, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.conn.LocalAddr()
}

// Serve dispatches packets until ctx is done, then closes the socket.
func (l *Listener) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- l.server.Serve(l.conn)
	}()

	select {
	case <-ctx.Done():
		_ = l.conn.Close()
		<-errCh

		return nil
	case err := <-errCh:
		_ = l.conn.Close()

		return fmt.Errorf("serve OSC: %w", err)
	}
}

// Close releases the socket of a listener that will not be served.
func (l *Listener) Close() error {
	return l.conn.Close()
}
