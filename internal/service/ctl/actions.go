package ctl

import (
	"context"
	"fmt"
	"io"
	"time"

	pb "github.com/oshokin/shocker-link/internal/pb/v1"
	"github.com/oshokin/shocker-link/internal/service/common"
)

// stateCall is a control call answering with the live state.
type stateCall func(ctx context.Context, client *common.Client) (*pb.StateResponse, error)

// printState wraps a state call into an Action printing the answer.
// note is printed instead of the state when the call changed nothing.
func printState(call stateCall, note string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := call(ctx, client)
		if err != nil {
			return err
		}

		if !resp.Changed && note != "" {
			_, err = fmt.Fprintln(out, note)

			return err
		}

		return WriteState(out, resp)
	}
}

// ShowState prints the live state.
func ShowState() Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.State(ctx)
	}, "")
}

// ShowCurve prints the sampled distribution of parameter.
func ShowCurve(parameter string, steps int) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Distribution(ctx, parameter, steps)
		if err != nil {
			return err
		}

		return WriteDistribution(out, resp)
	}
}

// EditPoint replaces the point nearest to the "intensity,weight" text.
func EditPoint(text string) Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.EditPoint(ctx, text)
	}, "")
}

// DragPoint moves the point at index.
func DragPoint(index int, intensity, weight float64) Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.DragPoint(ctx, index, intensity, weight)
	}, "")
}

// SetDurations replaces the duration bounds.
func SetDurations(lo, hi time.Duration) Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.SetDurations(ctx, lo, hi)
	}, "")
}

// SetView replaces the view bounds.
func SetView(lo, hi int) Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.SetView(ctx, lo, hi)
	}, "")
}

// Undo restores the previous snapshot.
func Undo() Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.Undo(ctx)
	}, "Nothing to undo")
}

// Redo reapplies the last undone snapshot.
func Redo() Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.Redo(ctx)
	}, "Nothing to redo")
}

// SetCooldown switches the trigger cooldown.
func SetCooldown(enabled bool) Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.SetCooldown(ctx, enabled)
	}, "")
}

// SetPersistence switches saving of the curve state.
func SetPersistence(enabled bool) Action {
	return printState(func(ctx context.Context, c *common.Client) (*pb.StateResponse, error) {
		return c.SetPersistence(ctx, enabled)
	}, "")
}

// Trigger fires a test trigger for parameter.
func Trigger(parameter string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		resp, err := client.Trigger(ctx, parameter)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, FormatTrigger(resp))

		return err
	}
}
