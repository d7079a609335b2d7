package ctl

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	pb "github.com/oshokin/shocker-link/internal/pb/v1"
)

// barWidth is the length of the bar drawn for the most likely intensity.
const barWidth = 40

// WriteState prints a state response as an aligned table.
func WriteState(out io.Writer, state *pb.StateResponse) error {
	if state == nil {
		_, err := fmt.Fprintln(out, "<nil state>")

		return err
	}

	points := make([]string, 0, len(state.Points))
	for _, p := range state.Points {
		points = append(points, fmt.Sprintf("%.2f,%.0f%%", p.Intensity, p.Weight*100))
	}

	serial := "disconnected"
	if state.Connected {
		serial = "connected " + state.SerialPort
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"points", strings.Join(points, " ")},
		{"durations", fmt.Sprintf("%s..%s", msDuration(state.MinDurationMs), msDuration(state.MaxDurationMs))},
		{"view", fmt.Sprintf("%d..%d", state.ViewMin, state.ViewMax)},
		{"history", fmt.Sprintf("undo %d, redo %d", state.UndoDepth, state.RedoDepth)},
		{"cooldown", onOff(state.Cooldown)},
		{"persist", onOff(state.Persist)},
		{"serial", serial},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteDistribution prints one line per intensity with a proportional bar.
func WriteDistribution(out io.Writer, dist *pb.DistributionResponse) error {
	peak := 0.0
	for _, w := range dist.Weights {
		peak = max(peak, w)
	}

	for i, intensity := range dist.Intensities {
		if i >= len(dist.Weights) {
			break
		}

		w := dist.Weights[i]

		bar := 0
		if peak > 0 {
			bar = int(w / peak * barWidth)
		}

		if _, err := fmt.Fprintf(out, "%4d%% %.4f %s\n", intensity, w, strings.Repeat("#", bar)); err != nil {
			return err
		}
	}

	return nil
}

// FormatTrigger renders the outcome of a test trigger.
func FormatTrigger(resp *pb.TriggerResponse) string {
	switch {
	case resp.DurationMs > 0:
		return fmt.Sprintf("%s: %d%% for %s", resp.Outcome, resp.Intensity, msDuration(resp.DurationMs))
	case resp.RemainingSeconds > 0:
		return fmt.Sprintf("%s: %.1fs left", resp.Outcome, resp.RemainingSeconds)
	default:
		return resp.Outcome
	}
}

func msDuration(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}

	return "off"
}
