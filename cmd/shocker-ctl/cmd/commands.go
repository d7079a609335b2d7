package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	domaincurve "github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/service/ctl"
)

// newCommands builds the shocker-ctl subcommands.
//
//nolint:funlen // One literal per subcommand.
func newCommands() []*cobra.Command {
	var steps int

	curve := &cobra.Command{
		Use:   "curve [primary|secondary]",
		Short: "Print the sampled intensity distribution.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parameter := "primary"
			if len(args) > 0 {
				parameter = args[0]
			}

			return runAction(cmd, ctl.ShowCurve(parameter, steps))
		},
	}
	curve.Flags().IntVarP(&steps, "steps", "n", 0,
		fmt.Sprintf("sampling resolution, at most %d (0 uses the daemon default of %d)",
			domaincurve.MaxSteps, domaincurve.DefaultSteps))

	return []*cobra.Command{
		{
			Use:   "state",
			Short: "Print the live curve, bounds and toggles.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAction(cmd, ctl.ShowState())
			},
		},
		curve,
		{
			Use:   "edit <intensity,weight>",
			Short: "Replace the point nearest to intensity; weight is a percentage.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, ctl.EditPoint(args[0]))
			},
		},
		{
			Use:   "drag <index> <intensity> <weight>",
			Short: "Move point index (0-2) to intensity and weight (0-1).",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse index: %w", err)
				}

				intensity, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("parse intensity: %w", err)
				}

				weight, err := strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("parse weight: %w", err)
				}

				return runAction(cmd, ctl.DragPoint(index, intensity, weight))
			},
		},
		{
			Use:   "durations <min> <max>",
			Short: "Set the duration bounds, for example 400ms 1.7s.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				lo, err := time.ParseDuration(args[0])
				if err != nil {
					return fmt.Errorf("parse min duration: %w", err)
				}

				hi, err := time.ParseDuration(args[1])
				if err != nil {
					return fmt.Errorf("parse max duration: %w", err)
				}

				return runAction(cmd, ctl.SetDurations(lo, hi))
			},
		},
		{
			Use:   "view <min> <max>",
			Short: "Set the visible intensity range.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				lo, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse view min: %w", err)
				}

				hi, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("parse view max: %w", err)
				}

				return runAction(cmd, ctl.SetView(lo, hi))
			},
		},
		{
			Use:   "undo",
			Short: "Restore the previous curve snapshot.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAction(cmd, ctl.Undo())
			},
		},
		{
			Use:   "redo",
			Short: "Reapply the last undone snapshot.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAction(cmd, ctl.Redo())
			},
		},
		{
			Use:       "cooldown <on|off>",
			Short:     "Switch the trigger cooldown.",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				enabled, err := parseSwitch(args[0])
				if err != nil {
					return err
				}

				return runAction(cmd, ctl.SetCooldown(enabled))
			},
		},
		{
			Use:       "persist <on|off>",
			Short:     "Switch saving of the curve file; on reloads the saved state.",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				enabled, err := parseSwitch(args[0])
				if err != nil {
					return err
				}

				return runAction(cmd, ctl.SetPersistence(enabled))
			},
		},
		{
			Use:   "trigger [primary|secondary]",
			Short: "Fire a test trigger through the cooldown and the dispatcher.",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				parameter := "primary"
				if len(args) > 0 {
					parameter = args[0]
				}

				return runAction(cmd, ctl.Trigger(parameter))
			},
		},
	}
}

// parseSwitch accepts on/off and the strconv boolean spellings.
func parseSwitch(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}

	return v, nil
}
