package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/shocker-link/internal/config"
	"github.com/oshokin/shocker-link/internal/logger"
	"github.com/oshokin/shocker-link/internal/service/common"
)

// Options configures how shocker-ctl reaches the daemon.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// Address overrides control_addr from the settings when specified.
	Address string
	// Out receives the command output.
	Out io.Writer
}

// Action performs one control call and prints its result to out.
type Action func(ctx context.Context, client *common.Client, out io.Writer) error

// Run connects to the daemon and performs action.
func Run(ctx context.Context, opts *Options, action Action) error {
	ctx = logger.WithName(ctx, "shocker-ctl")

	// A missing settings file is fine for a client on the same machine.
	cfg, _, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	address := cfg.ControlAddress
	if opts.Address != "" {
		address = opts.Address
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		logger.DebugKV(ctx, "Cannot detect actor", "error", err)
	}

	client, err := common.Dial(ctx, address, common.WithCallTimeout(cfg.Timeout), common.WithActor(actor))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Calling control API", "address", address)

	return action(ctx, client, opts.Out)
}
