package link

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/oshokin/shocker-link/internal/api/grpc/control"
	"github.com/oshokin/shocker-link/internal/api/httpapi"
	"github.com/oshokin/shocker-link/internal/api/osc"
	"github.com/oshokin/shocker-link/internal/config"
	"github.com/oshokin/shocker-link/internal/cooldown"
	"github.com/oshokin/shocker-link/internal/device/openshock"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/logger"
	"github.com/oshokin/shocker-link/internal/metrics"
	pb "github.com/oshokin/shocker-link/internal/pb/v1"
	repository "github.com/oshokin/shocker-link/internal/repository/curve"
	"github.com/oshokin/shocker-link/internal/service/dispatcher"
	"github.com/oshokin/shocker-link/internal/service/instance"
	"github.com/oshokin/shocker-link/internal/service/trigger"
	"github.com/oshokin/shocker-link/internal/session"
	"github.com/oshokin/shocker-link/internal/status"
)

// Device is the serial transport driven by the dispatcher.
type Device interface {
	dispatcher.Transport
	PortName() string
}

// Addresses are the bound listener addresses, reported once the daemon is ready.
type Addresses struct {
	OSC     net.Addr
	Control net.Addr
	// HTTP is nil when the metrics endpoint is disabled.
	HTTP net.Addr
}

// Options controls the shocker-link process.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// CurveFile overrides curve_file from the settings.
	CurveFile string
	// LogLevel overrides log_level from the settings.
	LogLevel string
	// AllowMultiple skips the single instance check.
	AllowMultiple bool

	// Config replaces the settings file entirely.
	Config *config.Config
	// Device replaces the serial link.
	Device Device
	// Chatbox replaces the OSC chatbox client.
	Chatbox status.Sender
	// Ready is called with the bound addresses before serving starts.
	Ready func(Addresses)
}

// Run starts the daemon and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "shocker-link")

	settings, err := loadSettings(ctx, opts)
	if err != nil {
		return err
	}

	if !opts.AllowMultiple {
		if err = instance.NewGuard().Check(ctx); err != nil {
			return err
		}
	}

	d, err := newDaemon(ctx, settings, opts)
	if err != nil {
		return err
	}

	return d.run(ctx)
}

// loadSettings reads the settings file and applies command line overrides.
func loadSettings(ctx context.Context, opts *Options) (*config.Config, error) {
	settings := opts.Config

	if settings == nil {
		var (
			found bool
			err   error
		)

		settings, found, err = config.LoadOrDefault(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}

		if !found {
			logger.WarnKV(ctx, "Settings file not found, using defaults", "path", opts.ConfigPath)
		}
	}

	if opts.CurveFile != "" {
		settings.CurveFile = opts.CurveFile
	}

	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	if err := config.Validate(settings); err != nil {
		return nil, fmt.Errorf("validate settings: %w", err)
	}

	level, _ := logger.ParseLogLevel(settings.LogLevel)
	logger.SetLevel(level)

	return settings, nil
}

// daemon holds the wired components of one run.
type daemon struct {
	settings *config.Config
	ready    func(Addresses)

	metrics    *metrics.Metrics
	device     Device
	deviceLog  *zap.SugaredLogger
	dispatcher *dispatcher.Dispatcher
	chatbox    *status.Chatbox
	limiter    *cooldown.Limiter
	repo       *repository.FileRepository
	session    *session.Session
	handler    *trigger.Handler
	listener   *osc.Listener
	control    *control.Server
	grpcServer *grpc.Server
	controlLis net.Listener
	httpLis    net.Listener
}

// newDaemon builds every component and binds the listeners.
//
//nolint:funlen // Linear wiring of independent components.
func newDaemon(ctx context.Context, settings *config.Config, opts *Options) (*daemon, error) {
	d := &daemon{
		settings:  settings,
		ready:     opts.Ready,
		metrics:   metrics.New(),
		device:    opts.Device,
		deviceLog: deviceLogger(ctx, settings.Serial.LogLevel),
	}

	if d.device == nil {
		d.device = openshock.NewLink(openshock.Options{
			PortName:         settings.Serial.Port,
			BaudRate:         settings.Serial.BaudRate,
			Model:            settings.Serial.ShockerModel,
			ShockerID:        settings.Serial.ShockerID,
			HandshakeTimeout: settings.Serial.HandshakeTimeout,
			ReconnectDelay:   settings.Serial.ReconnectDelay,
		})
	}

	sender := opts.Chatbox
	if sender == nil {
		client, err := status.Dial(settings.OSC.ChatboxAddress)
		if err != nil {
			return nil, err
		}

		sender = client
	}

	d.chatbox = status.NewChatbox(ctx, sender, status.Options{
		Cooldown:   settings.Chatbox.MessageCooldown,
		ClearAfter: settings.Chatbox.ClearAfter,
		Disabled:   !settings.Chatbox.Enabled,
	})

	d.dispatcher = dispatcher.New(d.device, dispatcher.Options{
		QueueSize:      settings.Dispatch.QueueSize,
		Retries:        settings.Dispatch.Retries,
		RetryBackoff:   settings.Dispatch.RetryBackoff,
		ConnectOnStart: true,
		Metrics:        d.metrics,
		OnFailure: func(cmd shock.Command, _ error) {
			d.chatbox.Post("Shock not delivered: " + cmd.String())
		},
	})

	d.limiter = cooldown.New(cooldown.Config{
		Base:     settings.Cooldown.Base,
		Factor:   settings.Cooldown.Factor,
		Max:      settings.Cooldown.Max,
		Window:   settings.Cooldown.Window,
		Disabled: !settings.Cooldown.Enabled,
	})

	d.repo = repository.NewFileRepository(settings.CurveFile)
	d.session = session.Open(logger.WithName(ctx, "session"), session.Options{
		Repository: d.repo,
		Persist:    settings.Persist,
	})

	d.handler = trigger.NewHandler(d.limiter, d.session, d.dispatcher, trigger.Options{
		Status:  d.chatbox,
		Metrics: d.metrics,
	})

	d.control = control.NewServer(d.session, d.limiter, d.handler, d.device)

	if err := d.listen(ctx); err != nil {
		d.closeListeners()
		d.close()

		return nil, err
	}

	return d, nil
}

// listen binds the OSC, control and HTTP sockets.
func (d *daemon) listen(ctx context.Context) error {
	var err error

	d.listener, err = osc.Listen(ctx, d.settings.OSC.ListenAddress, osc.Parameters{
		shock.Primary:   d.settings.OSC.PrimaryParameter,
		shock.Secondary: d.settings.OSC.SecondaryParameter,
	}, d.handler)
	if err != nil {
		return fmt.Errorf("start OSC listener: %w", err)
	}

	lc := net.ListenConfig{}

	d.controlLis, err = lc.Listen(ctx, "tcp", d.settings.ControlAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", d.settings.ControlAddress, err)
	}

	d.grpcServer = grpc.NewServer()
	pb.RegisterControlServer(d.grpcServer, d.control)

	if d.settings.MetricsAddress != "" {
		d.httpLis, err = lc.Listen(ctx, "tcp", d.settings.MetricsAddress)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", d.settings.MetricsAddress, err)
		}
	}

	return nil
}

// run serves until ctx is canceled, then saves the curve state.
func (d *daemon) run(ctx context.Context) error {
	defer d.close()

	addrs := Addresses{OSC: d.listener.Addr(), Control: d.controlLis.Addr()}
	if d.httpLis != nil {
		addrs.HTTP = d.httpLis.Addr()
	}

	logger.InfoKV(ctx, "Shocker link ready",
		"osc", addrs.OSC.String(),
		"control", addrs.Control.String(),
		"curve_file", d.repo.Path(),
		"persist", d.session.Persistent(),
	)

	if d.ready != nil {
		d.ready(addrs)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.dispatcher.Run(logger.ToContext(gctx, d.deviceLog))
	})

	g.Go(func() error {
		return d.listener.Serve(gctx)
	})

	g.Go(func() error {
		return d.serveControl(gctx)
	})

	if d.httpLis != nil {
		handler := httpapi.NewHandler(httpapi.Options{
			Metrics: d.metrics.Handler(),
			State:   d.control.Snapshot,
		})

		g.Go(func() error {
			return httpapi.ServeListener(logger.WithName(gctx, "http"), d.httpLis, handler)
		})
	}

	g.Go(func() error {
		err := d.repo.Watch(gctx, repository.DefaultDebounce, func(ctx context.Context, state editor.State) {
			d.session.ApplyExternal(ctx, state)
		})
		if err != nil {
			logger.WarnKV(gctx, "Curve hot reload disabled", "error", err)
		}

		return nil
	})

	err := g.Wait()

	//nolint:contextcheck // ctx is already canceled; the final save must still run.
	if saveErr := d.session.Save(context.WithoutCancel(ctx)); saveErr != nil {
		logger.ErrorKV(ctx, "Failed to save curve state on shutdown", "error", saveErr)
	}

	logger.Info(ctx, "Shocker link stopped")

	return err
}

// serveControl serves the control API until ctx is done.
func (d *daemon) serveControl(ctx context.Context) error {
	ctx = logger.WithName(ctx, "control")
	logger.InfoKV(ctx, "Control API listening", "address", d.controlLis.Addr().String())

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		d.grpcServer.GracefulStop()
		close(done)
	}()

	if err := d.grpcServer.Serve(d.controlLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "Control API stopped")

	return nil
}

// close stops the chatbox and its pending clear.
func (d *daemon) close() {
	if d.chatbox != nil {
		d.chatbox.Close()
	}
}

// closeListeners releases sockets bound before a failed startup.
func (d *daemon) closeListeners() {
	if d.listener != nil {
		_ = d.listener.Close()
	}

	if d.controlLis != nil {
		_ = d.controlLis.Close()
	}

	if d.httpLis != nil {
		_ = d.httpLis.Close()
	}
}

// deviceLogger returns the serial link logger, pinned to level when it is set.
func deviceLogger(ctx context.Context, level string) *zap.SugaredLogger {
	log := logger.FromContext(ctx).Named("serial")
	if level == "" {
		return log
	}

	lvl, _ := logger.ParseLogLevel(level)

	return log.WithOptions(logger.WithLevel(lvl))
}
