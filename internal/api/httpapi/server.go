package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/oshokin/shocker-link/internal/logger"
	pb "github.com/oshokin/shocker-link/internal/pb/v1"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// stateJSON renders /state with snake_case names and zero values included.
//
//nolint:gochecknoglobals // Immutable marshal options.
var stateJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// StateFunc returns the live state.
type StateFunc func() *pb.StateResponse

// Options lists what the router exposes. Nil handlers disable their route.
type Options struct {
	Metrics http.Handler
	State   StateFunc
}

// NewHandler builds the router.
func NewHandler(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	if opts.State != nil {
		r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
			data, err := stateJSON.Marshal(opts.State())
			if err != nil {
				logger.WarnKV(r.Context(), "Encode state", "error", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)

				return
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(data)
		})
	}

	return r
}

// Serve listens on addr and serves handler until ctx is done.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	return ServeListener(ctx, lis, handler)
}

// ServeListener serves handler on lis until ctx is done, then shuts down gracefully.
func ServeListener(ctx context.Context, lis net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	logger.InfoKV(ctx, "HTTP server listening", "address", lis.Addr().String())

	done := make(chan struct{})

	go func() {
		defer close(done)

		<-ctx.Done()

		//nolint:contextcheck // The parent context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WarnKV(ctx, "HTTP shutdown", "error", err)
		}
	}()

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	<-done
	logger.Info(ctx, "HTTP server stopped")

	return nil
}
