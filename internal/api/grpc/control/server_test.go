package control

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/oshokin/shocker-link/internal/cooldown"
	"github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/domain/shock"
	pb "github.com/oshokin/shocker-link/internal/pb/v1"
	"github.com/oshokin/shocker-link/internal/service/trigger"
	"github.com/oshokin/shocker-link/internal/session"
)

// fakeTrigger returns a canned result and records the parameter.
type fakeTrigger struct {
	result    trigger.Result
	parameter shock.Parameter
}

func (f *fakeTrigger) Fire(_ context.Context, parameter shock.Parameter) trigger.Result {
	f.parameter = parameter

	return f.result
}

// fakeLink is a connected serial link.
type fakeLink struct{}

func (fakeLink) Connected() bool  { return true }
func (fakeLink) PortName() string { return "COM4" }

func newServer(trig *fakeTrigger) *Server {
	return NewServer(
		session.New(editor.Default(), session.Options{}),
		cooldown.New(cooldown.DefaultConfig()),
		trig,
		fakeLink{},
	)
}

// TestServer_GetState converts the live state.
func TestServer_GetState(t *testing.T) {
	t.Parallel()

	resp, err := newServer(&fakeTrigger{}).GetState(context.Background(), &pb.GetStateRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Points, 3)
	require.True(t, proto.Equal(&pb.Point{Intensity: 36, Weight: 0.5}, resp.Points[0]))
	require.Equal(t, int64(400), resp.MinDurationMs)
	require.Equal(t, int64(1700), resp.MaxDurationMs)
	require.Equal(t, int32(30), resp.ViewMin)
	require.Equal(t, int32(68), resp.ViewMax)
	require.Equal(t, int32(1), resp.UndoDepth)
	require.True(t, resp.Cooldown)
	require.True(t, resp.Connected)
	require.Equal(t, "COM4", resp.SerialPort)
}

// TestServer_Snapshot matches GetState for read-only consumers.
func TestServer_Snapshot(t *testing.T) {
	t.Parallel()

	srv := newServer(&fakeTrigger{})

	resp, err := srv.GetState(context.Background(), &pb.GetStateRequest{})
	require.NoError(t, err)
	require.True(t, proto.Equal(resp, srv.Snapshot()))
}

// TestServer_EditPoint_Validation maps malformed input to InvalidArgument.
func TestServer_EditPoint_Validation(t *testing.T) {
	t.Parallel()

	s := newServer(&fakeTrigger{})

	_, err := s.EditPoint(context.Background(), &pb.EditPointRequest{Text: "oops"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := s.EditPoint(context.Background(), &pb.EditPointRequest{
		Actor: &pb.Actor{Hostname: "desk", Username: "oleg"},
		Text:  "60,10",
	})
	require.NoError(t, err)
	require.True(t, proto.Equal(&pb.Point{Intensity: 60, Weight: 0.1}, resp.Points[2]))
	require.Equal(t, int32(2), resp.UndoDepth)
}

// TestServer_DurationsAndView covers bounds validation.
func TestServer_DurationsAndView(t *testing.T) {
	t.Parallel()

	s := newServer(&fakeTrigger{})
	ctx := context.Background()

	_, err := s.SetDurations(ctx, &pb.SetDurationsRequest{MinDurationMs: 2000, MaxDurationMs: 1000})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := s.SetDurations(ctx, &pb.SetDurationsRequest{MinDurationMs: 500, MaxDurationMs: 9000})
	require.NoError(t, err)
	require.Equal(t, int64(500), resp.MinDurationMs)
	require.Equal(t, editor.MaxDurationBound.Milliseconds(), resp.MaxDurationMs)

	resp, err = s.SetView(ctx, &pb.SetViewRequest{ViewMin: 10, ViewMax: 90})
	require.NoError(t, err)
	require.Equal(t, int32(10), resp.ViewMin)
	require.Equal(t, int32(90), resp.ViewMax)

	_, err = s.DragPoint(ctx, &pb.DragPointRequest{Index: 7})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_UndoRedo reports changed=false on an exhausted history.
func TestServer_UndoRedo(t *testing.T) {
	t.Parallel()

	s := newServer(&fakeTrigger{})
	ctx := context.Background()

	_, err := s.SetView(ctx, &pb.SetViewRequest{ViewMin: 5, ViewMax: 95})
	require.NoError(t, err)

	resp, err := s.Undo(ctx, &pb.HistoryRequest{})
	require.NoError(t, err)
	require.True(t, resp.Changed)
	require.Equal(t, int32(30), resp.ViewMin)
	require.Equal(t, int32(1), resp.RedoDepth)

	resp, err = s.Redo(ctx, &pb.HistoryRequest{})
	require.NoError(t, err)
	require.True(t, resp.Changed)
	require.Equal(t, int32(5), resp.ViewMin)

	resp, err = s.Redo(ctx, &pb.HistoryRequest{})
	require.NoError(t, err)
	require.False(t, resp.Changed)
}

// TestServer_Toggles switches cooldown and persistence.
func TestServer_Toggles(t *testing.T) {
	t.Parallel()

	s := newServer(&fakeTrigger{})
	ctx := context.Background()

	resp, err := s.SetCooldown(ctx, &pb.ToggleRequest{Enabled: false})
	require.NoError(t, err)
	require.False(t, resp.Cooldown)

	resp, err = s.SetPersistence(ctx, &pb.ToggleRequest{Enabled: true})
	require.NoError(t, err)
	require.True(t, resp.Persist)
}

// TestServer_Trigger maps results and validates the parameter.
func TestServer_Trigger(t *testing.T) {
	t.Parallel()

	trig := &fakeTrigger{result: trigger.Result{
		Outcome: trigger.Queued,
		Command: shock.NewCommand(70, 1500*time.Millisecond),
	}}
	s := newServer(trig)

	resp, err := s.Trigger(context.Background(), &pb.TriggerRequest{Parameter: "secondary"})
	require.NoError(t, err)
	require.Equal(t, shock.Secondary, trig.parameter)
	require.Equal(t, "queued", resp.Outcome)
	require.Equal(t, int32(70), resp.Intensity)
	require.Equal(t, int64(1500), resp.DurationMs)

	trig.result = trigger.Result{Outcome: trigger.OnCooldown, Decision: cooldown.Decision{Remaining: 1440 * time.Millisecond}}

	resp, err = s.Trigger(context.Background(), &pb.TriggerRequest{})
	require.NoError(t, err)
	require.Equal(t, "cooldown", resp.Outcome)
	require.InDelta(t, 1.4, resp.RemainingSeconds, 1e-9)

	_, err = s.Trigger(context.Background(), &pb.TriggerRequest{Parameter: "third"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_GetDistribution samples the live curve.
func TestServer_GetDistribution(t *testing.T) {
	t.Parallel()

	s := newServer(&fakeTrigger{})

	full, err := s.GetDistribution(context.Background(), &pb.GetDistributionRequest{})
	require.NoError(t, err)
	require.Len(t, full.Weights, len(full.Intensities))

	upper, err := s.GetDistribution(context.Background(), &pb.GetDistributionRequest{Parameter: "secondary"})
	require.NoError(t, err)
	require.Len(t, upper.Intensities, len(full.Intensities)-len(full.Intensities)/2)

	_, err = s.GetDistribution(context.Background(), &pb.GetDistributionRequest{Steps: -1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_GetDistribution_StepsBound rejects resolutions above the cap.
func TestServer_GetDistribution_StepsBound(t *testing.T) {
	t.Parallel()

	s := newServer(&fakeTrigger{})
	ctx := context.Background()

	resp, err := s.GetDistribution(ctx, &pb.GetDistributionRequest{Steps: curve.MaxSteps})
	require.NoError(t, err)
	require.Len(t, resp.GetIntensities(), curve.MaxSteps)

	_, err = s.GetDistribution(ctx, &pb.GetDistributionRequest{Steps: curve.MaxSteps + 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetDistribution(ctx, &pb.GetDistributionRequest{Steps: 1 << 30})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// dialServer serves srv on an in-memory listener and returns a connected client.
func dialServer(t *testing.T, srv pb.ControlServer, opts ...grpc.ServerOption) pb.ControlClient {
	t.Helper()

	lis := bufconn.Listen(1 << 16)
	server := grpc.NewServer(opts...)
	pb.RegisterControlServer(server, srv)

	go func() { _ = server.Serve(lis) }()

	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewControlClient(conn)
}

// TestServer_OverGRPC edits, samples and triggers through the wire protocol.
func TestServer_OverGRPC(t *testing.T) {
	t.Parallel()

	methods := make(chan string, 8)
	interceptor := func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		methods <- info.FullMethod

		return handler(ctx, req)
	}

	trig := &fakeTrigger{result: trigger.Result{Outcome: trigger.Ignored}}
	client := dialServer(t, newServer(trig), grpc.UnaryInterceptor(interceptor))
	ctx := context.Background()

	resp, err := client.EditPoint(ctx, &pb.EditPointRequest{
		Actor: &pb.Actor{Hostname: "desk", Username: "oleg"},
		Text:  "47,80",
	})
	require.NoError(t, err)
	require.True(t, resp.GetChanged())
	require.Len(t, resp.GetPoints(), 3)
	require.True(t, proto.Equal(&pb.Point{Intensity: 47, Weight: 0.8}, resp.GetPoints()[1]))
	require.Equal(t, "COM4", resp.GetSerialPort())
	require.Equal(t, pb.Control_EditPoint_FullMethodName, <-methods)

	_, err = client.EditPoint(ctx, &pb.EditPointRequest{Text: "oops"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	<-methods

	dist, err := client.GetDistribution(ctx, &pb.GetDistributionRequest{Steps: 20})
	require.NoError(t, err)
	require.Len(t, dist.GetIntensities(), 20)
	require.Len(t, dist.GetWeights(), 20)
	<-methods

	_, err = client.GetDistribution(ctx, &pb.GetDistributionRequest{Steps: curve.MaxSteps + 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	<-methods

	fired, err := client.Trigger(ctx, &pb.TriggerRequest{Parameter: "primary"})
	require.NoError(t, err)
	require.Equal(t, "ignored", fired.GetOutcome())
	require.Equal(t, pb.Control_Trigger_FullMethodName, <-methods)
}

// TestUnimplementedControlServer answers Unimplemented for methods a server does not override.
func TestUnimplementedControlServer(t *testing.T) {
	t.Parallel()

	client := dialServer(t, pb.UnimplementedControlServer{})

	_, err := client.Undo(context.Background(), &pb.HistoryRequest{})
	require.Equal(t, codes.Unimplemented, status.Code(err))
}

// TestActorName renders unknown and known actors.
func TestActorName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<unknown>", ActorName(nil))
	require.Equal(t, "oleg@desk", ActorName(&pb.Actor{Hostname: "desk", Username: "oleg"}))
}
