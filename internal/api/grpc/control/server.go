package control

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/domain/shock"
	"github.com/oshokin/shocker-link/internal/logger"
	pb "github.com/oshokin/shocker-link/internal/pb/v1"
	"github.com/oshokin/shocker-link/internal/service/trigger"
	"github.com/oshokin/shocker-link/internal/session"
)

// Session abstracts the editing operations the transport depends on.
type Session interface {
	Current() editor.State
	HistoryDepth() (int, int)
	Persistent() bool
	EditPoint(ctx context.Context, text string) (editor.State, error)
	DragPoint(ctx context.Context, index int, p curve.Point) (editor.State, error)
	SetDurations(ctx context.Context, lo, hi time.Duration) (editor.State, error)
	SetView(ctx context.Context, lo, hi int) editor.State
	Undo(ctx context.Context) (editor.State, bool)
	Redo(ctx context.Context) (editor.State, bool)
	SetPersistence(ctx context.Context, enabled bool) editor.State
}

// Cooldown is the switchable trigger limiter.
type Cooldown interface {
	SetEnabled(enabled bool)
	Enabled() bool
}

// Trigger fires test triggers.
type Trigger interface {
	Fire(ctx context.Context, parameter shock.Parameter) trigger.Result
}

// Link reports the serial link status.
type Link interface {
	Connected() bool
	PortName() string
}

// Server implements the control gRPC API.
type Server struct {
	pb.UnimplementedControlServer

	session  Session
	cooldown Cooldown
	trigger  Trigger
	// link may be nil when no device is attached.
	link Link
}

// NewServer wires the provided collaborators into a gRPC handler.
func NewServer(session Session, cooldown Cooldown, trigger Trigger, link Link) *Server {
	return &Server{
		session:  session,
		cooldown: cooldown,
		trigger:  trigger,
		link:     link,
	}
}

// GetState returns the live state.
func (s *Server) GetState(_ context.Context, _ *pb.GetStateRequest) (*pb.StateResponse, error) {
	return s.state(s.session.Current(), true), nil
}

// GetDistribution samples the live curve.
func (s *Server) GetDistribution(
	_ context.Context,
	req *pb.GetDistributionRequest,
) (*pb.DistributionResponse, error) {
	parameter, ok := shock.ParseParameter(req.GetParameter())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown parameter %q", req.GetParameter())
	}

	steps := req.GetSteps()
	if steps < 0 || steps > curve.MaxSteps {
		return nil, status.Errorf(codes.InvalidArgument, "steps must be within [0, %d]", curve.MaxSteps)
	}

	dist := curve.Sample(s.session.Current().Points, int(steps))
	if parameter == shock.Secondary {
		dist = dist.UpperHalf()
	}

	resp := &pb.DistributionResponse{
		Intensities: make([]int32, len(dist.Intensities)),
		Weights:     dist.Weights,
	}

	for i, x := range dist.Intensities {
		resp.Intensities[i] = int32(x) //nolint:gosec // Intensities are percentages.
	}

	return resp, nil
}

// EditPoint applies a free-text point edit.
func (s *Server) EditPoint(ctx context.Context, req *pb.EditPointRequest) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_EditPoint_FullMethodName, req.GetActor(), "text", req.GetText())

	state, err := s.session.EditPoint(ctx, req.GetText())
	if err != nil {
		return nil, toStatus(err)
	}

	return s.state(state, true), nil
}

// DragPoint moves one point as a whole drag gesture.
func (s *Server) DragPoint(ctx context.Context, req *pb.DragPointRequest) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_DragPoint_FullMethodName, req.GetActor(), "index", req.GetIndex())

	state, err := s.session.DragPoint(ctx, int(req.GetIndex()), curve.Point{
		Intensity: req.GetIntensity(),
		Weight:    req.GetWeight(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return s.state(state, true), nil
}

// SetDurations replaces the duration bounds.
func (s *Server) SetDurations(
	ctx context.Context,
	req *pb.SetDurationsRequest,
) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_SetDurations_FullMethodName, req.GetActor(),
		"min_ms", req.GetMinDurationMs(), "max_ms", req.GetMaxDurationMs())

	state, err := s.session.SetDurations(ctx,
		time.Duration(req.GetMinDurationMs())*time.Millisecond,
		time.Duration(req.GetMaxDurationMs())*time.Millisecond,
	)
	if err != nil {
		return nil, toStatus(err)
	}

	return s.state(state, true), nil
}

// SetView replaces the view bounds.
func (s *Server) SetView(ctx context.Context, req *pb.SetViewRequest) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_SetView_FullMethodName, req.GetActor(), "view_min", req.GetViewMin(), "view_max", req.GetViewMax())

	return s.state(s.session.SetView(ctx, int(req.GetViewMin()), int(req.GetViewMax())), true), nil
}

// Undo restores the previous snapshot. An empty history is not an error.
func (s *Server) Undo(ctx context.Context, req *pb.HistoryRequest) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_Undo_FullMethodName, req.GetActor())

	state, changed := s.session.Undo(ctx)

	return s.state(state, changed), nil
}

// Redo reapplies the last undone snapshot. An empty history is not an error.
func (s *Server) Redo(ctx context.Context, req *pb.HistoryRequest) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_Redo_FullMethodName, req.GetActor())

	state, changed := s.session.Redo(ctx)

	return s.state(state, changed), nil
}

// SetCooldown switches the trigger cooldown.
func (s *Server) SetCooldown(ctx context.Context, req *pb.ToggleRequest) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_SetCooldown_FullMethodName, req.GetActor(), "enabled", req.GetEnabled())

	s.cooldown.SetEnabled(req.GetEnabled())

	return s.state(s.session.Current(), true), nil
}

// SetPersistence switches saving; enabling reloads the saved file.
func (s *Server) SetPersistence(
	ctx context.Context,
	req *pb.ToggleRequest,
) (*pb.StateResponse, error) {
	audit(ctx, pb.Control_SetPersistence_FullMethodName, req.GetActor(), "enabled", req.GetEnabled())

	return s.state(s.session.SetPersistence(ctx, req.GetEnabled()), true), nil
}

// Trigger fires a test trigger through the regular pipeline.
func (s *Server) Trigger(ctx context.Context, req *pb.TriggerRequest) (*pb.TriggerResponse, error) {
	parameter, ok := shock.ParseParameter(req.GetParameter())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown parameter %q", req.GetParameter())
	}

	audit(ctx, pb.Control_Trigger_FullMethodName, req.GetActor(), "parameter", parameter)

	result := s.trigger.Fire(ctx, parameter)
	resp := &pb.TriggerResponse{Outcome: result.Outcome.String()}

	switch result.Outcome {
	case trigger.Queued, trigger.Dropped:
		resp.Intensity = int32(result.Command.Intensity()) //nolint:gosec // Intensities are percentages.
		resp.DurationMs = result.Command.DurationMs()
	case trigger.OnCooldown:
		resp.RemainingSeconds = result.Decision.RemainingSeconds()
	case trigger.Ignored:
	}

	return resp, nil
}

// Snapshot returns the live state for read-only consumers.
func (s *Server) Snapshot() *pb.StateResponse {
	return s.state(s.session.Current(), true)
}

// state converts editor.State and the toggles into a StateResponse.
func (s *Server) state(state editor.State, changed bool) *pb.StateResponse {
	undo, redo := s.session.HistoryDepth()

	resp := &pb.StateResponse{
		Points:        make([]*pb.Point, 0, len(state.Points)),
		MinDurationMs: state.MinDuration.Milliseconds(),
		MaxDurationMs: state.MaxDuration.Milliseconds(),
		ViewMin:       int32(state.ViewMin), //nolint:gosec // View bounds are percentages.
		ViewMax:       int32(state.ViewMax), //nolint:gosec // View bounds are percentages.
		UndoDepth:     int32(undo),          //nolint:gosec // History is capped far below int32.
		RedoDepth:     int32(redo),          //nolint:gosec // History is capped far below int32.
		Persist:       s.session.Persistent(),
		Cooldown:      s.cooldown.Enabled(),
		Changed:       changed,
	}

	for _, p := range state.Points {
		resp.Points = append(resp.Points, &pb.Point{Intensity: p.Intensity, Weight: p.Weight})
	}

	if s.link != nil {
		resp.Connected = s.link.Connected()
		resp.SerialPort = s.link.PortName()
	}

	return resp
}

// toStatus maps domain errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, editor.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, session.ErrNoDrag), errors.Is(err, session.ErrNoPointNearby):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// audit logs a state-changing request together with who sent it.
func audit(ctx context.Context, method string, actor *pb.Actor, kvs ...any) {
	logger.InfoKV(ctx, "Control request", append([]any{"method", method, "actor", ActorName(actor)}, kvs...)...)
}

// ActorName formats an actor as "username@hostname".
func ActorName(actor *pb.Actor) string {
	if actor == nil {
		return "<unknown>"
	}

	return actor.GetUsername() + "@" + actor.GetHostname()
}
