package session

import (
	"context"
	"fmt"

	"github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/logger"
)

// BeginDrag starts dragging the point nearest to intensity when it lies
// within SelectThreshold. The pre-drag state becomes an undo snapshot.
func (s *Session) BeginDrag(ctx context.Context, intensity float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, dist := s.state.Points.Nearest(intensity)
	if dist >= SelectThreshold {
		return -1, fmt.Errorf("%w at %.1f", ErrNoPointNearby, intensity)
	}

	s.beginLocked(index)
	logger.DebugKV(ctx, "Drag started", "index", index)

	return index, nil
}

// DragTo moves the dragged point. Dragging an endpoint also moves the
// middle point so it keeps its place relative to the endpoints.
func (s *Session) DragTo(p curve.Point) (editor.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.drag == nil {
		return s.state, ErrNoDrag
	}

	points := s.state.Points
	points[s.drag.index] = editor.ClampPoint(p)

	if s.drag.hasFollow {
		points = s.drag.follow.Apply(points)
		points[1] = editor.ClampPoint(points[1])
	}

	s.state.Points = points

	return s.state, nil
}

// EndDrag finishes the gesture and saves the result.
func (s *Session) EndDrag(ctx context.Context) editor.State {
	s.mu.Lock()
	s.drag = nil
	s.mu.Unlock()

	s.save(ctx)

	return s.Current()
}

// Dragging reports the index of the dragged point, or -1.
func (s *Session) Dragging() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.drag == nil {
		return -1
	}

	return s.drag.index
}

// DragPoint runs a whole drag gesture on the point at index in one step.
func (s *Session) DragPoint(ctx context.Context, index int, p curve.Point) (editor.State, error) {
	if index < 0 || index >= len(s.Current().Points) {
		return s.Current(), fmt.Errorf("point index %d out of range: %w", index, editor.ErrInvalidInput)
	}

	s.mu.Lock()
	s.beginLocked(index)
	s.mu.Unlock()

	if _, err := s.DragTo(p); err != nil {
		return s.Current(), err
	}

	return s.EndDrag(ctx), nil
}

func (s *Session) beginLocked(index int) {
	s.history.Push(s.state)

	follow, ok := curve.NewFollow(s.state.Points, index)
	s.drag = &gesture{index: index, follow: follow, hasFollow: ok}
}
