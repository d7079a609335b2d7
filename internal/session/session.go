package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	"github.com/oshokin/shocker-link/internal/history"
	"github.com/oshokin/shocker-link/internal/logger"
	repository "github.com/oshokin/shocker-link/internal/repository/curve"
)

// SelectThreshold is the maximum intensity distance for picking a point to drag.
const SelectThreshold = 5.0

var (
	// ErrNoPointNearby is returned when no point is within SelectThreshold.
	ErrNoPointNearby = errors.New("no control point nearby")
	// ErrNoDrag is returned by drag updates without an active gesture.
	ErrNoDrag = errors.New("no drag in progress")
)

// Options configures a Session.
type Options struct {
	// Repository persists the state; nil keeps the session in memory.
	Repository repository.Repository
	// Persist enables saving after each edit.
	Persist bool
	// HistoryLimit caps the undo stack; zero means history.DefaultLimit.
	HistoryLimit int
}

// Session is the single owner of the editable state.
type Session struct {
	repo repository.Repository

	mu      sync.RWMutex
	state   editor.State
	history *history.Store
	persist bool
	drag    *gesture

	// saveMu keeps saves in order without holding mu during file I/O.
	saveMu sync.Mutex
}

// gesture is an active drag.
type gesture struct {
	index     int
	follow    curve.Follow
	hasFollow bool
}

// New creates a Session over initial. The initial state is recorded as the
// first undo snapshot.
func New(initial editor.State, opts Options) *Session {
	s := &Session{
		repo:    opts.Repository,
		state:   initial.Normalize(),
		history: history.New(opts.HistoryLimit),
		persist: opts.Persist,
	}

	s.history.Push(s.state)

	return s
}

// Open loads the persisted state and creates a Session over it. A missing
// or unreadable file falls back to editor.Default.
func Open(ctx context.Context, opts Options) *Session {
	initial := editor.Default()

	if opts.Repository != nil {
		state, err := opts.Repository.Load(ctx)

		switch {
		case err == nil:
			initial = state
		case errors.Is(err, repository.ErrNotFound):
			logger.Info(ctx, "No saved curve state, using defaults")
		default:
			logger.WarnKV(ctx, "Failed to load curve state, using defaults", "error", err)
		}
	}

	return New(initial, opts)
}

// Current returns a copy of the live state.
func (s *Session) Current() editor.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Persistent reports whether edits are saved.
func (s *Session) Persistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.persist
}

// HistoryDepth returns the number of undo and redo snapshots.
func (s *Session) HistoryDepth() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history.UndoDepth(), s.history.RedoDepth()
}

// EditPoint applies a free-text "intensity,weight" edit to the point
// nearest in intensity. Malformed input changes nothing.
func (s *Session) EditPoint(ctx context.Context, text string) (editor.State, error) {
	p, err := editor.ParsePoint(text)
	if err != nil {
		logger.WarnKV(ctx, "Rejected point edit", "input", text, "error", err)

		return s.Current(), err
	}

	state := s.mutate(func(st *editor.State) {
		index, _ := st.Points.Nearest(p.Intensity)
		st.Points[index] = p
	})

	s.save(ctx)

	return state, nil
}

// SetDurations replaces both duration bounds.
func (s *Session) SetDurations(ctx context.Context, lo, hi time.Duration) (editor.State, error) {
	current := s.Current()

	next, err := current.WithDurations(lo, hi)
	if err != nil {
		return current, err
	}

	state := s.mutate(func(st *editor.State) {
		st.MinDuration, st.MaxDuration = next.MinDuration, next.MaxDuration
	})

	s.save(ctx)

	return state, nil
}

// SetView replaces both view bounds, keeping the lower one below the upper one.
func (s *Session) SetView(ctx context.Context, lo, hi int) editor.State {
	state := s.mutate(func(st *editor.State) {
		*st = st.WithView(lo, hi)
	})

	s.save(ctx)

	return state
}

// Undo restores the previous snapshot. ok is false when there is none.
func (s *Session) Undo(ctx context.Context) (editor.State, bool) {
	return s.step(ctx, s.history.Undo)
}

// Redo reapplies the snapshot undone last. ok is false when there is none.
func (s *Session) Redo(ctx context.Context) (editor.State, bool) {
	return s.step(ctx, s.history.Redo)
}

func (s *Session) step(ctx context.Context, move func(editor.State) (editor.State, bool)) (editor.State, bool) {
	s.mu.Lock()
	next, ok := move(s.state)

	if ok {
		s.state = next
		s.drag = nil
	}

	s.mu.Unlock()

	if ok {
		s.save(ctx)
	}

	return next, ok
}

// SetPersistence turns saving on or off. Turning it on reloads the saved
// file so the session returns to the last saved state.
func (s *Session) SetPersistence(ctx context.Context, enabled bool) editor.State {
	s.mu.Lock()
	s.persist = enabled
	s.mu.Unlock()

	logger.InfoKV(ctx, "Persistence switched", "enabled", enabled)

	if !enabled || s.repo == nil {
		return s.Current()
	}

	saved, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.WarnKV(ctx, "Failed to reload curve state", "error", err)
		}

		return s.Current()
	}

	state, _ := s.replace(saved)

	return state
}

// ApplyExternal adopts a state edited outside the session. It is ignored
// while persistence is off and when it equals the live state.
func (s *Session) ApplyExternal(ctx context.Context, state editor.State) bool {
	if !s.Persistent() {
		logger.Debugf(ctx, "Ignoring external curve edit while persistence is off")

		return false
	}

	_, changed := s.replace(state)
	if changed {
		logger.Info(ctx, "Applied external curve edit")
	}

	return changed
}

// Save writes the live state when persistence is on.
func (s *Session) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	state, persist := s.state, s.persist
	s.mu.RUnlock()

	if !persist || s.repo == nil {
		return nil
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save curve state: %w", err)
	}

	return nil
}

// save is Save for edit paths, where a failure is logged and not returned.
func (s *Session) save(ctx context.Context) {
	if err := s.Save(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to save curve state", "error", err)
	}
}

// mutate records an undo snapshot and applies fn to the live state.
func (s *Session) mutate(fn func(*editor.State)) editor.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Push(s.state)

	next := s.state
	fn(&next)
	s.state = next.Normalize()

	return s.state
}

// replace swaps in state with an undo snapshot unless nothing changes.
func (s *Session) replace(state editor.State) (editor.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state = state.Normalize()
	if state == s.state {
		return s.state, false
	}

	s.history.Push(s.state)
	s.state = state
	s.drag = nil

	return s.state, true
}
