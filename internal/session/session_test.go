package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
	repository "github.com/oshokin/shocker-link/internal/repository/curve"
)

var errTestDisk = errors.New("test disk error")

// memoryRepository is an in-memory Repository.
type memoryRepository struct {
	mu      sync.Mutex
	state   *editor.State
	saves   int
	loadErr error
	saveErr error
}

func (r *memoryRepository) Load(context.Context) (editor.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadErr != nil {
		return editor.State{}, r.loadErr
	}

	if r.state == nil {
		return editor.State{}, repository.ErrNotFound
	}

	return *r.state, nil
}

func (r *memoryRepository) Save(_ context.Context, state editor.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}

	r.saves++
	r.state = &state

	return nil
}

func (r *memoryRepository) saved() (editor.State, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == nil {
		return editor.State{}, r.saves
	}

	return *r.state, r.saves
}

func newSession(repo *memoryRepository, persist bool) *Session {
	return Open(context.Background(), Options{Repository: repo, Persist: persist})
}

// TestOpen_FallsBackToDefaults covers missing and unreadable files.
func TestOpen_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, editor.Default(), newSession(&memoryRepository{}, true).Current())
	require.Equal(t, editor.Default(), newSession(&memoryRepository{loadErr: errTestDisk}, true).Current())

	saved := editor.Default().WithView(10, 90)
	s := newSession(&memoryRepository{state: &saved}, true)
	require.Equal(t, saved, s.Current())

	undo, redo := s.HistoryDepth()
	require.Equal(t, 1, undo)
	require.Zero(t, redo)
}

// TestEditPoint replaces the nearest point, records undo and saves.
func TestEditPoint(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{}
	s := newSession(repo, true)

	state, err := s.EditPoint(context.Background(), "47, 80")
	require.NoError(t, err)
	require.Equal(t, curve.Point{Intensity: 47, Weight: 0.8}, state.Points[1])

	saved, saves := repo.saved()
	require.Equal(t, state, saved)
	require.Equal(t, 1, saves)

	undone, ok := s.Undo(context.Background())
	require.True(t, ok)
	require.Equal(t, editor.Default(), undone)
}

// TestEditPoint_RejectsMalformedInput leaves state and history untouched.
func TestEditPoint_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{}
	s := newSession(repo, true)

	for _, input := range []string{"", "47", "a,b", "1,2,3", "NaN,5"} {
		_, err := s.EditPoint(context.Background(), input)
		require.ErrorIs(t, err, editor.ErrInvalidInput, input)
	}

	require.Equal(t, editor.Default(), s.Current())

	undo, _ := s.HistoryDepth()
	require.Equal(t, 1, undo)

	_, saves := repo.saved()
	require.Zero(t, saves)
}

// TestSetDurations validates bounds and records undo.
func TestSetDurations(t *testing.T) {
	t.Parallel()

	s := newSession(&memoryRepository{}, true)

	state, err := s.SetDurations(context.Background(), 500*time.Millisecond, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, state.MinDuration)
	require.Equal(t, 2*time.Second, state.MaxDuration)

	_, err = s.SetDurations(context.Background(), 3*time.Second, time.Second)
	require.ErrorIs(t, err, editor.ErrInvalidInput)
	require.Equal(t, state, s.Current())
}

// TestSetView keeps the bounds ordered.
func TestSetView(t *testing.T) {
	t.Parallel()

	s := newSession(&memoryRepository{}, true)

	state := s.SetView(context.Background(), 20, 80)
	require.Equal(t, 20, state.ViewMin)
	require.Equal(t, 80, state.ViewMax)

	state = s.SetView(context.Background(), 90, 40)
	require.Less(t, state.ViewMin, state.ViewMax)
}

// TestUndoRedo_Replay restores the original state after n undos and n redos.
func TestUndoRedo_Replay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(editor.Default(), Options{})

	_, err := s.EditPoint(ctx, "20,10")
	require.NoError(t, err)
	s.SetView(ctx, 5, 95)
	_, err = s.SetDurations(ctx, time.Second, 3*time.Second)
	require.NoError(t, err)

	final := s.Current()

	for range 3 {
		_, ok := s.Undo(ctx)
		require.True(t, ok)
	}

	for range 3 {
		_, ok := s.Redo(ctx)
		require.True(t, ok)
	}

	require.Equal(t, final, s.Current())

	_, ok := s.Redo(ctx)
	require.False(t, ok)
	require.Equal(t, final, s.Current())
}

// TestUndo_EmptyHistory is a no-op.
func TestUndo_EmptyHistory(t *testing.T) {
	t.Parallel()

	s := New(editor.Default(), Options{})

	_, ok := s.Undo(context.Background())
	require.True(t, ok, "initial snapshot")

	_, ok = s.Undo(context.Background())
	require.False(t, ok)
	require.Equal(t, editor.Default(), s.Current())
}

// TestPersistenceToggle skips saves while off and reloads the file when turned on.
func TestPersistenceToggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memoryRepository{}
	s := newSession(repo, true)

	edited, err := s.EditPoint(ctx, "30,20")
	require.NoError(t, err)

	s.SetPersistence(ctx, false)
	require.False(t, s.Persistent())

	_, err = s.EditPoint(ctx, "60,90")
	require.NoError(t, err)

	saved, saves := repo.saved()
	require.Equal(t, 1, saves)
	require.Equal(t, edited, saved)

	state := s.SetPersistence(ctx, true)
	require.True(t, s.Persistent())
	require.Equal(t, edited, state)

	// The unsaved edit can still be recovered.
	recovered, ok := s.Undo(ctx)
	require.True(t, ok)
	require.Equal(t, curve.Point{Intensity: 60, Weight: 0.9}, recovered.Points[2])
}

// TestSaveError is logged, not fatal, for edits and surfaced by Save.
func TestSaveError(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{saveErr: errTestDisk}
	s := newSession(repo, true)

	_, err := s.EditPoint(context.Background(), "30,20")
	require.NoError(t, err)
	require.ErrorIs(t, s.Save(context.Background()), errTestDisk)
}

// TestApplyExternal adopts external edits only when persistence is on and state differs.
func TestApplyExternal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newSession(&memoryRepository{}, true)

	require.False(t, s.ApplyExternal(ctx, editor.Default()))

	external := editor.Default().WithView(1, 100)
	require.True(t, s.ApplyExternal(ctx, external))
	require.Equal(t, external, s.Current())

	s.SetPersistence(ctx, false)
	require.False(t, s.ApplyExternal(ctx, editor.Default()))
	require.Equal(t, external, s.Current())
}

// TestConcurrentReadsDuringEdits exercises the lock under the race detector.
func TestConcurrentReadsDuringEdits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(editor.Default(), Options{})

	var (
		wg      sync.WaitGroup
		invalid bool
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		for i := range 200 {
			_, _ = s.DragPoint(ctx, 2, curve.Point{Intensity: float64(50 + i%40), Weight: 0.3})
		}
	}()

	go func() {
		defer wg.Done()

		for range 200 {
			if st := s.Current(); st.Points[2].Intensity < curve.MinIntensity {
				invalid = true
			}
		}
	}()

	wg.Wait()
	require.False(t, invalid)
}
