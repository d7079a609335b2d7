package history

import "github.com/oshokin/shocker-link/internal/domain/editor"

// DefaultLimit is the maximum number of undo snapshots kept.
const DefaultLimit = 50

// Store keeps undo and redo stacks of editor.State snapshots.
// Snapshots are values, so stored entries never alias live state.
// Store is not safe for concurrent use; the session serialises access.
type Store struct {
	undo  []editor.State
	redo  []editor.State
	limit int
}

// New creates a Store holding at most limit undo snapshots.
// A non-positive limit selects DefaultLimit.
func New(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &Store{
		undo:  make([]editor.State, 0, limit+1),
		limit: limit,
	}
}

// Push records state before a new forward action. The oldest snapshot is
// evicted past the limit and the redo stack is always cleared.
func (s *Store) Push(state editor.State) {
	s.undo = append(s.undo, state)
	if len(s.undo) > s.limit {
		s.undo = append(s.undo[:0], s.undo[1:]...)
	}

	s.redo = s.redo[:0]
}

// Undo returns the previous state and saves current for redo.
// ok is false, and nothing changes, when there is nothing to undo.
func (s *Store) Undo(current editor.State) (editor.State, bool) {
	if len(s.undo) == 0 {
		return current, false
	}

	s.redo = append(s.redo, current)

	return pop(&s.undo), true
}

// Redo mirrors Undo using the redo stack.
func (s *Store) Redo(current editor.State) (editor.State, bool) {
	if len(s.redo) == 0 {
		return current, false
	}

	s.undo = append(s.undo, current)

	return pop(&s.redo), true
}

// UndoDepth returns the number of available undo steps.
func (s *Store) UndoDepth() int {
	return len(s.undo)
}

// RedoDepth returns the number of available redo steps.
func (s *Store) RedoDepth() int {
	return len(s.redo)
}

func pop(stack *[]editor.State) editor.State {
	last := len(*stack) - 1
	top := (*stack)[last]
	*stack = (*stack)[:last]

	return top
}
