package puzzle

import (
	"math/rand"
	"sync"
)

// Observer is the presentation boundary. A Session never returns boards
// to its caller; it reports them here instead, so exploratory play stays
// resilient: a blocked move is surfaced, never raised as an error.
type Observer interface {
	// MoveReplayed is called once per historical direction on every
	// replay, in order. When the step was illegal at that point of the
	// replay, legal is false and board is the unchanged board ("no tile
	// there" notice); otherwise board is the state after the slide.
	MoveReplayed(step int, d Direction, board Board, legal bool)

	// BoardUpdated reports the board resulting from the last step of the
	// replay and whether it is solved.
	BoardUpdated(board Board, solved bool)
}

// Session is a single ongoing game: a freshly shuffled initial board and
// an append-only history of every direction the player has requested.
// The current board is never stored; it is recomputed by folding the
// history over the initial board on each request.
//
// The history append is mutex-guarded so concurrent RequestMove calls
// each record their direction exactly once, in some linearized order.
// The replay itself runs on a snapshot taken under the lock; concurrent
// callers may therefore observe and report boards that a later append
// has already superseded. No stronger ordering is promised.
type Session struct {
	mu      sync.Mutex
	initial Board
	history []Direction
	obs     Observer
}

// NewSession creates a session over a freshly shuffled board.
// The observer receives all board reporting; it must not be nil.
func NewSession(rng *rand.Rand, obs Observer) *Session {
	return NewSessionWithBoard(Shuffled(rng), obs)
}

// NewSessionWithBoard creates a session over the given initial board.
// Used for the solvable-shuffle mode and by tests.
func NewSessionWithBoard(initial Board, obs Observer) *Session {
	if obs == nil {
		panic("puzzle: session requires an observer")
	}
	return &Session{initial: initial, obs: obs}
}

// RequestMove records the direction and replays the full history from
// the initial board, reporting every step and the final state through
// the observer.
//
// The direction is appended unconditionally, before legality is known:
// an attempt that turns out to be blocked still occupies a history slot
// and replays as a no-op on every later request. Filtering illegal
// attempts out would change observable history length and replay
// output, so it is preserved exactly.
func (s *Session) RequestMove(d Direction) {
	s.mu.Lock()
	s.history = append(s.history, d)
	snapshot := make([]Direction, len(s.history))
	copy(snapshot, s.history)
	s.mu.Unlock()

	board := s.initial
	for i, dir := range snapshot {
		next, ok := Apply(board, dir)
		if ok {
			board = next
		}
		s.obs.MoveReplayed(i, dir, board, ok)
	}
	s.obs.BoardUpdated(board, board.IsSolved())
}

// InitialBoard returns the board the session started from.
func (s *Session) InitialBoard() Board {
	return s.initial
}

// History returns a copy of the recorded directions, legal and blocked
// alike, in request order.
func (s *Session) History() []Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Direction, len(s.history))
	copy(out, s.history)
	return out
}

// MoveCount returns the number of recorded requests, including blocked
// ones.
func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Replay folds the current history over the initial board without
// recording anything or notifying the observer. Deterministic: two
// calls with the same history yield the same board.
func (s *Session) Replay() (Board, bool) {
	s.mu.Lock()
	snapshot := make([]Direction, len(s.history))
	copy(snapshot, s.history)
	s.mu.Unlock()

	board := s.initial
	for _, dir := range snapshot {
		if next, ok := Apply(board, dir); ok {
			board = next
		}
	}
	return board, board.IsSolved()
}
