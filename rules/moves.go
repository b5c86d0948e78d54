package rules

import (
	"errors"
	"fmt"
)

// MinMoves is the smallest playable move set.
const MinMoves = 3

// ErrInvalidMoves is matched by every move-set validation failure.
var ErrInvalidMoves = errors.New("invalid moves")

var (
	ErrTooFewMoves   = fmt.Errorf("%w: please enter at least %d moves", ErrInvalidMoves, MinMoves)
	ErrEvenMoves     = fmt.Errorf("%w: please enter an odd number of moves", ErrInvalidMoves)
	ErrDuplicateMove = fmt.Errorf("%w: please enter unique moves", ErrInvalidMoves)
)

// MoveSet is an immutable ordered list of distinct move names. The position
// of a name is its place on the dominance circle.
type MoveSet struct {
	names []string
}

// NewMoveSet validates names and returns the move set. Names are compared
// exactly, so "rock" and "Rock" are different moves.
func NewMoveSet(names []string) (MoveSet, error) {
	if len(names) < MinMoves {
		return MoveSet{}, ErrTooFewMoves
	}
	if len(names)%2 == 0 {
		return MoveSet{}, ErrEvenMoves
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return MoveSet{}, fmt.Errorf("%w (%q given more than once)", ErrDuplicateMove, name)
		}
		seen[name] = struct{}{}
	}

	return MoveSet{names: append([]string(nil), names...)}, nil
}

// Len returns the number of moves
func (m MoveSet) Len() int {
	return len(m.names)
}

// Name returns the move at index i
func (m MoveSet) Name(i int) string {
	return m.names[i]
}

// Names returns a copy of the move names in circle order
func (m MoveSet) Names() []string {
	return append([]string(nil), m.names...)
}

// Contains reports whether i is a valid index into the set.
func (m MoveSet) Contains(i int) bool {
	return i >= 0 && i < len(m.names)
}
