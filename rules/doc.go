// Package rules implements the generalised rock-paper-scissors dominance order.
//
// A game is played over an odd number (at least three) of named moves. The
// moves are arranged on a circle in the order they were supplied; each move
// beats the floor(n/2) moves that follow it and loses to the floor(n/2) moves
// that precede it.
//
// # Basic Usage
//
//	moves, err := rules.NewMoveSet([]string{"Rock", "Paper", "Scissors"})
//	if err != nil {
//	    // errors.Is(err, rules.ErrInvalidMoves)
//	}
//	outcome := rules.Decide(0, 2, moves.Len()) // rules.Win: Rock beats Scissors
//
// The full pairwise grid used for the help screen is built with NewMatrix:
//
//	m := rules.NewMatrix(moves)
//	m.At(1, 0) // rules.Win: Paper beats Rock
//	m.Grid()   // header row and column plus "Win"/"Lose"/"Draw" cells
package rules
