package rules

// Decide returns the outcome of player against computer for a game of n moves.
//
// The circular difference between the two indices is centred into
// [-n/2, n/2]: zero is a draw, positive means the player's move lies within
// the half of the circle it beats. Indices must be in [0, n) and n must be odd
// and at least 3; NewMoveSet enforces the latter.
func Decide(player, computer, n int) Outcome {
	half := n / 2
	diff := (player-computer+half+n)%n - half
	switch {
	case diff > 0:
		return Win
	case diff < 0:
		return Lose
	default:
		return Draw
	}
}

