package rules

// Outcome is the result of a pairing from the first move's point of view.
type Outcome int8

const (
	Lose Outcome = iota - 1
	Draw
	Win
)

// String returns the label used in the dominance grid
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	default:
		return "?"
	}
}

// Mirror returns the outcome seen from the other side of the pairing.
func (o Outcome) Mirror() Outcome {
	return -o
}

// Verdict returns the sentence announced to the player at the end of a round.
func (o Outcome) Verdict() string {
	switch o {
	case Win:
		return "You win!"
	case Lose:
		return "Computer wins!"
	default:
		return "Draw!"
	}
}
