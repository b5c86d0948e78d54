// Package session runs a single provably fair round.
//
// A Session picks the computer's move and publishes its commitment when the
// round starts, then loops on the player's answers until a move is selected
// or the player exits. Invalid answers and help requests never end the round.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fairmoves/internal/fairness"
	"github.com/lox/fairmoves/internal/prompt"
	"github.com/lox/fairmoves/internal/render"
	"github.com/lox/fairmoves/internal/roundid"
	"github.com/lox/fairmoves/rules"
)

// PromptLabel is shown each time the player is asked for a move.
const PromptLabel = "Enter your move: "

const invalidMoveMessage = "Please choose from available moves!"

var (
	// ErrExit is returned when the player leaves without playing.
	ErrExit = errors.New("player exited without choosing a move")
	// ErrRoundOver is returned by Run once the round has been resolved.
	ErrRoundOver = errors.New("round already resolved")
)

// State is the position of a session in its lifecycle.
type State int

const (
	Init State = iota
	AwaitingMove
	Resolved
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case AwaitingMove:
		return "awaiting-move"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Config holds the collaborators of a session. Zero values fall back to
// crypto/rand, the real clock and a discarding logger.
type Config struct {
	Random io.Reader
	Clock  quartz.Clock
	Logger *log.Logger
}

// Result describes a resolved round.
type Result struct {
	RoundID      string
	Player       int
	Computer     int
	PlayerMove   string
	ComputerMove string
	Outcome      rules.Outcome
	Digest       string
	Key          string
	Elapsed      time.Duration
}

// Session is one round of the game.
type Session struct {
	id         string
	moves      rules.MoveSet
	computer   int
	commitment *fairness.Commitment
	matrix     rules.Matrix

	console *render.Console
	clock   quartz.Clock
	logger  *log.Logger

	state     State
	published time.Time
}

// New picks the computer's move, commits to it and builds the help grid.
// Failures come only from the random source and are not recoverable.
func New(moves rules.MoveSet, console *render.Console, cfg Config) (*Session, error) {
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	id, err := roundid.New()
	if err != nil {
		return nil, err
	}

	computer, err := fairness.Pick(cfg.Random, moves.Len())
	if err != nil {
		return nil, fmt.Errorf("pick computer move: %w", err)
	}

	commitment, err := fairness.Commit(cfg.Random, moves.Name(computer))
	if err != nil {
		return nil, fmt.Errorf("commit to computer move: %w", err)
	}

	return &Session{
		id:         id,
		moves:      moves,
		computer:   computer,
		commitment: commitment,
		matrix:     rules.NewMatrix(moves),
		console:    console,
		clock:      cfg.Clock,
		logger:     cfg.Logger.With("round", id),
		state:      Init,
	}, nil
}

// ID returns the round identifier
func (s *Session) ID() string {
	return s.id
}

// Digest returns the published commitment
func (s *Session) Digest() string {
	return s.commitment.Digest()
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Run publishes the commitment and asks p for moves until the round is
// resolved or the player exits. Exiting, including closing the input,
// returns ErrExit.
func (s *Session) Run(p prompt.Prompter) (*Result, error) {
	if s.state == Resolved {
		return nil, ErrRoundOver
	}

	if s.state == Init {
		s.console.Start(s.commitment.Digest())
		s.published = s.clock.Now()
		s.state = AwaitingMove
		s.logger.Debug("Commitment published", "moves", s.moves.Len(), "digest", s.commitment.Digest())
	}

	for {
		s.console.Menu(s.moves)

		answer, err := p.Prompt(PromptLabel)
		if errors.Is(err, prompt.ErrInterrupted) {
			return nil, s.exit("input closed")
		}
		if err != nil {
			return nil, fmt.Errorf("read move: %w", err)
		}

		cmd, err := parseInput(answer, s.moves.Len())
		if err != nil {
			s.logger.Debug("Rejected input", "input", answer, "error", err)
			s.console.InputError(invalidMoveMessage)
			continue
		}

		switch cmd.kind {
		case exitGame:
			return nil, s.exit("exit selected")
		case showHelp:
			s.console.Grid(s.matrix)
		case selectMove:
			return s.resolve(cmd.index), nil
		}
	}
}

func (s *Session) exit(reason string) error {
	s.logger.Info("Player left the round", "reason", reason)
	s.console.Finish()
	return ErrExit
}

func (s *Session) resolve(player int) *Result {
	key, computerMove := s.commitment.Reveal()
	outcome := rules.Decide(player, s.computer, s.moves.Len())

	res := &Result{
		RoundID:      s.id,
		Player:       player,
		Computer:     s.computer,
		PlayerMove:   s.moves.Name(player),
		ComputerMove: computerMove,
		Outcome:      outcome,
		Digest:       s.commitment.Digest(),
		Key:          key,
		Elapsed:      s.clock.Since(s.published),
	}
	s.state = Resolved

	s.console.Result(res.PlayerMove, res.ComputerMove, outcome, key)
	s.console.Finish()

	s.logger.Info("Round resolved",
		"player", res.PlayerMove,
		"computer", res.ComputerMove,
		"outcome", outcome,
		"elapsed", res.Elapsed)

	return res
}
