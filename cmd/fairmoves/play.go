package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/fairmoves/internal/prompt"
	"github.com/lox/fairmoves/internal/render"
	"github.com/lox/fairmoves/internal/session"
	"github.com/lox/fairmoves/rules"
)

// PlayCmd plays a single round.
type PlayCmd struct {
	Moves []string `arg:"" optional:"" name:"move" help:"Move names in dominance order (odd count, at least 3, unique)"`
	TUI   bool     `help:"Read moves with an interactive text input"`
}

func (cmd *PlayCmd) Run(g *Globals) error {
	var p prompt.Prompter = prompt.NewLinePrompter(os.Stdin, os.Stdout)
	if cmd.TUI {
		p = prompt.NewTeaPrompter(os.Stdin, os.Stdout)
	}
	return cmd.play(g, p, os.Stdout, os.Stderr)
}

func (cmd *PlayCmd) play(g *Globals, p prompt.Prompter, out, logOut io.Writer) error {
	logger := setupLogger(logOut, g)

	moves, err := rules.NewMoveSet(cmd.Moves)
	if err != nil {
		return err
	}

	s, err := session.New(moves, newConsole(out, g), session.Config{Logger: logger})
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	logger.Debug("Round created", "round", s.ID(), "moves", moves.Len())

	_, err = s.Run(p)
	return err
}

func newConsole(out io.Writer, g *Globals) *render.Console {
	if g.NoColor {
		return render.New(out, render.WithoutColor())
	}
	return render.New(out)
}
