package main

import (
	"io"
	"os"

	"github.com/lox/fairmoves/rules"
)

// TableCmd prints the dominance grid without playing.
type TableCmd struct {
	Moves []string `arg:"" optional:"" name:"move" help:"Move names in dominance order"`
}

func (cmd *TableCmd) Run(g *Globals) error {
	return cmd.print(g, os.Stdout)
}

func (cmd *TableCmd) print(g *Globals, out io.Writer) error {
	moves, err := rules.NewMoveSet(cmd.Moves)
	if err != nil {
		return err
	}
	newConsole(out, g).Grid(rules.NewMatrix(moves))
	return nil
}
