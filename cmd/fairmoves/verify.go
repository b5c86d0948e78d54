package main

import (
	"errors"
	"io"
	"os"

	"github.com/lox/fairmoves/internal/fairness"
)

var errMismatch = errors.New("HMAC does not match the revealed key and move")

// VerifyCmd recomputes a commitment from the revealed key.
type VerifyCmd struct {
	Key  string `arg:"" help:"HMAC key revealed at the end of the round"`
	Move string `arg:"" help:"Move the computer played"`
	HMAC string `arg:"" name:"hmac" help:"HMAC published at the start of the round"`
}

func (cmd *VerifyCmd) Run(g *Globals) error {
	return cmd.verify(g, os.Stdout)
}

func (cmd *VerifyCmd) verify(g *Globals, out io.Writer) error {
	ok := fairness.Check(cmd.Key, cmd.Move, cmd.HMAC)
	newConsole(out, g).Verified(ok, cmd.Move)
	if !ok {
		return errMismatch
	}
	return nil
}
