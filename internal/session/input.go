package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	exitInput = "0"
	helpInput = "?"
)

var (
	// ErrUnknownInput is returned for answers that are neither a command nor a number.
	ErrUnknownInput = errors.New("unrecognised input")
	// ErrOutOfRange is returned for numbers that do not name a move.
	ErrOutOfRange = errors.New("move number out of range")
)

type commandKind int

const (
	selectMove commandKind = iota
	showHelp
	exitGame
)

type command struct {
	kind  commandKind
	index int
}

// parseInput classifies an answer for a game of n moves. Selections are
// 1-indexed on input and 0-indexed in the returned command.
func parseInput(answer string, n int) (command, error) {
	answer = strings.TrimSpace(answer)
	switch answer {
	case exitInput:
		return command{kind: exitGame}, nil
	case helpInput:
		return command{kind: showHelp}, nil
	}

	num, err := strconv.Atoi(answer)
	if err != nil {
		return command{}, fmt.Errorf("%w: %q", ErrUnknownInput, answer)
	}
	if num < 1 || num > n {
		return command{}, fmt.Errorf("%w: %d is not between 1 and %d", ErrOutOfRange, num, n)
	}
	return command{kind: selectMove, index: num - 1}, nil
}
