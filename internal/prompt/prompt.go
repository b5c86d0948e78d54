// Package prompt reads the player's answers from a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInterrupted is returned when the player aborts the prompt (Ctrl+C, Esc)
// or the input is exhausted.
var ErrInterrupted = errors.New("input interrupted")

// Prompter asks a question and returns one line of answer.
type Prompter interface {
	Prompt(label string) (string, error)
}

// LinePrompter prints the label and reads a single line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and echoing labels to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and returns the next line without its line ending.
// End of input yields ErrInterrupted.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := io.WriteString(p.out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInterrupted
			}
			return strings.TrimRight(line, "\r"), nil
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
