// Package render writes the game's console output: banners, the commitment,
// the move menu, the dominance grid and the final result.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/fairmoves/rules"
)

const (
	StartBanner  = "====================Start===================="
	FinishBanner = "====================Finish===================="
)

// Console renders game output to a writer.
type Console struct {
	out    io.Writer
	styles Styles
}

// Option configures a Console
type Option func(*lipgloss.Renderer)

// WithoutColor disables ANSI styling regardless of the terminal.
func WithoutColor() Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(termenv.Ascii)
	}
}

// New returns a console writing to out. Colour support is detected from out.
func New(out io.Writer, opts ...Option) *Console {
	r := lipgloss.NewRenderer(out)
	for _, opt := range opts {
		opt(r)
	}
	return &Console{out: out, styles: NewStyles(r)}
}

// Start prints the opening banner followed by the commitment digest.
func (c *Console) Start(digest string) {
	fmt.Fprintln(c.out, c.styles.Banner.Render(StartBanner))
	fmt.Fprintf(c.out, "HMAC: %s\n", c.styles.Digest.Render(digest))
}

// Finish prints the closing banner
func (c *Console) Finish() {
	fmt.Fprintln(c.out, c.styles.Banner.Render(FinishBanner))
}

// Menu lists the moves numbered from 1 along with the exit and help entries.
func (c *Console) Menu(moves rules.MoveSet) {
	var b strings.Builder
	b.WriteString("Available moves:\n")
	for i, name := range moves.Names() {
		fmt.Fprintf(&b, "%s\n", c.styles.Menu.Render(fmt.Sprintf("%d - %s", i+1, name)))
	}
	b.WriteString(c.styles.Hint.Render("0 - exit") + "\n")
	b.WriteString(c.styles.Hint.Render("? - help") + "\n")
	fmt.Fprint(c.out, b.String())
}

// Grid prints the dominance matrix as a bordered table.
func (c *Console) Grid(m rules.Matrix) {
	rows := m.Rows()
	for i, row := range rows {
		for j := 1; j < len(row); j++ {
			row[j] = c.outcomeStyle(m.At(i, j-1)).Render(row[j])
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.Border).
		BorderRow(true).
		Headers(m.Header()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return c.styles.Header
			}
			return c.styles.Cell
		})

	fmt.Fprintln(c.out, "Results are from the point of view of the row move:")
	fmt.Fprintln(c.out, t.Render())
}

// InputError reports a rejected answer.
func (c *Console) InputError(msg string) {
	fmt.Fprintln(c.out, c.styles.Error.Render("Error. "+msg))
}

// Result reveals both moves, the verdict and the secret key.
func (c *Console) Result(player, computer string, outcome rules.Outcome, key string) {
	fmt.Fprintf(c.out, "Your move: %s\n", player)
	fmt.Fprintf(c.out, "Computer move: %s\n", computer)
	fmt.Fprintf(c.out, "Result: %s\n", c.outcomeStyle(outcome).Render(outcome.Verdict()))
	fmt.Fprintf(c.out, "HMAC key: %s\n", c.styles.Digest.Render(key))
}

// Verified reports the outcome of an independent commitment check.
func (c *Console) Verified(ok bool, move string) {
	if ok {
		fmt.Fprintln(c.out, c.styles.Success.Render(fmt.Sprintf("HMAC verified: the computer committed to %s", move)))
		return
	}
	fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf("HMAC mismatch: the digest was not produced for %s with this key", move)))
}

func (c *Console) outcomeStyle(o rules.Outcome) lipgloss.Style {
	switch o {
	case rules.Win:
		return c.styles.Win
	case rules.Lose:
		return c.styles.Lose
	default:
		return c.styles.Draw
	}
}
