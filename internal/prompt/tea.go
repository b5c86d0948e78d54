package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeaPrompter asks each question with a Bubble Tea text input.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a prompter driving a Bubble Tea program on in/out.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Prompt runs a short-lived program until the player submits or aborts.
func (p *TeaPrompter) Prompt(label string) (string, error) {
	prog := tea.NewProgram(newInputModel(label), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m := final.(inputModel)
	if m.aborted {
		return "", ErrInterrupted
	}
	return m.value, nil
}

type inputModel struct {
	input   textinput.Model
	label   string
	value   string
	done    bool
	aborted bool
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Placeholder = "number, 0 or ?"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Prompt = label
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))

	return inputModel{input: ti, label: label}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		// Leave the submitted answer on screen like a plain prompt would.
		return m.label + m.value + "\n"
	}
	if m.aborted {
		return ""
	}
	return m.input.View() + "\n"
}
