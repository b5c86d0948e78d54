package prompt

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	t.Parallel()

	t.Run("reads successive lines", func(t *testing.T) {
		var out bytes.Buffer
		p := NewLinePrompter(strings.NewReader("?\r\n2\n"), &out)

		first, err := p.Prompt("Enter your move: ")
		require.NoError(t, err)
		second, err := p.Prompt("Enter your move: ")
		require.NoError(t, err)

		assert.Equal(t, "?", first)
		assert.Equal(t, "2", second)
		assert.Equal(t, "Enter your move: Enter your move: ", out.String())
	})

	t.Run("last line without newline", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader("3"), &bytes.Buffer{})
		got, err := p.Prompt("> ")
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})

	t.Run("end of input", func(t *testing.T) {
		p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})
		_, err := p.Prompt("> ")
		assert.ErrorIs(t, err, ErrInterrupted)
	})
}

func typeInto(m inputModel, s string) inputModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(inputModel)
}

func TestInputModel(t *testing.T) {
	t.Parallel()

	t.Run("enter submits value", func(t *testing.T) {
		m := typeInto(newInputModel("Enter your move: "), "2")

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(inputModel)

		require.NotNil(t, cmd)
		assert.True(t, m.done)
		assert.False(t, m.aborted)
		assert.Equal(t, "2", m.value)
		assert.Equal(t, "Enter your move: 2\n", m.View())
	})

	t.Run("ctrl+c aborts", func(t *testing.T) {
		m := typeInto(newInputModel("> "), "1")

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = next.(inputModel)

		require.NotNil(t, cmd)
		assert.True(t, m.aborted)
		assert.Empty(t, m.View())
	})

	t.Run("typing updates the view", func(t *testing.T) {
		m := typeInto(newInputModel("> "), "?")
		assert.Equal(t, "?", m.input.Value())
		assert.Contains(t, m.View(), "?")
	})
}
