package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairmoves/internal/fairness"
	"github.com/lox/fairmoves/internal/prompt"
	"github.com/lox/fairmoves/internal/render"
	"github.com/lox/fairmoves/rules"
)

// scriptedPrompter answers prompts from a fixed list and reports
// ErrInterrupted once it runs out.
type scriptedPrompter struct {
	answers []string
	asked   int
	before  func(n int)
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if p.before != nil {
		p.before(p.asked)
	}
	if p.asked >= len(p.answers) {
		return "", prompt.ErrInterrupted
	}
	a := p.answers[p.asked]
	p.asked++
	return a, nil
}

type brokenPrompter struct{}

func (brokenPrompter) Prompt(string) (string, error) {
	return "", errors.New("terminal gone")
}

// fixedRandom picks the computer move at index pick (for games of up to four
// moves) and yields a key of repeated 0x11 bytes.
func fixedRandom(pick byte) io.Reader {
	return bytes.NewReader(append([]byte{pick}, bytes.Repeat([]byte{0x11}, fairness.KeyBytes)...))
}

func classicMoves(t *testing.T) rules.MoveSet {
	t.Helper()
	moves, err := rules.NewMoveSet([]string{"Rock", "Paper", "Scissors"})
	require.NoError(t, err)
	return moves
}

func newTestSession(t *testing.T, pick byte, clock quartz.Clock) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := New(classicMoves(t), render.New(&out, render.WithoutColor()), Config{
		Random: fixedRandom(pick),
		Clock:  clock,
		Logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	})
	require.NoError(t, err)
	return s, &out
}

func TestNewCommitsBeforeAnyInput(t *testing.T) {
	s, out := newTestSession(t, 2, nil)

	key := strings.Repeat("11", fairness.KeyBytes)
	assert.Equal(t, Init, s.State())
	assert.Equal(t, fairness.Sign(key, "Scissors"), s.Digest())
	assert.Empty(t, out.String(), "nothing is printed until Run")
}

func TestRunResolvesRound(t *testing.T) {
	tests := []struct {
		name    string
		pick    byte
		answer  string
		outcome rules.Outcome
		verdict string
	}{
		{"rock beats scissors", 2, "1", rules.Win, "Result: You win!"},
		{"rock loses to paper", 1, "1", rules.Lose, "Result: Computer wins!"},
		{"paper draws paper", 1, "2", rules.Draw, "Result: Draw!"},
		{"surrounding spaces are ignored", 0, " 3 ", rules.Lose, "Result: Computer wins!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestSession(t, tt.pick, nil)

			res, err := s.Run(&scriptedPrompter{answers: []string{tt.answer}})
			require.NoError(t, err)

			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Equal(t, int(tt.pick), res.Computer)
			assert.Equal(t, Resolved, s.State())
			assert.True(t, fairness.Check(res.Key, res.ComputerMove, res.Digest))
			assert.Contains(t, out.String(), tt.verdict)
			assert.Contains(t, out.String(), "HMAC key: "+res.Key)
		})
	}
}

func TestRunOutputOrder(t *testing.T) {
	s, out := newTestSession(t, 2, nil)

	res, err := s.Run(&scriptedPrompter{answers: []string{"?", "7", "rock", "1"}})
	require.NoError(t, err)

	text := out.String()
	order := []string{
		render.StartBanner,
		"HMAC: " + res.Digest,
		"Available moves:",
		"Moves",
		"Available moves:",
		"Error. Please choose from available moves!",
		"Available moves:",
		"Error. Please choose from available moves!",
		"Available moves:",
		"Your move: Rock",
		"Computer move: Scissors",
		"Result: You win!",
		"HMAC key: " + res.Key,
		render.FinishBanner,
	}

	pos := 0
	for _, want := range order {
		idx := strings.Index(text[pos:], want)
		require.GreaterOrEqual(t, idx, 0, "expected %q after offset %d in:\n%s", want, pos, text)
		pos += idx + len(want)
	}

	// The key is only printed once, at the reveal.
	assert.Equal(t, 1, strings.Count(text, res.Key))
}

func TestRunKeepsCommitmentAcrossInvalidInput(t *testing.T) {
	s, out := newTestSession(t, 0, nil)
	digest := s.Digest()

	answers := make([]string, 0, 1001)
	for i := 0; i < 1000; i++ {
		answers = append(answers, "nope")
	}
	answers = append(answers, "2")

	res, err := s.Run(&scriptedPrompter{answers: answers})
	require.NoError(t, err)

	assert.Equal(t, digest, res.Digest)
	assert.Equal(t, 1000, strings.Count(out.String(), "Error."))
	assert.Equal(t, 1, strings.Count(out.String(), "HMAC: "))
}

func TestRunExit(t *testing.T) {
	t.Run("exit selected", func(t *testing.T) {
		s, out := newTestSession(t, 0, nil)

		res, err := s.Run(&scriptedPrompter{answers: []string{"0"}})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrExit)
		assert.Equal(t, AwaitingMove, s.State())

		text := out.String()
		assert.Contains(t, text, render.FinishBanner)
		assert.NotContains(t, text, "Result:")
		assert.NotContains(t, text, "HMAC key:")
	})

	t.Run("input closed", func(t *testing.T) {
		s, _ := newTestSession(t, 0, nil)

		_, err := s.Run(&scriptedPrompter{})
		assert.ErrorIs(t, err, ErrExit)
	})
}

func TestRunPromptFailure(t *testing.T) {
	s, _ := newTestSession(t, 0, nil)

	_, err := s.Run(brokenPrompter{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExit)
	assert.Contains(t, err.Error(), "terminal gone")
}

func TestRunIsSingleRound(t *testing.T) {
	s, _ := newTestSession(t, 0, nil)

	_, err := s.Run(&scriptedPrompter{answers: []string{"1"}})
	require.NoError(t, err)

	_, err = s.Run(&scriptedPrompter{answers: []string{"1"}})
	assert.ErrorIs(t, err, ErrRoundOver)
}

func TestRunReportsElapsed(t *testing.T) {
	mClock := quartz.NewMock(t)
	s, _ := newTestSession(t, 0, mClock)

	p := &scriptedPrompter{
		answers: []string{"?", "1"},
		before: func(int) {
			mClock.Advance(1500 * time.Millisecond).MustWait(context.Background())
		},
	}

	res, err := s.Run(p)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, res.Elapsed)
}

func TestNewRandomUnavailable(t *testing.T) {
	_, err := New(classicMoves(t), render.New(io.Discard), Config{Random: bytes.NewReader(nil)})
	assert.ErrorIs(t, err, fairness.ErrRandomUnavailable)
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		input   string
		want    command
		wantErr error
	}{
		{"0", command{kind: exitGame}, nil},
		{"?", command{kind: showHelp}, nil},
		{"1", command{kind: selectMove, index: 0}, nil},
		{"5", command{kind: selectMove, index: 4}, nil},
		{" 3\t", command{kind: selectMove, index: 2}, nil},
		{"6", command{}, ErrOutOfRange},
		{"-1", command{}, ErrOutOfRange},
		{"", command{}, ErrUnknownInput},
		{"Rock", command{}, ErrUnknownInput},
		{"1.5", command{}, ErrUnknownInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseInput(tt.input, 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "init", Init.String())
	assert.Equal(t, "awaiting-move", AwaitingMove.String())
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "unknown", State(9).String())
}
