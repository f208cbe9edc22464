package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/console-games/internal/console"
	"github.com/vancomm/console-games/internal/tictactoe"
)

func newSession(input ...string) (*session, *bytes.Buffer, *test.Hook) {
	var out bytes.Buffer
	log, hook := test.NewNullLogger()
	s := &session{
		con:  console.New(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, false),
		game: tictactoe.NewGame(),
		log:  log,
	}
	return s, &out, hook
}

func TestSessionXWins(t *testing.T) {
	s, out, hook := newSession("0 0", "1 0", "0 1", "1 1", "0 2")
	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), "X | X | X\n")
	assert.Contains(t, out.String(), "Player X wins!")
	assert.Equal(t, tictactoe.XWins, s.game.Outcome())
	assert.Equal(t, "X wins", hook.LastEntry().Data["outcome"])
}

func TestSessionDraw(t *testing.T) {
	s, out, _ := newSession("0 0", "0 1", "0 2", "1 1", "1 0", "1 2", "2 1", "2 0", "2 2")
	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), "It's a draw!")
}

func TestSessionRejectsBadMoves(t *testing.T) {
	s, out, _ := newSession("1", "a b", "3 0", "0 0", "0 0", "1 1")
	err := s.run(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Please enter two numbers separated by a space (0, 1, or 2).")
	assert.Contains(t, text, "Invalid input. Please enter numbers only (0, 1, or 2).")
	assert.Contains(t, text, "Out of range. Use 0, 1, or 2.")
	assert.Contains(t, text, "That spot is already taken! Try again.")
	assert.Contains(t, text, "Enter row and column for player O (e.g., 0 2): ")
	assert.Contains(t, text, "Exiting game.")

	assert.Equal(t, tictactoe.X, s.game.Board[0][0])
	assert.Equal(t, tictactoe.O, s.game.Board[1][1])
	assert.Equal(t, tictactoe.InProgress, s.game.Outcome())
}

func TestSessionCancelledContext(t *testing.T) {
	s, out, _ := newSession("0 0", "1 1")
	t.Cleanup(s.con.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.run(ctx))

	assert.Contains(t, out.String(), "Exiting game.")
	assert.Equal(t, tictactoe.Empty, s.game.Board[0][0])
	assert.Equal(t, tictactoe.InProgress, s.game.Outcome())
}

func TestSessionInterruptExits(t *testing.T) {
	s, out, _ := newSession("0 0")
	t.Cleanup(s.con.Close)

	s.con.Interrupt()
	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), "Exiting game.")
	assert.Equal(t, tictactoe.Empty, s.game.Board[0][0])
}
