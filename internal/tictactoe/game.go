package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("out of range")
	ErrOccupied   = errors.New("spot is already taken")
	ErrGameOver   = errors.New("game is over")
)

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in-progress"
	}
}

type Game struct {
	Board Board
	Turn  Mark
}

func NewGame() *Game {
	return &Game{Board: NewBoard(), Turn: X}
}

func (g *Game) Outcome() Outcome {
	switch g.Board.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}
	if g.Board.Full() {
		return Draw
	}
	return InProgress
}

func (g *Game) Validate(row, col int) error {
	if g.Outcome() != InProgress {
		return ErrGameOver
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: %d %d", ErrOutOfRange, row, col)
	}
	if g.Board[row][col] != Empty {
		return ErrOccupied
	}
	return nil
}

// Play puts the current player's mark at row, col. The turn passes to
// the other player only while the game is still in progress.
func (g *Game) Play(row, col int) error {
	if err := g.Validate(row, col); err != nil {
		return err
	}
	g.Board[row][col] = g.Turn
	if g.Outcome() == InProgress {
		g.Turn = g.Turn.Other()
	}
	return nil
}
