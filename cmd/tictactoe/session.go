package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/console-games/internal/console"
	"github.com/vancomm/console-games/internal/tictactoe"
)

type session struct {
	con  *console.Console
	game *tictactoe.Game
	log  logrus.FieldLogger
}

func (s *session) draw() {
	s.con.Clear()
	s.con.Print(s.game.Board.String())
}

// readMove prompts until the current player enters a legal move.
func (s *session) readMove(ctx context.Context) (row, col int, err error) {
	for {
		line, err := s.con.Prompt(ctx, fmt.Sprintf(
			"Enter row and column for player %s (e.g., 0 2): ", s.game.Turn,
		))
		if err != nil {
			return 0, 0, err
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			s.con.Println("Please enter two numbers separated by a space (0, 1, or 2).")
			continue
		}
		if row, err = strconv.Atoi(parts[0]); err == nil {
			col, err = strconv.Atoi(parts[1])
		}
		if err != nil {
			s.con.Println("Invalid input. Please enter numbers only (0, 1, or 2).")
			continue
		}

		switch err := s.game.Validate(row, col); {
		case errors.Is(err, tictactoe.ErrOutOfRange):
			s.con.Println("Out of range. Use 0, 1, or 2.")
		case errors.Is(err, tictactoe.ErrOccupied):
			s.con.Println("That spot is already taken! Try again.")
		case err != nil:
			return 0, 0, err
		default:
			return row, col, nil
		}
	}
}

func (s *session) run(ctx context.Context) error {
	for {
		s.draw()
		row, col, err := s.readMove(ctx)
		if err != nil {
			if console.Interrupted(err) {
				s.con.Println("\nExiting game.")
				return nil
			}
			return err
		}

		player := s.game.Turn
		if err := s.game.Play(row, col); err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"player": player.String(), "row": row, "col": col,
		}).Debug("move")

		outcome := s.game.Outcome()
		switch outcome {
		case tictactoe.XWins, tictactoe.OWins:
			s.draw()
			s.con.Printf("Player %s wins!\n", player)
		case tictactoe.Draw:
			s.draw()
			s.con.Println("It's a draw!")
		default:
			continue
		}
		s.log.WithField("outcome", outcome.String()).Info("game over")
		return nil
	}
}
