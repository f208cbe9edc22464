package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/console-games/internal/console"
	"github.com/vancomm/console-games/internal/mines"
)

const prompt = "Enter x and y coordinates (or help): "

type session struct {
	con    *console.Console
	game   *mines.Game
	log    logrus.FieldLogger
	notice string
	moves  int
}

func (s *session) draw(revealAll bool) {
	s.con.Clear()
	s.con.Print(s.game.Render(revealAll).String())
}

func (s *session) run(ctx context.Context) error {
	for {
		s.draw(false)
		if s.notice != "" {
			s.con.Println(s.notice)
			s.notice = ""
		}

		line, err := s.con.Prompt(ctx, prompt)
		if err != nil {
			if console.Interrupted(err) {
				s.con.Println("\nExiting game.")
				s.log.WithField("moves", s.moves).Info("input closed")
				return nil
			}
			return err
		}

		c, err := parseCommand(line)
		if err != nil {
			s.notice = "Invalid input: " + err.Error()
			continue
		}

		switch c.name {
		case "help":
			s.notice = helpText
		case "quit":
			s.draw(true)
			s.con.Println("You gave up.")
			s.log.WithField("moves", s.moves).Info("player forfeited")
			return nil
		case "o":
			if done, err := s.open(c.x, c.y); err != nil || done {
				return err
			}
		}
	}
}

func (s *session) open(x, y int) (done bool, err error) {
	switch {
	case !s.game.InBounds(x, y):
		// the engine ignores it as well; tell the player why nothing happened
		s.notice = fmt.Sprintf("(%d, %d) is outside the %dx%d board.", x, y, s.game.Width, s.game.Height)
	case s.game.IsRevealed(x, y):
		s.notice = fmt.Sprintf("(%d, %d) is already revealed.", x, y)
	}

	res, err := s.game.Reveal(x, y)
	if err != nil {
		return true, err
	}
	s.moves++
	s.log.WithFields(logrus.Fields{
		"x": x, "y": y,
		"result":   res.String(),
		"revealed": s.game.Revealed(),
	}).Debug("reveal")

	switch s.game.Outcome() {
	case mines.Lost:
		s.draw(true)
		s.con.Println("Game Over! You hit a mine.")
	case mines.Won:
		s.draw(true)
		s.con.Println("Congratulations! You've won the game.")
	default:
		return false, nil
	}
	s.log.WithFields(logrus.Fields{
		"outcome": s.game.Outcome().String(),
		"moves":   s.moves,
	}).Info("game over")
	return true, nil
}
