package main

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vancomm/console-games/internal/mines"
)

// MaxSide keeps row and column labels readable.
const MaxSide = 99

type Settings struct {
	Width     int    `schema:"width"`
	Height    int    `schema:"height"`
	MineCount int    `schema:"mines"`
	Board     string `schema:"board"`
	Seed      uint64 `schema:"seed"`
	NoClear   bool   `schema:"no_clear"`
}

func NewSettings() *Settings {
	return &Settings{Width: 10, Height: 10, MineCount: 10}
}

func (s *Settings) Flags(fs *pflag.FlagSet) {
	fs.IntP("width", "W", s.Width, "board width")
	fs.IntP("height", "H", s.Height, "board height")
	fs.IntP("mines", "m", s.MineCount, "number of mines")
	fs.StringP("board", "b", s.Board, "board as W:H:M, overrides width, height and mines")
	fs.Uint64("seed", s.Seed, "random seed, 0 picks one")
	fs.Bool("no-clear", s.NoClear, "do not clear the screen between turns")
}

func (s Settings) Params() (mines.GameParams, error) {
	if s.Board != "" {
		p, err := mines.ParseParams(s.Board)
		if err != nil {
			return mines.GameParams{}, err
		}
		return *p, nil
	}
	return mines.GameParams{Width: s.Width, Height: s.Height, MineCount: s.MineCount}, nil
}

func (s Settings) NewGame() (*mines.Game, error) {
	p, err := s.Params()
	if err != nil {
		return nil, err
	}
	return mines.New(p, s.Rand())
}

func (s Settings) Validate() error {
	p, err := s.Params()
	if err != nil {
		return err
	}
	var result *multierror.Error
	if p.Width > MaxSide {
		result = multierror.Append(result, fmt.Errorf("width must be at most %d", MaxSide))
	}
	if p.Height > MaxSide {
		result = multierror.Append(result, fmt.Errorf("height must be at most %d", MaxSide))
	}
	if err := p.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (s Settings) Fields() logrus.Fields {
	p, _ := s.Params()
	return logrus.Fields{
		"params":   p.String(),
		"seed":     s.Seed,
		"no_clear": s.NoClear,
	}
}

func (s Settings) Rand() *rand.Rand {
	if s.Seed != 0 {
		return rand.New(rand.NewPCG(s.Seed, s.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
