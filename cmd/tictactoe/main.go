package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vancomm/console-games/internal/config"
	"github.com/vancomm/console-games/internal/console"
	"github.com/vancomm/console-games/internal/tictactoe"
)

var log = logrus.New()

type Settings struct {
	NoClear bool `schema:"no_clear"`
}

func main() {
	logging := config.NewLogging()
	settings := &Settings{}

	fs := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)
	logging.Flags(fs)
	fs.Bool("no-clear", settings.NoClear, "do not clear the screen between turns")

	if err := config.Load(fs, "tictactoe", os.Args[1:], logging, settings); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.Validate(logging); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logging.Apply(log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	entry := log.WithField("run", uuid.NewString())
	entry.Info("starting game")

	con := console.New(os.Stdin, os.Stdout, !settings.NoClear)
	s := &session{
		con:  con,
		game: tictactoe.NewGame(),
		log:  entry,
	}
	if err := console.Run(context.Background(), entry, con, s.run); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
