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
)

var log = logrus.New()

func main() {
	logging := config.NewLogging()
	game := NewSettings()

	fs := pflag.NewFlagSet("mines", pflag.ContinueOnError)
	logging.Flags(fs)
	game.Flags(fs)

	if err := config.Load(fs, "mines", os.Args[1:], logging, game); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := config.Validate(logging, game); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logging.Apply(log); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	entry := log.WithField("run", uuid.NewString())
	entry.WithFields(logging.Fields()).WithFields(game.Fields()).Debug("config")

	g, err := game.NewGame()
	if err != nil {
		log.Fatal("unable to create game: ", err)
	}
	entry.WithField("params", g.Params().String()).Info("starting game")

	con := console.New(os.Stdin, os.Stdout, !game.NoClear)
	s := &session{
		con:  con,
		game: g,
		log:  entry,
	}
	if err := console.Run(context.Background(), entry, con, s.run); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
