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
	"github.com/vancomm/console-games/internal/ledger"
)

var log = logrus.New()

func main() {
	logging := config.NewLogging()

	fs := pflag.NewFlagSet("checkbook", pflag.ContinueOnError)
	logging.Flags(fs)

	if err := config.Load(fs, "checkbook", os.Args[1:], logging); err != nil {
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

	con := console.New(os.Stdin, os.Stdout, false)
	s := &session{
		con:  con,
		book: &ledger.Checkbook{},
		log:  entry,
	}
	if err := console.Run(context.Background(), entry, con, s.run); err != nil {
		log.Fatal("exit reason: ", err)
	}
	entry.WithField("balance", s.book.Balance().String()).Info("closing checkbook")
}
