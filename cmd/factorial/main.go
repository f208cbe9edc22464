package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vancomm/console-games/internal/config"
	"github.com/vancomm/console-games/internal/factorial"
)

var log = logrus.New()

func run(args []string, stdout, stderr io.Writer) int {
	logging := config.NewLogging()

	fs := pflag.NewFlagSet("factorial", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: factorial [flags] N")
		fs.PrintDefaults()
	}
	logging.Flags(fs)

	if err := config.Load(fs, "factorial", args, logging); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := config.Validate(logging); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := logging.Apply(log); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	n, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(stderr, "%s is not an integer\n", fs.Arg(0))
		return 2
	}

	f, err := factorial.Factorial(n)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log.WithField("n", n).Debug("computed factorial")
	fmt.Fprintln(stdout, f)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
