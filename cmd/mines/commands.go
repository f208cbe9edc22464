package main

import (
	"errors"
	"strconv"
	"strings"
)

type command struct {
	name string
	x, y int
}

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o":    2,
	"help": 0,
	"?":    0,
	"q":    0,
	"quit": 0,
	"exit": 0,
}

const helpText = `Commands:
  X Y      reveal the cell in column X, row Y
  o X Y    same as above
  help, ?  show this help
  q, quit  give up and show the board`

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// parseCommand accepts a known command or a bare "X Y" pair, which is
// shorthand for "o X Y".
func parseCommand(line string) (c command, err error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return c, errors.New("enter coordinates or a command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		if len(parts) != 2 {
			return c, errors.New("unknown command")
		}
		parts = append([]string{"o"}, parts...)
		nargs = 2
	}
	if nargs != len(parts)-1 {
		return c, errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		c.name = "o"
		c.x, c.y, err = parseXY(parts[1:])
	case "help", "?":
		c.name = "help"
	default:
		c.name = "quit"
	}
	return
}
