package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unrevealed CellState = -2
	Mine       CellState = -1
	/*
	 * Every other value, 0 to 8, is an open square showing its
	 * surrounding mine count.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unrevealed:
		return "."
	case s == Mine:
		return "*"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// View is a display projection of a game. It holds no reference to the
// game it was rendered from.
type View struct {
	Width int
	Cells []CellState
}

func (v View) Height() int {
	if v.Width == 0 {
		return 0
	}
	return len(v.Cells) / v.Width
}

func (v View) At(x, y int) CellState {
	return v.Cells[y*v.Width+x]
}

func (v View) String() string {
	var (
		b   strings.Builder
		h   = v.Height()
		col = len(strconv.Itoa(v.Width - 1))
		row = max(len(strconv.Itoa(h-1)), 2)
	)

	fmt.Fprintf(&b, "%*s", row+1, "")
	for x := range v.Width {
		if x > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*d", col, x)
	}
	b.WriteByte('\n')

	for y := range h {
		fmt.Fprintf(&b, "%*d ", row, y)
		for x := range v.Width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", col, v.At(x, y).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
