package tictactoe

import "strings"

const Size = 3

type Mark byte

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string {
	return string(m)
}

func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

type Board [Size][Size]Mark

func NewBoard() Board {
	var b Board
	for r := range Size {
		for c := range Size {
			b[r][c] = Empty
		}
	}
	return b
}

// ParseBoard builds a board from rows of single-character cells, e.g.
// {"X", "X", "X"}. Anything other than X or O is treated as empty.
func ParseBoard(rows [Size][Size]string) Board {
	b := NewBoard()
	for r, row := range rows {
		for c, cell := range row {
			switch strings.ToUpper(cell) {
			case "X":
				b[r][c] = X
			case "O":
				b[r][c] = O
			}
		}
	}
	return b
}

func (b Board) line(r0, c0, dr, dc int) Mark {
	first := b[r0][c0]
	if first == Empty {
		return Empty
	}
	for i := 1; i < Size; i++ {
		if b[r0+i*dr][c0+i*dc] != first {
			return Empty
		}
	}
	return first
}

// Winner returns the mark owning a complete row, column or diagonal,
// or Empty when there is none.
func (b Board) Winner() Mark {
	for i := range Size {
		if m := b.line(i, 0, 0, 1); m != Empty {
			return m
		}
		if m := b.line(0, i, 1, 0); m != Empty {
			return m
		}
	}
	if m := b.line(0, 0, 1, 1); m != Empty {
		return m
	}
	return b.line(0, Size-1, 1, -1)
}

func (b Board) Full() bool {
	for _, row := range b {
		for _, m := range row {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b {
		cells := make([]string, Size)
		for c, m := range row {
			cells[c] = m.String()
		}
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteByte('\n')
		if r < Size-1 {
			sb.WriteString(strings.Repeat("-", 5))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
