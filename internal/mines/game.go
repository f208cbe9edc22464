package mines

import (
	"fmt"
	"math/rand/v2"
)

type Result int

const (
	Safe Result = iota
	MineHit
)

func (r Result) String() string {
	if r == MineHit {
		return "mine-hit"
	}
	return "safe"
}

type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in-progress"
	}
}

func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Game is a single minefield. Mine positions never change after
// construction; revealed cells never become hidden again.
type Game struct {
	GameParams
	mines    []bool /* real mine points */
	revealed []bool /* player knowledge */
	exploded int    /* mine the player hit, -1 if none */
}

// New places params.MineCount mines uniformly at random.
func New(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount := params.Unpack()

	grid := make([]bool, width*height)

	/*
	 * Write down the list of possible mine locations, then pick n off
	 * the list at random.
	 */
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return newGame(params, grid), nil
}

// FromMines builds a game with mines at the given y*width+x indices.
func FromMines(width, height int, mines []int) (*Game, error) {
	params := GameParams{Width: width, Height: height, MineCount: len(mines)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid := make([]bool, params.Cells())
	for _, i := range mines {
		if i < 0 || i >= len(grid) {
			return nil, ConfigError{params, fmt.Sprintf("mine index %d out of range", i)}
		}
		if grid[i] {
			return nil, ConfigError{params, fmt.Sprintf("duplicate mine index %d", i)}
		}
		grid[i] = true
	}
	return newGame(params, grid), nil
}

func newGame(params GameParams, grid []bool) *Game {
	return &Game{
		GameParams: params,
		mines:      grid,
		revealed:   make([]bool, len(grid)),
		exploded:   -1,
	}
}

func (g *Game) Params() GameParams {
	return g.GameParams
}

func (g *Game) index(x, y int) int {
	return y*g.Width + x
}

func (g *Game) IsMine(x, y int) bool {
	return g.InBounds(x, y) && g.mines[g.index(x, y)]
}

func (g *Game) IsRevealed(x, y int) bool {
	return g.InBounds(x, y) && g.revealed[g.index(x, y)]
}

// CountAdjacentMines expects in-bounds coordinates.
func (g *Game) CountAdjacentMines(x, y int) int {
	c := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsMine(x+dx, y+dy) {
				c++
			}
		}
	}
	return c
}

// Reveal opens the cell at x, y. Out-of-bounds and already revealed
// cells are a safe no-op. Hitting a mine ends the game without marking
// the cell revealed. A finished game rejects every move with
// ErrGameOver.
func (g *Game) Reveal(x, y int) (Result, error) {
	if g.Outcome().Terminal() {
		return Safe, ErrGameOver
	}
	if !g.InBounds(x, y) || g.revealed[g.index(x, y)] {
		return Safe, nil
	}

	i := g.index(x, y)
	if g.mines[i] {
		g.exploded = i
		return MineHit, nil
	}

	/*
	 * Open the square, then keep opening the unopened neighbours of
	 * every square that turns out to have no neighbouring mines.
	 */
	var std celltodo
	g.revealed[i] = true
	std.add(i)
	for {
		j, ok := std.next()
		if !ok {
			break
		}
		cx, cy := j%g.Width, j/g.Width
		if g.CountAdjacentMines(cx, cy) != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := cx+dx, cy+dy
				if !g.InBounds(nx, ny) {
					continue
				}
				n := g.index(nx, ny)
				if !g.revealed[n] && !g.mines[n] {
					g.revealed[n] = true
					std.add(n)
				}
			}
		}
	}

	return Safe, nil
}

func (g *Game) Revealed() int {
	n := 0
	for _, r := range g.revealed {
		if r {
			n++
		}
	}
	return n
}

func (g *Game) HasWon() bool {
	return g.Revealed() == g.SafeCells()
}

func (g *Game) Outcome() Outcome {
	switch {
	case g.exploded >= 0:
		return Lost
	case g.HasWon():
		return Won
	default:
		return InProgress
	}
}

// Render projects the game onto a [View]. With revealAll every cell is
// shown, which is how a finished board is displayed.
func (g *Game) Render(revealAll bool) View {
	cells := make([]CellState, len(g.mines))
	for i := range cells {
		x, y := i%g.Width, i/g.Width
		switch {
		case !revealAll && !g.revealed[i]:
			cells[i] = Unrevealed
		case g.mines[i]:
			cells[i] = Mine
		default:
			cells[i] = CellState(g.CountAdjacentMines(x, y))
		}
	}
	return View{Width: g.Width, Cells: cells}
}
