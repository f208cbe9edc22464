package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

func (p GameParams) SafeCells() int {
	return p.Cells() - p.MineCount
}

// String returns the compact W:H:M form accepted by [ParseParams].
func (p GameParams) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseParams(s string) (*GameParams, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf(`invalid game params "%s" (want W:H:M)`, s)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf(`invalid game params "%s": %w`, s, err)
		}
		nums[i] = n
	}
	return &GameParams{Width: nums[0], Height: nums[1], MineCount: nums[2]}, nil
}

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return ConfigError{p, "width and height must be positive"}
	case p.MineCount <= 0 || p.MineCount >= p.Cells():
		return ConfigError{p, fmt.Sprintf(
			"mine count must be between 1 and %d", p.Cells()-1,
		)}
	}
	return nil
}

func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
