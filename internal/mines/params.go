package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width     int  `schema:"width,required" json:"width"`
	Height    int  `schema:"height,required" json:"height"`
	MineCount int  `schema:"mine_count,required" json:"mine_count"`
	FloodFill bool `schema:"flood_fill" json:"flood_fill"`
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) CellCount() int {
	return p.Width * p.Height
}

func (p GameParams) Seed() string {
	f := 0
	if p.FloodFill {
		f = 1
	}
	return fmt.Sprintf("%d:%d:%d:%d", p.Width, p.Height, p.MineCount, f)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	f := 0
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d", &p.Width, &p.Height, &p.MineCount, &f,
	)
	if n != 4 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	p.FloodFill = f == 1
	return p, nil
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount >= p.CellCount() {
		return fmt.Errorf(
			"invalid mine count %d for a %dx%d board",
			p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
