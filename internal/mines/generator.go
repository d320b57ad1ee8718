package mines

import (
	"fmt"
	"math/rand/v2"
)

// Preset is one of the fixed board sizes offered to the player.
type Preset int

const (
	Small Preset = iota
	Medium
	Large
)

type Params struct {
	Side, MineCount int
}

var presetParams = [...]Params{
	Small:  {Side: 8, MineCount: 10},
	Medium: {Side: 16, MineCount: 40},
	Large:  {Side: 24, MineCount: 99},
}

// ParsePreset maps "S" and "M" to their presets. Any other input selects
// [Large].
func ParsePreset(s string) Preset {
	switch s {
	case "S":
		return Small
	case "M":
		return Medium
	default:
		return Large
	}
}

func (p Preset) Params() Params {
	if p < Small || p > Large {
		return presetParams[Large]
	}
	return presetParams[p]
}

func (p Preset) String() string {
	switch p {
	case Small:
		return "small"
	case Medium:
		return "medium"
	default:
		return "large"
	}
}

func (p Params) Unpack() (side int, mineCount int) {
	return p.Side, p.MineCount
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Side, p.Side, p.MineCount)
}

func (p Params) Validate() error {
	side, mineCount := p.Unpack()
	if side < 1 {
		return fmt.Errorf("%w: side must be positive (side = %d)", ErrInvalidParams, side)
	}
	if mineCount < 0 || mineCount > side*side {
		return fmt.Errorf(
			"%w: mine count must be within [0, %d] (mine count = %d)",
			ErrInvalidParams, side*side, mineCount,
		)
	}
	return nil
}

// NewGame creates a board for the preset and plants its mines at random.
func NewGame(p Preset, r *rand.Rand) *Board {
	b := newBoard(p.Params())
	b.randomizeMines(r)
	b.updateStatus()
	return b
}

// NewBoard creates a board with a fixed mine layout.
func NewBoard(params Params, mines []Coord) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != params.MineCount {
		return nil, fmt.Errorf(
			"%w: have %d, want %d", ErrMineCount, len(mines), params.MineCount,
		)
	}
	b := newBoard(params)
	for _, c := range mines {
		if !b.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: %v on %v", ErrMineOutOfBounds, c, params)
		}
		if b.mines.Has(c) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateMine, c)
		}
		b.plant(c)
	}
	b.updateStatus()
	return b, nil
}

// Coordinates already holding a mine are resampled until a free one comes up.
func (b *Board) randomizeMines(r *rand.Rand) {
	side, mineCount := b.params.Unpack()
	for range mineCount {
		c := Coord{Row: r.IntN(side), Col: r.IntN(side)}
		for b.mines.Has(c) {
			c = Coord{Row: r.IntN(side), Col: r.IntN(side)}
		}
		b.plant(c)
	}
}

func (b *Board) plant(c Coord) {
	b.adjacent[b.index(c)] = mined
	b.mines.Put(c)
	b.eachNeighbor(c, func(n Coord) {
		if i := b.index(n); b.adjacent[i] != mined {
			b.adjacent[i]++
		}
	})
}
