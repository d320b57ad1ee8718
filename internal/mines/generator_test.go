package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countMines counts mined neighbors straight from the mine layout.
func countMines(layout []Coord, side int, c Coord) int {
	isMine := make(map[Coord]bool, len(layout))
	for _, m := range layout {
		isMine[m] = true
	}
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if (dr != 0 || dc != 0) &&
				0 <= n.Row && n.Row < side && 0 <= n.Col && n.Col < side &&
				isMine[n] {
				count++
			}
		}
	}
	return count
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input string
		want  Preset
	}{
		{"S", Small},
		{"M", Medium},
		{"L", Large},
		{"", Large},
		{"s", Large},
		{"XL", Large},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, ParsePreset(test.input), "input %q", test.input)
	}
}

func TestPresetParams(t *testing.T) {
	assert.Equal(t, Params{Side: 8, MineCount: 10}, Small.Params())
	assert.Equal(t, Params{Side: 16, MineCount: 40}, Medium.Params())
	assert.Equal(t, Params{Side: 24, MineCount: 99}, Large.Params())
	assert.Equal(t, Large.Params(), Preset(42).Params())
	assert.Equal(t, "8x8(10)", Small.Params().String())
}

func TestNewGame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		preset Preset
	}{
		{name: "small", preset: Small},
		{name: "medium", preset: Medium},
		{name: "large", preset: Large},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				b := NewGame(test.preset, r)
				side, mineCount := test.preset.Params().Unpack()

				layout := b.Mines()
				require.Len(t, layout, mineCount)
				assert.Equal(t, side, b.Side())
				assert.Equal(t, mineCount, b.MineCount())
				assert.Equal(t, InProgress, b.Status())
				assert.Zero(t, b.RevealedCount())
				assert.Zero(t, b.FlagCount())

				seen := make(map[Coord]bool)
				for _, m := range layout {
					assert.True(t, b.InBounds(m.Row, m.Col), "mine %v", m)
					assert.False(t, seen[m], "duplicate mine %v", m)
					seen[m] = true
				}

				for row := range side {
					for col := range side {
						c := Coord{Row: row, Col: col}
						count, ok := b.AdjacentMines(row, col)
						if seen[c] {
							assert.False(t, ok, "mine %v has an adjacency count", c)
							continue
						}
						require.True(t, ok, "safe cell %v has no adjacency count", c)
						assert.Equal(t, countMines(layout, side, c), count, "cell %v", c)
					}
				}
			}
		})
	}
}

func TestNewGameDeterministic(t *testing.T) {
	a := NewGame(Medium, rand.New(rand.NewPCG(7, 7)))
	b := NewGame(Medium, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a.Mines(), b.Mines())
}

func TestNewBoard(t *testing.T) {
	small := Small.Params()

	tests := []struct {
		name   string
		params Params
		mines  []Coord
		err    error
	}{
		{
			name:   "valid",
			params: Params{Side: 3, MineCount: 2},
			mines:  []Coord{{0, 0}, {2, 2}},
		},
		{
			name:   "no mines",
			params: Params{Side: 2, MineCount: 0},
		},
		{
			name:   "zero side",
			params: Params{Side: 0, MineCount: 0},
			err:    ErrInvalidParams,
		},
		{
			name:   "too many mines",
			params: Params{Side: 2, MineCount: 5},
			mines:  []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 1}},
			err:    ErrInvalidParams,
		},
		{
			name:   "count mismatch",
			params: small,
			mines:  []Coord{{0, 0}},
			err:    ErrMineCount,
		},
		{
			name:   "out of bounds",
			params: Params{Side: 3, MineCount: 1},
			mines:  []Coord{{3, 0}},
			err:    ErrMineOutOfBounds,
		},
		{
			name:   "negative",
			params: Params{Side: 3, MineCount: 1},
			mines:  []Coord{{0, -1}},
			err:    ErrMineOutOfBounds,
		},
		{
			name:   "duplicate",
			params: Params{Side: 3, MineCount: 2},
			mines:  []Coord{{1, 1}, {1, 1}},
			err:    ErrDuplicateMine,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := NewBoard(test.params, test.mines)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.params, b.Params())
			assert.Len(t, b.Mines(), test.params.MineCount)
		})
	}
}

func TestNewBoardAdjacency(t *testing.T) {
	layout := []Coord{{0, 0}, {0, 1}, {2, 2}}
	b, err := NewBoard(Params{Side: 4, MineCount: 3}, layout)
	require.NoError(t, err)

	want := [][]int{
		{-1, -1, 1, 0},
		{2, 3, 2, 1},
		{0, 1, -1, 1},
		{0, 1, 1, 1},
	}
	for row := range want {
		for col, n := range want[row] {
			count, ok := b.AdjacentMines(row, col)
			if n < 0 {
				assert.False(t, ok, "%d:%d", row, col)
			} else {
				assert.True(t, ok, "%d:%d", row, col)
				assert.Equal(t, n, count, "%d:%d", row, col)
			}
		}
	}

	_, ok := b.AdjacentMines(4, 0)
	assert.False(t, ok)
}
