package mines

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// adjacency marker of a mined cell
const mined int8 = -1

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

type MoveResult int

const (
	Continue MoveResult = iota
	GameOver
)

func (r MoveResult) String() string {
	if r == GameOver {
		return "game over"
	}
	return "continue"
}

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// Board is the state of a single game. Won and Lost are terminal: once
// reached, Reveal and Flag leave the board untouched.
type Board struct {
	params   Params
	adjacent []int8 /* mined, or the number of mined neighbors */
	mines    mapset.Set[Coord]
	revealed mapset.Set[Coord]
	flagged  mapset.Set[Coord]
	status   Status
}

func newBoard(params Params) *Board {
	return &Board{
		params:   params,
		adjacent: make([]int8, params.Side*params.Side),
		mines:    mapset.New[Coord](),
		revealed: mapset.New[Coord](),
		flagged:  mapset.New[Coord](),
	}
}

func (b *Board) Params() Params {
	return b.params
}

func (b *Board) Side() int {
	return b.params.Side
}

func (b *Board) MineCount() int {
	return b.params.MineCount
}

func (b *Board) Status() Status {
	return b.status
}

func (b *Board) InBounds(row, col int) bool {
	side := b.params.Side
	return 0 <= row && row < side && 0 <= col && col < side
}

func (b *Board) Revealed(row, col int) bool {
	return b.revealed.Has(Coord{Row: row, Col: col})
}

func (b *Board) IsFlagged(row, col int) bool {
	return b.flagged.Has(Coord{Row: row, Col: col})
}

func (b *Board) RevealedCount() int {
	return b.revealed.Size()
}

func (b *Board) FlagCount() int {
	return b.flagged.Size()
}

// AdjacentMines returns the number of mines around a cell. ok is false when
// the cell is out of bounds or holds a mine itself.
func (b *Board) AdjacentMines(row, col int) (count int, ok bool) {
	if !b.InBounds(row, col) {
		return 0, false
	}
	v := b.adjacent[b.index(Coord{Row: row, Col: col})]
	if v == mined {
		return 0, false
	}
	return int(v), true
}

// Mines returns the mine layout in row-major order.
func (b *Board) Mines() []Coord {
	coords := make([]Coord, 0, b.mines.Size())
	b.mines.Each(func(c Coord) {
		coords = append(coords, c)
	})
	slices.SortFunc(coords, func(a, b Coord) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})
	return coords
}

// Reveal opens a cell. Opening a cell with no mined neighbors also opens
// everything around it, spreading until numbered cells form the border.
// Out of bounds and already revealed cells are ignored.
func (b *Board) Reveal(row, col int) MoveResult {
	if !b.InBounds(row, col) {
		return Continue
	}
	switch b.status {
	case Lost:
		return GameOver
	case Won:
		return Continue
	}

	start := Coord{Row: row, Col: col}
	if b.revealed.Has(start) {
		return Continue
	}
	if b.mines.Has(start) {
		b.open(start)
		b.status = Lost
		return GameOver
	}

	todo := newCelltodo(len(b.adjacent))
	b.open(start)
	todo.add(b.index(start))
	for !todo.empty() {
		i := todo.take()
		if b.adjacent[i] != 0 {
			continue
		}
		b.eachNeighbor(b.coord(i), func(n Coord) {
			if b.revealed.Has(n) || b.mines.Has(n) {
				return
			}
			b.open(n)
			todo.add(b.index(n))
		})
	}

	b.updateStatus()
	return Continue
}

// Flag marks a hidden cell as a suspected mine. Flags cannot be removed.
func (b *Board) Flag(row, col int) {
	if b.status != InProgress || !b.InBounds(row, col) {
		return
	}
	c := Coord{Row: row, Col: col}
	if b.revealed.Has(c) || b.flagged.Has(c) {
		return
	}
	b.flagged.Put(c)
	b.updateStatus()
}

// IsWon reports whether the flags sit on exactly the mined cells.
func (b *Board) IsWon() bool {
	if b.flagged.Size() != b.mines.Size() {
		return false
	}
	won := true
	b.flagged.Each(func(c Coord) {
		if !b.mines.Has(c) {
			won = false
		}
	})
	return won
}

// Render returns what the player sees. With revealAll every cell is shown
// as if it had been revealed.
func (b *Board) Render(revealAll bool) Grid {
	side := b.params.Side
	grid := make(Grid, side)
	for row := range side {
		grid[row] = make([]CellState, side)
		for col := range side {
			grid[row][col] = b.cellState(Coord{Row: row, Col: col}, revealAll)
		}
	}
	return grid
}

func (b *Board) cellState(c Coord, revealAll bool) CellState {
	switch {
	case revealAll || b.revealed.Has(c):
		if v := b.adjacent[b.index(c)]; v != mined {
			return CellState(v)
		}
		return Mine
	case b.flagged.Has(c):
		return Flagged
	default:
		return Hidden
	}
}

// A revealed cell is never flagged.
func (b *Board) open(c Coord) {
	b.revealed.Put(c)
	b.flagged.Remove(c)
}

func (b *Board) updateStatus() {
	if b.status == InProgress && b.IsWon() {
		b.status = Won
	}
}

func (b *Board) index(c Coord) int {
	return c.Row*b.params.Side + c.Col
}

func (b *Board) coord(index int) Coord {
	return Coord{Row: index / b.params.Side, Col: index % b.params.Side}
}

func (b *Board) eachNeighbor(c Coord, fn func(Coord)) {
	side := b.params.Side
	fromRow, toRow := max(0, c.Row-1), min(c.Row+1, side-1)
	fromCol, toCol := max(0, c.Col-1), min(c.Col+1, side-1)
	for row := fromRow; row <= toRow; row++ {
		for col := fromCol; col <= toCol; col++ {
			if row != c.Row || col != c.Col {
				fn(Coord{Row: row, Col: col})
			}
		}
	}
}
