package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what the player gets to see of a cell.
type CellState int8

const (
	Hidden  CellState = -2
	Flagged CellState = -1
	Mine    CellState = 64
	// 0-8 for a revealed safe cell with given number of mined neighbors
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "-"
	case Flagged:
		return "F"
	case Mine:
		return "*"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Count reports the adjacency count of a revealed safe cell.
func (s CellState) Count() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

// Grid is a snapshot of the board, indexed [row][col].
type Grid [][]CellState

func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, s := range row {
			fmt.Fprint(&b, s.String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
