package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

// width of a rendered cell, in terminal columns
const cellWidth = 3

type Glyphs struct {
	Hidden string
	Flag   string
	Mine   string
}

var DefaultGlyphs = Glyphs{Hidden: "--", Flag: "▶", Mine: "☀"}

var (
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	countStyles = [...]lipgloss.Style{
		0: lipgloss.NewStyle().Faint(true),
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
)

// Renderer prints boards as a numbered text grid.
type Renderer struct {
	Glyphs Glyphs
	Styled bool
}

func NewRenderer(styled bool) Renderer {
	return Renderer{Glyphs: DefaultGlyphs, Styled: styled}
}

func (r Renderer) Render(w io.Writer, b *mines.Board, revealAll bool) error {
	var (
		grid = b.Render(revealAll)
		side = len(grid)
		sb   strings.Builder
	)

	sb.WriteString("    ")
	for col := range side {
		fmt.Fprintf(&sb, "%-*d", cellWidth, col+1)
	}
	sb.WriteString("\n   " + strings.Repeat("-", side*cellWidth) + "\n")

	for row, cells := range grid {
		fmt.Fprintf(&sb, "%-2d| ", row+1)
		for _, s := range cells {
			sb.WriteString(r.cell(s))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r Renderer) cell(s mines.CellState) string {
	var (
		glyph string
		style lipgloss.Style
	)
	switch s {
	case mines.Hidden:
		glyph, style = r.Glyphs.Hidden, hiddenStyle
	case mines.Flagged:
		glyph, style = r.Glyphs.Flag, flagStyle
	case mines.Mine:
		glyph, style = r.Glyphs.Mine, mineStyle
	default:
		glyph = s.String()
		if n, ok := s.Count(); ok {
			style = countStyles[n]
		}
	}
	if r.Styled {
		glyph = style.Render(glyph)
	}
	return glyph + strings.Repeat(" ", max(1, cellWidth-lipgloss.Width(glyph)))
}
