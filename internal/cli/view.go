package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rayzchen/go3to4"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	selectedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("213"))
)

// stickerStyles maps each puzzle color to a colored block style.
var stickerStyles = map[go3to4.Color]lipgloss.Style{
	go3to4.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	go3to4.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
	go3to4.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255")),
	go3to4.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	go3to4.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	go3to4.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
	go3to4.Purple: lipgloss.NewStyle().Background(lipgloss.Color("93")).Foreground(lipgloss.Color("255")),
	go3to4.Pink:   lipgloss.NewStyle().Background(lipgloss.Color("213")).Foreground(lipgloss.Color("232")),
}

// sticker renders one colored block with the color's letter.
func sticker(c go3to4.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "  "
	}
	return style.Render(c.String() + " ")
}

// Sticker order on a piece follows the global axis order x, y, z, w, so
// the face color a schematic should show sits at a known end: cube pieces
// always carry an x sticker first, slice pieces carry their w sticker
// last, and ring pieces lead with their up/down sticker when they have
// one.
func firstColor(p go3to4.Piece) go3to4.Color {
	colors := p.Colors()
	if len(colors) == 0 {
		return go3to4.NoColor
	}
	return colors[0]
}

func lastColor(p go3to4.Piece) go3to4.Color {
	colors := p.Colors()
	if len(colors) == 0 {
		return go3to4.NoColor
	}
	return colors[len(colors)-1]
}

// renderGrid renders a 3x3 block of pieces, top row first, showing the
// sticker chosen by pick.
func renderGrid(grid *[3][3]go3to4.Piece, pick func(go3to4.Piece) go3to4.Color) []string {
	lines := make([]string, 3)
	for row := 2; row >= 0; row-- {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(pick(grid[row][col])))
		}
		lines[2-row] = b.String()
	}
	return lines
}

// RenderPuzzle draws the puzzle as a row of layer schematics laid out
// along the long axis, with the middle ring drawn as a cross.
func RenderPuzzle(p *go3to4.Puzzle) string {
	type block struct {
		label string
		lines []string
	}
	var blocks []block

	for i := 0; i < 3; i++ {
		layer := p.LeftCell[i]
		blocks = append(blocks, block{"L" + string(rune('1'+i)), renderGrid(&layer, firstColor)})
	}
	blocks = append(blocks, block{"In", renderGrid(&p.InnerSlice, lastColor)})
	for i := 0; i < 3; i++ {
		layer := p.RightCell[i]
		blocks = append(blocks, block{"R" + string(rune('1'+i)), renderGrid(&layer, firstColor)})
	}

	outer := block{"Out", renderGrid(&p.OuterSlice, lastColor)}
	if p.OuterSlicePos > 0 {
		blocks = append(blocks, outer)
	} else {
		blocks = append([]block{outer}, blocks...)
	}

	var rows [4]strings.Builder
	for _, blk := range blocks {
		rows[0].WriteString(labelStyle.Render(padLabel(blk.label)) + "  ")
		for i, line := range blk.lines {
			rows[i+1].WriteString(line + "  ")
		}
	}

	var b strings.Builder
	for i := range rows {
		b.WriteString(rows[i].String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderRing(p))
	return b.String()
}

func padLabel(s string) string {
	for len(s) < 6 {
		s += " "
	}
	return s
}

// renderRing draws the middle ring as a cross: top and bottom centers,
// and the front and back columns beside them.
func renderRing(p *go3to4.Puzzle) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Ring  "))
	b.WriteString("pos " + plusMinus(p.MiddleSlicePos))
	opening := "up"
	if p.MiddleSliceDir == go3to4.CellFront {
		opening = "front"
	}
	b.WriteString("  opening " + opening + "\n")

	b.WriteString("      " + sticker(firstColor(p.TopCell)) + "\n")
	for row := 2; row >= 0; row-- {
		b.WriteString("  ")
		b.WriteString(sticker(lastColor(p.BackCell[row])))
		b.WriteString("  ")
		b.WriteString(sticker(lastColor(p.FrontCell[row])))
		b.WriteString("\n")
	}
	b.WriteString("      " + sticker(firstColor(p.BottomCell)) + "\n")
	return b.String()
}

func plusMinus(n int) string {
	switch {
	case n > 0:
		return "+" + string(rune('0'+n))
	case n < 0:
		return "-" + string(rune('0'-n))
	default:
		return "0"
	}
}
