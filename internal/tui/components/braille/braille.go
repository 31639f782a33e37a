// Package braille turns drawille canvases into fixed-size, coloured terminal
// text and composes styled layers cell by cell.
package braille

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"
)

const (
	// DotsPerCol and DotsPerRow are the braille dots in one terminal cell.
	DotsPerCol = 2
	DotsPerRow = 4

	Empty rune = '\u2800'
)

// Frame extracts the canvas as exactly height/4 lines of width/2 runes.
func Frame(canvas *drawille.Canvas, width, height int) string {
	var (
		charWidth  = width / DotsPerCol
		charHeight = height / DotsPerRow
		rows       = canvas.Rows(0, 0, width, height)
		lines      = make([]string, 0, charHeight)
	)

	for i := range charHeight {
		if i >= len(rows) {
			lines = append(lines, strings.Repeat(" ", charWidth))
			continue
		}
		line := rows[i]
		runeCount := len([]rune(line))
		if runeCount < charWidth {
			line += strings.Repeat(" ", charWidth-runeCount)
		} else if runeCount > charWidth {
			line = string([]rune(line)[:charWidth])
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// IsBraille reports whether r is in the braille block (U+2800 to U+28FF).
func IsBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// HasDots reports whether r is a braille character with at least one dot.
func HasDots(r rune) bool {
	return IsBraille(r) && r != Empty
}

// Combine ORs the dots of two braille characters together.
func Combine(a, b rune) rune {
	return Empty + ((a - Empty) | (b - Empty))
}

// Layer is one frame of the same shape as every other layer it is composed
// with, drawn in a single colour.
type Layer struct {
	Frame string
	Color color.Color
}

// Compose stacks layers bottom to top. Each cell ORs the dots of every layer
// and takes the colour of the topmost layer with dots in it; cells without
// dots render as spaces.
func Compose(layers ...Layer) string {
	if len(layers) == 0 {
		return ""
	}

	var (
		grids  = make([][][]rune, len(layers))
		styles = make([]lipgloss.Style, len(layers))
	)
	for i, l := range layers {
		lines := strings.Split(l.Frame, "\n")
		grids[i] = make([][]rune, len(lines))
		for j, line := range lines {
			grids[i][j] = []rune(line)
		}
		styles[i] = lipgloss.NewStyle().Foreground(l.Color)
	}

	base := grids[0]
	result := make([]string, len(base))
	for y := range base {
		var lineBuilder strings.Builder
		for x := range base[y] {
			var (
				cell = Empty
				top  = -1
			)
			for i := range grids {
				r := at(grids[i], x, y)
				if !HasDots(r) {
					continue
				}
				cell = Combine(cell, r)
				top = i
			}

			// a bottom layer keeps its blank braille cells so the shape stays
			// intact; anything else without dots is a space.
			switch {
			case top >= 0:
				lineBuilder.WriteString(styles[top].Render(string(cell)))
			case IsBraille(base[y][x]):
				lineBuilder.WriteString(styles[0].Render(string(base[y][x])))
			default:
				lineBuilder.WriteRune(' ')
			}
		}
		result[y] = lineBuilder.String()
	}

	return strings.Join(result, "\n")
}

func at(grid [][]rune, x, y int) rune {
	if y >= len(grid) || x >= len(grid[y]) {
		return ' '
	}
	return grid[y][x]
}
