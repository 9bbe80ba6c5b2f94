package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type canvasCell struct {
	r     rune
	style *lipgloss.Style
}

// Canvas is a fixed size rune grid. Shapes are clipped to its bounds.
type Canvas struct {
	width  int
	height int
	cells  [][]canvasCell
}

func NewCanvas(width, height int, background *lipgloss.Style) *Canvas {
	c := &Canvas{width: max(0, width), height: max(0, height)}
	c.cells = make([][]canvasCell, c.height)
	for row := range c.cells {
		c.cells[row] = make([]canvasCell, c.width)
		for col := range c.cells[row] {
			c.cells[row][col] = canvasCell{r: ' ', style: background}
		}
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) set(col, row int, r rune, style *lipgloss.Style) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.cells[row][col] = canvasCell{r: r, style: style}
}

func (c *Canvas) FillRect(col, row, w, h int, r rune, style *lipgloss.Style) {
	for y := row; y < row+h; y++ {
		for x := col; x < col+w; x++ {
			c.set(x, y, r, style)
		}
	}
}

func (c *Canvas) Text(col, row int, text string, style *lipgloss.Style) {
	for i, r := range []rune(text) {
		c.set(col+i, row, r, style)
	}
}

// String renders each row, batching runs of cells that share a style.
func (c *Canvas) String() string {
	var sb strings.Builder
	var run strings.Builder

	flush := func(style *lipgloss.Style) {
		if run.Len() == 0 {
			return
		}
		if style == nil {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(style.Render(run.String()))
		}
		run.Reset()
	}

	for row, cells := range c.cells {
		var current *lipgloss.Style
		for _, cell := range cells {
			if cell.style != current {
				flush(current)
				current = cell.style
			}
			run.WriteRune(cell.r)
		}
		flush(current)
		if row < c.height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
