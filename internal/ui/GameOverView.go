package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	gameOverTitle   = "G A M E   O V E R"
	gameOverMessage = "Game Over! Press R to Restart"
	gameOverPadding = 2
)

var (
	gameOverBoxStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236"))

	gameOverTitleStyle = gameOverBoxStyle.
				Foreground(lipgloss.Color("9")).
				Bold(true)

	gameOverTextStyle = gameOverBoxStyle.
				Foreground(lipgloss.Color("15"))

	gameOverFaintStyle = gameOverBoxStyle.
				Foreground(lipgloss.Color("245"))
)

// GameOverState draws the overlay shown on top of the field after a crash.
type GameOverState struct{}

// Draw centers the overlay box on the canvas, clipping it on tiny fields.
func (g GameOverState) Draw(c *Canvas, finalScore int) {
	lines := []struct {
		text  string
		style *lipgloss.Style
	}{
		{gameOverTitle, &gameOverTitleStyle},
		{"", nil},
		{gameOverMessage, &gameOverTextStyle},
		{fmt.Sprintf("Final score: %d", finalScore), &gameOverFaintStyle},
	}

	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, len([]rune(line.text)))
	}
	boxWidth += 2 * gameOverPadding
	boxHeight := len(lines) + 2

	left := max(0, (c.Width()-boxWidth)/2)
	top := max(0, (c.Height()-boxHeight)/2)

	c.FillRect(left, top, boxWidth, boxHeight, ' ', &gameOverBoxStyle)
	for i, line := range lines {
		if line.text == "" {
			continue
		}
		col := left + (boxWidth-len([]rune(line.text)))/2
		c.Text(col, top+1+i, line.text, line.style)
	}
}
