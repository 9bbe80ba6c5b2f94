package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	introPlay = iota
	introQuit
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // introPlay or introQuit
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: introPlay, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			// only two buttons, any move flips the selection
			if m.selected == introPlay {
				m.selected = introQuit
			} else {
				m.selected = introPlay
			}
		case "enter", " ":
			selected := m.selected
			return m, func() tea.Msg { return IntroSubmitMsg(selected) }
		}
	}
	return m, nil
}

var snakeAscii = `
   ███████ ███    ██  █████  ██   ██ ███████
   ██      ████   ██ ██   ██ ██  ██  ██
   ███████ ██ ██  ██ ███████ █████   █████
        ██ ██  ██ ██ ██   ██ ██  ██  ██
   ███████ ██   ████ ██   ██ ██   ██ ███████

        ▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▀▀▀▀▄   ●
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("46")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(snakeAscii))
	sb.WriteString("\n")

	play := introButtonStyle.Render("Play")
	quit := introButtonStyle.Render("Quit")

	if m.selected == introPlay {
		play = introSelectedButtonStyle.Render("Play")
	} else {
		quit = introSelectedButtonStyle.Render("Quit")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, play, quit)

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
