package ui

import (
	"fmt"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	FrameInterval = time.Second / 60
	// HelpRows is the number of terminal rows below the field used by the help line.
	HelpRows = 1
)

var (
	voidColor = "233"

	voidStyle  = lipgloss.NewStyle().Background(lipgloss.Color(voidColor))
	bodyStyle  = lipgloss.NewStyle().Background(lipgloss.Color(voidColor)).Foreground(lipgloss.Color("34"))
	headStyle  = lipgloss.NewStyle().Background(lipgloss.Color(voidColor)).Foreground(lipgloss.Color("46")).Bold(true)
	foodStyle  = lipgloss.NewStyle().Background(lipgloss.Color(voidColor)).Foreground(lipgloss.Color("196"))
	scoreStyle = lipgloss.NewStyle().Background(lipgloss.Color(voidColor)).Foreground(lipgloss.Color("15")).Bold(true)

	cellRune = '█'
)

// FrameMsg is one render tick. ID ties it to the frame loop that scheduled it
// so a stale loop dies out after the game screen is left and re-entered.
type FrameMsg struct {
	ID int
	At time.Time
}

// BackToIntroMsg asks the controller to show the intro screen.
type BackToIntroMsg struct{}

// GameViewModel drives a GameState from Bubble Tea frames and key presses.
type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int

	state     *game.GameState
	keys      keyMap
	help      help.Model
	frameID   int
	lastFrame time.Time
	gameOver  GameOverState
}

func NewGameModel(state *game.GameState, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		state:        state,
		keys:         newKeyMap(),
		help:         help.New(),
	}
}

func frameCmd(id int) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	})
}

func (m GameViewModel) Init() tea.Cmd {
	return frameCmd(m.frameID)
}

// Resume starts a fresh frame loop. Frames from any earlier loop are ignored
// and the time spent away from the game screen is not fed to the simulation.
func (m GameViewModel) Resume() (GameViewModel, tea.Cmd) {
	m.frameID++
	m.lastFrame = time.Time{}
	return m, frameCmd(m.frameID)
}

func (m GameViewModel) State() *game.GameState {
	return m.state
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if msg.ID != m.frameID {
			return m, nil
		}
		var elapsed time.Duration
		if !m.lastFrame.IsZero() {
			elapsed = msg.At.Sub(m.lastFrame)
		}
		m.lastFrame = msg.At

		result := m.state.Advance(elapsed)
		if result.Collided {
			log.Info("Game over", "score", m.state.Score(), "length", len(m.state.Snake()))
		} else if result.Ate {
			log.Debug("Food eaten", "score", m.state.Score(), "food", m.state.Food())
		}
		m.keys.setGameOver(m.state.IsOver())
		return m, frameCmd(m.frameID)

	case tea.KeyMsg:
		m.keys.setGameOver(m.state.IsOver())

		switch {
		case key.Matches(msg, m.keys.Up):
			m.state.SetHeading(game.DirectionUp)
		case key.Matches(msg, m.keys.Down):
			m.state.SetHeading(game.DirectionDown)
		case key.Matches(msg, m.keys.Left):
			m.state.SetHeading(game.DirectionLeft)
		case key.Matches(msg, m.keys.Right):
			m.state.SetHeading(game.DirectionRight)
		case key.Matches(msg, m.keys.Restart):
			log.Info("Restarting game", "previous_score", m.state.Score())
			m.state.Reset()
			m.keys.setGameOver(false)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackToIntroMsg{} }
		}
		return m, nil
	}

	return m, nil
}

func (m GameViewModel) View() string {
	field := m.renderField()
	return lipgloss.JoinVertical(lipgloss.Left, field, m.help.View(m.keys))
}

// renderField maps every grid cell to a block of cellSize columns on one
// terminal row. The score sits on row 0, which food never uses.
func (m GameViewModel) renderField() string {
	cellSize := m.state.CellSize()
	canvas := NewCanvas(m.state.Width()*cellSize, m.state.Height(), &voidStyle)
	blockWidth := max(1, cellSize-1)

	food := m.state.Food()
	canvas.FillRect(food.X*cellSize, food.Y, blockWidth, 1, cellRune, &foodStyle)

	snake := m.state.Snake()
	for i, cell := range snake {
		style := &bodyStyle
		if i == len(snake)-1 {
			style = &headStyle
		}
		canvas.FillRect(cell.X*cellSize, cell.Y, blockWidth, 1, cellRune, style)
	}

	canvas.Text(1, 0, fmt.Sprintf("Score: %d", m.state.Score()), &scoreStyle)

	if m.state.IsOver() {
		m.gameOver.Draw(canvas, m.state.Score())
	}

	return canvas.String()
}
