package ui

import (
	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	GameScreen
)

// IntroSubmitMsg carries the chosen intro button: introPlay or introQuit.
type IntroSubmitMsg int

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	GameModel  GameViewModel

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(state *game.GameState, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		GameModel:  NewGameModel(state, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case GameScreen:
		return m.GameModel.View()
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var updated tea.Model

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			log.Info("Quitting", "score", m.GameModel.State().Score())
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		updated, _ = m.GameModel.Update(msg)
		m.GameModel = updated.(GameViewModel)
		return m, nil

	case IntroSubmitMsg:
		if msg == introQuit {
			return m, tea.Quit
		}
		log.Debug("Entering game screen")
		m.CurrentScreen = GameScreen
		m.GameModel, cmd = m.GameModel.Resume()
		return m, cmd

	case BackToIntroMsg:
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()
	}

	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case GameScreen:
		updated, cmd = m.GameModel.Update(msg)
		m.GameModel = updated.(GameViewModel)
	}

	return m, cmd
}
