package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		log.Debug("Could not read terminal size, using fallback", "error", err)
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

// setupLogging points the logger at a file, or silences it: the alt screen owns stdout.
func setupLogging(cfg config) (func(), error) {
	log.SetLevel(cfg.logLevel)
	if cfg.logFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", cfg.logFile, err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func run() error {
	cfg := loadConfig()

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	gridWidth := width / cfg.cellSize
	gridHeight := height - ui.HelpRows

	state, err := game.NewGameState(gridWidth, gridHeight, cfg.cellSize, rand.New(rand.NewSource(cfg.seed)))
	if err != nil {
		return fmt.Errorf("terminal %dx%d too small: %w", width, height, err)
	}

	log.Info("Starting game", "grid_width", gridWidth, "grid_height", gridHeight, "cell_size", cfg.cellSize, "seed", cfg.seed)

	p := tea.NewProgram(ui.NewControllerModel(state, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	log.Info("Game stopped", "score", state.Score())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
}
