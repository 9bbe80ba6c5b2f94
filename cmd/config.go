package main

import (
	"os"
	"strconv"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/log"
)

type config struct {
	seed     int64
	cellSize int
	logLevel log.Level
	logFile  string
}

func loadConfig() config {
	cfg := config{
		seed:     time.Now().UnixNano(),
		cellSize: game.DefaultCellSize,
		logLevel: log.InfoLevel,
		logFile:  os.Getenv("SNAKE_LOG_FILE"),
	}

	if raw := os.Getenv("SNAKE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn("Ignoring invalid SNAKE_SEED", "value", raw, "error", err)
		} else {
			cfg.seed = seed
		}
	}

	if raw := os.Getenv("SNAKE_CELL_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			log.Warn("Ignoring invalid SNAKE_CELL_SIZE", "value", raw)
		} else {
			cfg.cellSize = size
		}
	}

	if raw := os.Getenv("SNAKE_LOG_LEVEL"); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			log.Warn("Ignoring invalid SNAKE_LOG_LEVEL", "value", raw, "error", err)
		} else {
			cfg.logLevel = level
		}
	}

	return cfg
}
