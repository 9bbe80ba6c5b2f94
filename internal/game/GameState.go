package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalidGrid            = errors.New("grid dimensions must be positive")
	ErrInitialCellOutOfBounds = errors.New("initial cell outside grid")
	ErrNilRandomSource        = errors.New("random source is nil")
)

// RandomSource is the subset of *math/rand.Rand used for food placement.
type RandomSource interface {
	Intn(n int) int
}

// StepResult describes what a call to Advance did.
type StepResult struct {
	Moved    bool
	Ate      bool
	Collided bool
}

// GameState holds the whole simulation. It is not safe for concurrent use;
// the driving loop owns it.
type GameState struct {
	snake        Snake
	food         Cell
	heading      Direction
	score        int
	isOver       bool
	moveTimer    time.Duration
	moveInterval time.Duration

	width    int
	height   int
	cellSize int
	rng      RandomSource
}

func NewGameState(width, height, cellSize int, rng RandomSource) (*GameState, error) {
	if width < 1 || height < 1 || cellSize < 1 {
		return nil, fmt.Errorf("%w: %dx%d cells of size %d", ErrInvalidGrid, width, height, cellSize)
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}
	for _, c := range []Cell{InitialHead, InitialFood} {
		if !c.InBounds(width, height) {
			return nil, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrInitialCellOutOfBounds, c.X, c.Y, width, height)
		}
	}

	gs := &GameState{
		moveInterval: MoveInterval,
		width:        width,
		height:       height,
		cellSize:     cellSize,
		rng:          rng,
	}
	gs.Reset()
	return gs, nil
}

// Reset restores the state produced by NewGameState, keeping the grid.
func (gs *GameState) Reset() {
	gs.snake = newSnake(InitialHead)
	gs.food = InitialFood
	gs.heading = DirectionNone
	gs.score = 0
	gs.isOver = false
	gs.moveTimer = 0
}

func (gs *GameState) SetHeading(d Direction) {
	gs.heading = d
}

// Advance feeds elapsed real time into the move timer and performs at most
// one grid step once the timer reaches the move interval.
func (gs *GameState) Advance(elapsed time.Duration) StepResult {
	if gs.isOver {
		return StepResult{}
	}
	if elapsed > 0 {
		gs.moveTimer += elapsed
	}
	if gs.moveTimer < gs.moveInterval {
		return StepResult{}
	}
	gs.moveTimer = 0
	return gs.step()
}

func (gs *GameState) step() StepResult {
	if gs.heading.IsNone() {
		return StepResult{}
	}

	newHead := NextCell(gs.snake.Head(), gs.heading, gs.width, gs.height)
	if gs.snake.Contains(newHead) {
		gs.isOver = true
		log.Debug("Snake collided with itself", "cell", newHead, "score", gs.score, "length", gs.snake.Len())
		return StepResult{Collided: true}
	}

	gs.snake.push(newHead)

	if newHead == gs.food {
		gs.score++
		gs.placeFood()
		return StepResult{Moved: true, Ate: true}
	}

	gs.snake.dropTail()
	return StepResult{Moved: true}
}

func (gs *GameState) IsOver() bool {
	return gs.isOver
}

// Snake returns a copy of the body, tail first.
func (gs *GameState) Snake() []Cell {
	return gs.snake.cells()
}

func (gs *GameState) Head() Cell {
	return gs.snake.Head()
}

func (gs *GameState) Food() Cell {
	return gs.food
}

func (gs *GameState) Score() int {
	return gs.score
}

func (gs *GameState) Heading() Direction {
	return gs.heading
}

func (gs *GameState) Width() int {
	return gs.width
}

func (gs *GameState) Height() int {
	return gs.height
}

func (gs *GameState) CellSize() int {
	return gs.cellSize
}
