package game

import "time"

const (
	MoveInterval    = 75 * time.Millisecond
	DefaultCellSize = 2
	maxFoodRolls    = 64
)

var (
	InitialHead = Cell{X: 10, Y: 10}
	InitialFood = Cell{X: 15, Y: 15}
)
