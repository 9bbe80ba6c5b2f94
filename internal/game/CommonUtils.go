package game

// Direction is a unit step on the grid. The zero value means the snake
// has not started moving yet.
type Direction struct {
	Dx, Dy int
}

var (
	DirectionNone  = Direction{}
	DirectionUp    = Direction{Dx: 0, Dy: -1}
	DirectionDown  = Direction{Dx: 0, Dy: 1}
	DirectionLeft  = Direction{Dx: -1, Dy: 0}
	DirectionRight = Direction{Dx: 1, Dy: 0}
)

var Directions = []Direction{
	DirectionRight,
	DirectionDown,
	DirectionLeft,
	DirectionUp,
}

func (d Direction) IsNone() bool {
	return d == DirectionNone
}

// euclidMod always returns a value in [0, n) for n > 0.
func euclidMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
