package game

type Cell struct {
	X int
	Y int
}

func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// WrapCell maps any coordinate pair back onto a width x height torus.
func WrapCell(c Cell, width, height int) Cell {
	return Cell{
		X: euclidMod(c.X, width),
		Y: euclidMod(c.Y, height),
	}
}

// NextCell returns the cell one step from c in direction d, wrapped.
func NextCell(c Cell, d Direction, width, height int) Cell {
	return WrapCell(Cell{X: c.X + d.Dx, Y: c.Y + d.Dy}, width, height)
}
