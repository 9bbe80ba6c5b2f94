package game

// Snake body in movement order: Body[0] is the tail, the last element is the head.
type Snake struct {
	Body []Cell
}

func newSnake(head Cell) Snake {
	return Snake{Body: []Cell{head}}
}

func (s *Snake) Head() Cell {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Contains(c Cell) bool {
	for _, part := range s.Body {
		if part == c {
			return true
		}
	}
	return false
}

func (s *Snake) push(head Cell) {
	s.Body = append(s.Body, head)
}

func (s *Snake) dropTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) cells() []Cell {
	out := make([]Cell, len(s.Body))
	copy(out, s.Body)
	return out
}
