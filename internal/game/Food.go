package game

// placeFood picks a new food cell off the snake. Row 0 is never used: it
// is where the score is drawn.
func (gs *GameState) placeFood() {
	for _i := 0; _i < maxFoodRolls; _i++ {
		candidate := Cell{
			X: gs.rng.Intn(gs.width),
			Y: 1 + gs.rng.Intn(gs.height-1),
		}
		if !gs.snake.Contains(candidate) {
			gs.food = candidate
			return
		}
	}

	// Board is nearly full, fall back to the first free cell.
	for y := 1; y < gs.height; y++ {
		for x := 0; x < gs.width; x++ {
			candidate := Cell{X: x, Y: y}
			if !gs.snake.Contains(candidate) {
				gs.food = candidate
				return
			}
		}
	}
}
