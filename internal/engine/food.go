package engine

// foodColumns and foodRows give the sampling range for food. The last column
// and row of the board are never sampled, matching the browser game's
// floor(random * (cells-1)).
func foodColumns(width, unit int) int {
	n := width/unit - 1
	if n < 1 {
		n = 1
	}
	return n
}

func foodRows(height, unit int) int {
	n := height/unit - 1
	if n < 1 {
		n = 1
	}
	return n
}

// placeFood picks a grid-aligned cell not occupied by snake. It rejection
// samples first and, after a bounded number of misses, falls back to a
// uniform pick among the remaining free cells. ok is false only when every
// sampleable cell is covered by the snake.
func placeFood(rng RandSource, snake []Cell, unit, width, height int) (Cell, bool) {
	cols := foodColumns(width, unit)
	rows := foodRows(height, unit)

	occupied := make(map[Cell]struct{}, len(snake))
	for _, c := range snake {
		occupied[c] = struct{}{}
	}

	maxAttempts := 4*cols*rows + 16
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := Cell{X: rng.Intn(cols) * unit, Y: rng.Intn(rows) * unit}
		if _, hit := occupied[c]; !hit {
			return c, true
		}
	}

	free := make([]Cell, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := Cell{X: x * unit, Y: y * unit}
			if _, hit := occupied[c]; !hit {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}
