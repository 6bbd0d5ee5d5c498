package engine

// Autopilot picks a direction for the running session: the safe move that
// gets closest to the food, unless that move leads into a pocket smaller than
// the snake, in which case the move with the most reachable room wins.
// It returns the committed direction when nothing is safe.
func Autopilot(e *Engine) Direction {
	if !e.running || len(e.snake) == 0 {
		return e.dir
	}

	type option struct {
		dir  Direction
		dist int
		room int
	}

	candidates := []Direction{e.dir, DirUp, DirRight, DirDown, DirLeft}
	seen := map[Direction]bool{}
	var opts []option
	for _, d := range candidates {
		if seen[d] || d == e.dir.Opposite() {
			continue
		}
		seen[d] = true

		head := e.snake[0].Step(d, e.unit)
		eating := head == e.food
		if e.checkCollision(head, eating) != NoCollision {
			continue
		}
		limit := len(e.snake) + 2
		opts = append(opts, option{
			dir:  d,
			dist: abs(head.X-e.food.X) + abs(head.Y-e.food.Y),
			room: e.reachable(head, eating, limit),
		})
	}
	if len(opts) == 0 {
		return e.dir
	}

	need := len(e.snake) + 1
	best := -1
	for i, o := range opts {
		if o.room < need {
			continue
		}
		if best < 0 || o.dist < opts[best].dist {
			best = i
		}
	}
	if best >= 0 {
		return opts[best].dir
	}

	best = 0
	for i, o := range opts {
		if o.room > opts[best].room {
			best = i
		}
	}
	return opts[best].dir
}

// reachable counts free cells reachable from head after a hypothetical move,
// stopping once limit cells have been found.
func (e *Engine) reachable(head Cell, eating bool, limit int) int {
	blocked := make(map[Cell]bool, len(e.snake)+1)
	body := e.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, c := range body {
		blocked[c] = true
	}
	blocked[head] = true

	queue := []Cell{head}
	count := 0
	for len(queue) > 0 && count < limit {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [...]Direction{DirUp, DirRight, DirDown, DirLeft} {
			n := c.Step(d, e.unit)
			if n.X < 0 || n.Y < 0 || n.X >= e.width || n.Y >= e.height || blocked[n] {
				continue
			}
			blocked[n] = true
			count++
			queue = append(queue, n)
		}
	}
	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
