package maze

// NewWallGrid allocates a rows x cols wall grid with every wall standing and
// no cell visited.
func NewWallGrid(rows, cols int) [][]WallCell {
	cells := make([][]WallCell, rows)
	for r := range cells {
		cells[r] = make([]WallCell, cols)
		for c := range cells[r] {
			cells[r][c] = WallCell{
				Top:    true,
				Bottom: true,
				Left:   true,
				Right:  true,
			}
		}
	}
	return cells
}

// Carve turns cells into a perfect maze with a randomized iterative
// depth-first search starting at (0,0). Every cell ends up visited and the
// removed walls form a spanning tree over the grid.
func Carve(cells [][]WallCell, rng Rand) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return
	}
	rows, cols := len(cells), len(cells[0])
	inBound := func(p CellPosition) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}

	cells[0][0].Visited = true
	stack := []CellPosition{{Row: 0, Col: 0}}
	candidates := make([]Direction, 0, len(Directions))

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, dir := range Directions {
			next := current.Add(deltas[dir])
			if inBound(next) && !cells[next.Row][next.Col].Visited {
				candidates = append(candidates, dir)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := candidates[rng.Intn(len(candidates))]
		next := current.Add(deltas[dir])
		openWall(&cells[current.Row][current.Col], &cells[next.Row][next.Col], dir)
		cells[next.Row][next.Col].Visited = true
		stack = append(stack, next)
	}
}

// openWall removes the wall between from and its neighbour to in direction dir.
func openWall(from, to *WallCell, dir Direction) {
	switch dir {
	case North:
		from.Top = false
		to.Bottom = false
	case South:
		from.Bottom = false
		to.Top = false
	case East:
		from.Right = false
		to.Left = false
	case West:
		from.Left = false
		to.Right = false
	}
}
