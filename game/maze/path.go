package maze

// IsReachable reports whether the exit can be reached from the entry moving
// only through Passage cells.
func IsReachable(g *Grid) bool {
	_, found := search(g)
	return found
}

// SolutionPath returns the shortest route from entry to exit through Passage
// cells, entry first. Among routes of equal length the one preferred by the
// neighbour order of Directions wins, so the result is stable for a given
// grid. It returns nil when the exit is unreachable.
func SolutionPath(g *Grid) []CellPosition {
	parent, found := search(g)
	if !found {
		return nil
	}

	entry, exit := g.Entry(), g.Exit()
	path := []CellPosition{exit}
	for cur := exit; cur != entry; {
		cur = parent[cur.Row][cur.Col]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// search runs a breadth-first search from the entry and stops as soon as the
// exit is dequeued. It returns the predecessor of every discovered cell.
func search(g *Grid) ([][]CellPosition, bool) {
	entry, exit := g.Entry(), g.Exit()
	if g.cells[entry.Row][entry.Col] != Passage {
		return nil, false
	}

	visited := make([][]bool, g.rows)
	parent := make([][]CellPosition, g.rows)
	for r := range visited {
		visited[r] = make([]bool, g.cols)
		parent[r] = make([]CellPosition, g.cols)
	}

	queue := []CellPosition{entry}
	visited[entry.Row][entry.Col] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exit {
			return parent, true
		}

		for _, dir := range Directions {
			next := cur.Add(deltas[dir])
			if !g.InBound(next.Row, next.Col) || visited[next.Row][next.Col] {
				continue
			}
			if g.cells[next.Row][next.Col] != Passage {
				continue
			}
			visited[next.Row][next.Col] = true
			parent[next.Row][next.Col] = cur
			queue = append(queue, next)
		}
	}
	return parent, false
}
