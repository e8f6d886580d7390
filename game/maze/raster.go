package maze

// Rasterize converts carved wall cells into a grid of kinds. A cell becomes
// Passage when it was visited or has at least one missing wall, Wall
// otherwise. Entry and exit are always Passage.
func Rasterize(cells [][]WallCell) *Grid {
	rows, cols := len(cells), len(cells[0])
	g := newGrid(rows, cols, Wall)
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c].Visited || !cells[r][c].Closed() {
				g.cells[r][c] = Passage
			}
		}
	}
	g.cells[0][0] = Passage
	g.cells[rows-1][cols-1] = Passage
	return g
}
