package model

const (
	patternAlive = '#'
	patternDead  = '.'
)

// Pattern is a small hand-drawn arrangement of cells, one string per row, with '#' marking
// living cells. Any other byte is dead.
type Pattern []string

var (
	// Glider travels one cell down and to the right every four generations
	Glider = Pattern{
		".#.",
		"..#",
		"###",
	}
	// Blinker oscillates between horizontal and vertical with period two
	Blinker = Pattern{
		"###",
	}
	// Block is a still life
	Block = Pattern{
		"##",
		"##",
	}
)

// Width returns the length of the longest row
func (p Pattern) Width() (w int) {
	for _, row := range p {
		w = max(w, len(row))
	}
	return
}

// Height returns the number of rows
func (p Pattern) Height() int {
	return len(p)
}

// Rows converts the pattern into a rectangular cell grid, padding short rows with dead cells
func (p Pattern) Rows() [][]CellState {
	rows := newGrid(p.Width(), p.Height())
	for y, line := range p {
		for x := range len(line) {
			if line[x] == patternAlive {
				rows[y][x] = Alive
			}
		}
	}
	return rows
}

// Place stamps p onto the board with its top-left corner at (x, y). Every cell of the pattern
// overwrites the board; cells that fall outside the board are dropped.
func (b *Board) Place(p Pattern, x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for dy, row := range p.Rows() {
		for dx, c := range row {
			if _, ok := b.cells.at(x+dx, y+dy); ok {
				b.cells[y+dy][x+dx] = c
			}
		}
	}
}
