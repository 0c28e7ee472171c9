package model

import "sync"

// grid is a row-major cell container, indexed as grid[y][x]
type grid [][]CellState

func newGrid(width, height int) grid {
	g := make(grid, height)
	for y := range g {
		g[y] = make([]CellState, width)
	}
	return g
}

// at returns the cell at (x, y), reporting false when the position is off the grid
func (g grid) at(x, y int) (CellState, bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return Dead, false
	}
	return g[y][x], true
}

// GridPool recycles the cell storage of discarded generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &grid{}
			},
		},
	}
}

// get retrieves a grid from the pool, resizing it to the requested dimensions
func (p *GridPool) get(width, height int) grid {
	g := *p.pool.Get().(*grid)

	if cap(g) < height {
		g = make(grid, height)
	}
	g = g[:height]
	for y := range g {
		if cap(g[y]) < width {
			g[y] = make([]CellState, width)
			continue
		}
		g[y] = g[y][:width]
		clear(g[y])
	}
	return g
}

// put returns a grid to the pool. The caller must not touch g afterwards.
func (p *GridPool) put(g grid) {
	if p == nil || g == nil {
		return
	}
	p.pool.Put(&g)
}
