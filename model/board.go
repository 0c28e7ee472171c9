package model

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Board is a fixed-size Game of Life grid. All methods are safe for concurrent use;
// Update holds the write lock for the whole generation so readers never observe a
// partially computed grid.
type Board struct {
	mu     sync.RWMutex
	width  int
	height int
	cells  grid

	pool        *GridPool
	workerLimit int
	worker      rowWorker
}

// Option configures optional Board behaviour
type Option func(*Board)

// WithGridPool makes Update draw the next generation's storage from pool and return the
// discarded generation to it
func WithGridPool(pool *GridPool) Option {
	return func(b *Board) {
		b.pool = pool
	}
}

// WithWorkerLimit caps how many row workers run at once. n <= 0 means no limit.
func WithWorkerLimit(n int) Option {
	return func(b *Board) {
		b.workerLimit = n
	}
}

// NewBoard creates a width x height board with every cell randomly alive or dead.
// Negative dimensions are treated as zero.
func NewBoard(width, height int, opts ...Option) *Board {
	width, height = max(width, 0), max(height, 0)

	cells := newGrid(width, height)
	for y := range cells {
		for x := range cells[y] {
			cells[y][x] = RandomCellState()
		}
	}
	return newBoard(width, height, cells, opts)
}

// NewBoardFromRows creates a board holding a copy of rows. Every row must have the same length.
func NewBoardFromRows(rows [][]CellState, opts ...Option) (*Board, error) {
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}

	cells := newGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("[NewBoardFromRows] row %d has %d cells, expected %d", y, len(row), width)
		}
		copy(cells[y], row)
	}
	return newBoard(width, len(rows), cells, opts), nil
}

func newBoard(width, height int, cells grid, opts []Option) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  cells,
		worker: computeRow,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Get returns the state of the cell at column x, row y. The boolean is false when the
// position lies outside the board.
func (b *Board) Get(x, y int) (CellState, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cells.at(x, y)
}

// Row returns a copy of row y, or an empty slice if y is out of range
func (b *Board) Row(y int) []CellState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if y < 0 || y >= b.height {
		return []CellState{}
	}
	row := make([]CellState, b.width)
	copy(row, b.cells[y])
	return row
}

// Col returns a copy of column x, or an empty slice if x is out of range
func (b *Board) Col(x int) []CellState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if x < 0 || x >= b.width {
		return []CellState{}
	}
	col := make([]CellState, b.height)
	for y := range b.height {
		col[y] = b.cells[y][x]
	}
	return col
}

// Set sets a single cell, reporting false if the position is outside the board
func (b *Board) Set(x, y int, state CellState) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.cells.at(x, y); !ok {
		return false
	}
	b.cells[y][x] = state
	return true
}

// Clear kills every cell
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Population returns the number of living cells
func (b *Board) Population() (count int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (b *Board) Hash() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	h := md5.New()
	for y := range b.cells {
		for _, c := range b.cells[y] {
			h.Write([]byte{byte(c)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board with '#' for living cells and '.' for dead ones, one line per row
func (b *Board) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var sb strings.Builder
	for y := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.cells[y] {
			if c == Alive {
				sb.WriteByte(patternAlive)
			} else {
				sb.WriteByte(patternDead)
			}
		}
	}
	return sb.String()
}
