package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-board/rules"
)

// rowResult is a finished row of the next generation, tagged with the row it belongs to
type rowResult struct {
	index int
	cells []CellState
}

// rowWorker computes row y of the next generation into dst and delivers it on out.
// Returning without sending leaves the row undelivered.
type rowWorker func(snapshot grid, width, y int, dst []CellState, out chan<- rowResult) error

// Update advances the board by exactly one generation.
//
// The current grid is used as a read-only snapshot and one worker is started per row.
// Each worker fills its own buffer and sends the finished row on a single-use channel;
// rows are placed by their tagged index, and the new grid is committed only once every
// row has arrived. Update waits for all workers unconditionally. A worker that fails, or
// a row that is missing or tagged for a slot already filled, is an invariant violation and
// panics without committing anything.
func (b *Board) Update() {
	b.mu.Lock()
	defer b.mu.Unlock()

	var (
		snapshot = b.cells
		buffers  = b.allocate()
		next     = make(grid, b.height)
		filled   = make([]bool, b.height)
		results  = make([]chan rowResult, b.height)
		eg       errgroup.Group
	)
	if b.workerLimit > 0 {
		eg.SetLimit(b.workerLimit)
	}

	for y := range b.height {
		out := make(chan rowResult, 1)
		results[y] = out

		eg.Go(func() error {
			defer close(out)
			return b.worker(snapshot, b.width, y, buffers[y], out)
		})
	}

	if err := eg.Wait(); err != nil {
		panic(errors.Wrap(err, "[Board.Update] row worker failed"))
	}

	for y, out := range results {
		res, ok := <-out
		if !ok {
			panic(errors.Errorf("[Board.Update] row %d was never delivered", y))
		}
		if res.index < 0 || res.index >= b.height || filled[res.index] {
			panic(errors.Errorf("[Board.Update] worker for row %d delivered unexpected row %d", y, res.index))
		}
		next[res.index] = res.cells
		filled[res.index] = true
	}

	b.cells = next
	b.pool.put(snapshot)
}

// allocate returns zeroed row buffers for the workers of the next generation
func (b *Board) allocate() grid {
	if b.pool != nil {
		return b.pool.get(b.width, b.height)
	}
	return newGrid(b.width, b.height)
}

// computeRow is the default rowWorker
func computeRow(snapshot grid, width, y int, dst []CellState, out chan<- rowResult) error {
	row, err := nextRow(snapshot, width, y, dst)
	if err != nil {
		return err
	}
	out <- rowResult{index: y, cells: row}
	return nil
}

// nextRow fills dst with the next state of row y, reading only from snapshot
func nextRow(snapshot grid, width, y int, dst []CellState) ([]CellState, error) {
	if len(snapshot[y]) != width {
		return nil, errors.Errorf("[nextRow] row %d has %d cells, expected %d", y, len(snapshot[y]), width)
	}
	if len(dst) != width {
		dst = make([]CellState, width)
	}
	for x := range width {
		dst[x] = nextState(snapshot, x, y)
	}
	return dst, nil
}

// nextState applies the transition rule to the cell at (x, y)
func nextState(snapshot grid, x, y int) CellState {
	current, ok := snapshot.at(x, y)
	if !ok {
		return Dead
	}
	if rules.Apply(neighborCount(snapshot, x, y), current == Alive) {
		return Alive
	}
	return Dead
}

// neighborCount counts living cells in the Moore neighbourhood of (x, y).
// Positions off the grid count as dead.
func neighborCount(snapshot grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c, ok := snapshot.at(x+dx, y+dy); ok && c == Alive {
				count++
			}
		}
	}
	return count
}
