package model

import (
	"strings"
	"testing"
)

func render(p Pattern) string {
	return strings.Join(p, "\n")
}

func TestUpdateTransitions(t *testing.T) {
	tests := []struct {
		name  string
		start Pattern
		want  Pattern
	}{
		{
			name:  "lonely center dies",
			start: Pattern{"...", ".#.", "..."},
			want:  Pattern{"...", "...", "..."},
		},
		{
			name:  "block is a still life",
			start: Pattern{"....", ".##.", ".##.", "...."},
			want:  Pattern{"....", ".##.", ".##.", "...."},
		},
		{
			name:  "blinker turns vertical",
			start: Pattern{".....", ".....", ".###.", ".....", "....."},
			want:  Pattern{".....", "..#..", "..#..", "..#..", "....."},
		},
		{
			name:  "full 3x3 keeps only the corners",
			start: Pattern{"###", "###", "###"},
			want:  Pattern{"#.#", "...", "#.#"},
		},
		{
			name:  "full 4x4 keeps only the corners",
			start: Pattern{"####", "####", "####", "####"},
			want:  Pattern{"#..#", "....", "....", "#..#"},
		},
		{
			name:  "glider first generation",
			start: Pattern{"......", "..#...", "...#..", ".###..", "......", "......"},
			want:  Pattern{"......", "......", ".#.#..", "..##..", "..#...", "......"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.start)
			b.Update()
			if got, want := b.String(), render(tt.want); got != want {
				t.Errorf("after Update:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestGliderTranslatesAfterFourGenerations(t *testing.T) {
	b := NewBoard(8, 8)
	b.Clear()
	b.Place(Glider, 1, 1)

	for range 4 {
		b.Update()
	}

	want := NewBoard(8, 8)
	want.Clear()
	want.Place(Glider, 2, 2)
	if b.String() != want.String() {
		t.Errorf("after 4 generations:\n%s\nwant:\n%s", b, want)
	}
}

func TestCornerAndEdgeTreatOffGridAsDead(t *testing.T) {
	b := mustBoard(t, Pattern{"#####", "#####", "#####"})
	b.Update()

	if c, _ := b.Get(0, 0); c != Alive {
		t.Error("corner with three live neighbours should be alive")
	}
	if c, _ := b.Get(2, 0); c != Dead {
		t.Error("edge cell with five live neighbours should be dead")
	}
	if c, _ := b.Get(2, 1); c != Dead {
		t.Error("interior cell with eight live neighbours should be dead")
	}
}

func TestUpdateIsDeterministicForFixedInput(t *testing.T) {
	seed := NewBoard(24, 17)
	rows := make([][]CellState, seed.Height())
	for y := range rows {
		rows[y] = seed.Row(y)
	}

	run := func(opts ...Option) string {
		b, err := NewBoardFromRows(rows, opts...)
		if err != nil {
			t.Fatal(err)
		}
		b.Update()
		b.Update()
		return b.String()
	}

	first := run()
	if second := run(); second != first {
		t.Errorf("two runs from the same grid diverged:\n%s\n\n%s", first, second)
	}
	if limited := run(WithWorkerLimit(2)); limited != first {
		t.Errorf("worker limit changed the result:\n%s\n\n%s", first, limited)
	}
	if pooled := run(WithGridPool(NewGridPool())); pooled != first {
		t.Errorf("grid pool changed the result:\n%s\n\n%s", first, pooled)
	}
}

func TestUpdateKeepsDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}, {1, 1}, {7, 3}} {
		b := NewBoard(dims[0], dims[1], WithGridPool(NewGridPool()))
		for range 3 {
			b.Update()
		}
		if b.Width() != dims[0] || b.Height() != dims[1] {
			t.Errorf("board %v became %dx%d", dims, b.Width(), b.Height())
		}
		for y := range b.Height() {
			if got := len(b.Row(y)); got != dims[0] {
				t.Errorf("board %v row %d has %d cells", dims, y, got)
			}
		}
	}
}

func TestUpdatePanicsWithoutCommittingOnBrokenSnapshot(t *testing.T) {
	b := mustBoard(t, Pattern{"###", "#.#", "###"})
	before := b.cells
	b.cells[1] = b.cells[1][:2]

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected Update to panic")
			}
		}()
		b.Update()
	}()

	if &b.cells[0] != &before[0] {
		t.Error("Update committed a new grid after a worker failed")
	}
	if got := b.Row(0); got[1] != Alive {
		t.Error("snapshot row was modified")
	}
}

func TestNeighborCount(t *testing.T) {
	g := grid(Pattern{
		"##.",
		"#..",
		"..#",
	}.Rows())

	tests := []struct {
		x, y, want int
	}{
		{0, 0, 2},
		{1, 1, 4},
		{2, 2, 0},
		{2, 0, 1},
	}
	for _, tt := range tests {
		if got := neighborCount(g, tt.x, tt.y); got != tt.want {
			t.Errorf("neighborCount(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestUpdatePlacesRowsByTagWhenWorkersFinishInReverse(t *testing.T) {
	start := Pattern{"......", "..#...", "...#..", ".###..", "......", "......"}
	b := mustBoard(t, start)
	height := b.Height()

	gates := make([]chan struct{}, height)
	for y := range gates {
		gates[y] = make(chan struct{})
	}
	finished := make(chan int, height)
	b.worker = func(snapshot grid, width, y int, dst []CellState, out chan<- rowResult) error {
		<-gates[y]
		err := computeRow(snapshot, width, y, dst, out)
		finished <- y
		return err
	}

	var order []int
	released := make(chan struct{})
	go func() {
		defer close(released)
		for y := height - 1; y >= 0; y-- {
			close(gates[y])
			order = append(order, <-finished)
		}
	}()

	b.Update()
	<-released

	for i, y := range order {
		if want := height - 1 - i; y != want {
			t.Fatalf("workers finished in order %v, want last row first", order)
		}
	}
	want := render(Pattern{"......", "......", ".#.#..", "..##..", "..#...", "......"})
	if got := b.String(); got != want {
		t.Errorf("after Update:\n%s\nwant:\n%s", got, want)
	}
}

func TestUpdatePanicsWithoutCommitting(t *testing.T) {
	tests := []struct {
		name   string
		worker rowWorker
	}{
		{
			name: "row never delivered",
			worker: func(snapshot grid, width, y int, dst []CellState, out chan<- rowResult) error {
				if y == 1 {
					return nil
				}
				return computeRow(snapshot, width, y, dst, out)
			},
		},
		{
			name: "row tagged for a filled slot",
			worker: func(snapshot grid, width, y int, dst []CellState, out chan<- rowResult) error {
				row, err := nextRow(snapshot, width, y, dst)
				if err != nil {
					return err
				}
				out <- rowResult{index: 0, cells: row}
				return nil
			},
		},
		{
			name: "row tagged out of range",
			worker: func(snapshot grid, width, y int, dst []CellState, out chan<- rowResult) error {
				row, err := nextRow(snapshot, width, y, dst)
				if err != nil {
					return err
				}
				out <- rowResult{index: y + len(snapshot), cells: row}
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, Pattern{"###", "###", "###"})
			before := b.String()
			b.worker = tt.worker

			func() {
				defer func() {
					if recover() == nil {
						t.Fatal("expected Update to panic")
					}
				}()
				b.Update()
			}()

			if got := b.String(); got != before {
				t.Errorf("board changed after a failed Update:\n%s\nwant:\n%s", got, before)
			}
		})
	}
}
