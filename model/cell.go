package model

import "math/rand"

// CellState is the state of a single cell on the board
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// RandomCellState returns Alive or Dead with equal probability
func RandomCellState() CellState {
	if rand.Intn(2) == 0 {
		return Alive
	}
	return Dead
}

// IsAlive reports whether the cell is alive
func (c CellState) IsAlive() bool {
	return c == Alive
}

func (c CellState) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}
