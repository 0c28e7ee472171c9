package rules

const (
	// BirthNeighbors is the exact live-neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
	// SurvivalNeighbors is the extra count, besides BirthNeighbors, that keeps a live cell alive.
	SurvivalNeighbors = 2
)

/*
Apply applies Conway's Game of Life rules to determine the next state of a cell.

A cell is alive in the next generation when it has exactly three live neighbors,
or when it is already alive and has exactly two.
*/
func Apply(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurvivalNeighbors)
}
