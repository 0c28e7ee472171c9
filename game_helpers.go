package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Board,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	board := newBoard(config)
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return board, renderer, stats
}

// newBoard builds a board according to the configured seed
func newBoard(config utils.Config) *model.Board {
	var opts []model.Option
	if config.UseMemoryPool {
		opts = append(opts, model.WithGridPool(model.NewGridPool()))
	}
	if config.WorkerLimit > 0 {
		opts = append(opts, model.WithWorkerLimit(config.WorkerLimit))
	}

	board := model.NewBoard(config.Width, config.Height, opts...)
	if config.Seed == utils.SeedGlider {
		board.Clear()
		board.Place(model.Glider, 1, 1)
	}
	return board
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Memory Pool: %v | Worker limit: %d | Seed: %s | Auto restart: %v\n",
		config.UseMemoryPool, config.WorkerLimit, config.Seed, config.AutoRestart)
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n",
		board.Width(), board.Height(), board.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState records the current generation and returns status information
func updateGameState(
	board *model.Board,
	history *model.History,
) (int, float64, string, bool) {
	livingCells := board.Population()

	var density float64
	if cells := board.Width() * board.Height(); cells > 0 {
		density = float64(livingCells) / float64(cells) * 100
	}

	isStagnant := history.IsStagnant(board)
	history.Record(board)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Restarts: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Restarts,
		time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// reachedGenerationLimit reports whether the configured number of generations has run
func reachedGenerationLimit(generation int, config utils.Config) bool {
	return config.MaxGenerations > 0 && generation >= config.MaxGenerations
}

// checkRestartConditions determines if the board has died out or settled
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds a fresh board and forgets the previous board's history
func restartGame(config utils.Config, history *model.History, stats *utils.Stats) *model.Board {
	history.Reset()
	stats.Restarts++
	return newBoard(config)
}

// renderFrame clears the screen and draws the board
func renderFrame(renderer *model.TerminalRenderer, board *model.Board) {
	if err := renderer.Clear(os.Stdout); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
	if err := renderer.Display(os.Stdout, board); err != nil {
		fmt.Println("Error rendering board:", err)
	}
}
