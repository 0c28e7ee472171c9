package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration: %v\n", err)
		config = utils.DefaultConfig()
	}

	board, renderer, stats := initializeGame(config)
	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       model.History
		generation    = 0
		stagnantCount = 0
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations, %d restarts in %.1f seconds\n",
				generation, stats.Restarts, time.Since(stats.StartTime).Seconds())
			return
		default:
		}

		renderFrame(renderer, board)

		livingCells, density, status, isStagnant := updateGameState(board, &history)
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		displayGameStatus(generation, livingCells, density, status, stats)

		if reachedGenerationLimit(generation, config) {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		if restart, reason := checkRestartConditions(livingCells, stagnantCount, config); restart {
			if !config.AutoRestart {
				fmt.Printf("\n🏁 Stopping: %s\n", reason)
				return
			}
			fmt.Printf("🔄 Restarting due to %s...\n", reason)
			board = restartGame(config, &history, stats)
			stagnantCount = 0
		}

		updateStart := time.Now()
		board.Update()
		stats.Record(board.Population(), time.Since(updateStart))
		generation++

		time.Sleep(config.FrameRate)
	}
}
