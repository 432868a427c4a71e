package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jpalmerr/summitcheckin"
)

func main() {
	// state survives restarts of the demo
	dbPath := filepath.Join(os.TempDir(), "summitcheckin-demo.db")
	st, err := summitcheckin.OpenStorage(summitcheckin.DriverSQLite, dbPath)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	board, err := summitcheckin.New(
		summitcheckin.WithTitle("Intel Sustainability Summit"),
		summitcheckin.WithGoal(20),
		summitcheckin.WithPort(8080),
		summitcheckin.WithStorage(st),
		summitcheckin.WithCheckInCallback(func(r summitcheckin.CheckInResult) {
			if r.Snapshot.Celebration != "" {
				slog.Info("goal reached", "message", r.Snapshot.Celebration)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create board", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════════════════╗")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Summit Check-In Demo                                ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Open http://localhost:8080 in your browser          ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Goal: 20 attendees                                  ║")
	fmt.Println("  ║   Simulated arrivals every few seconds                ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   Press Ctrl+C to stop                                ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	// set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go SimulateArrivals(ctx, board, 25)

	if err := board.Start(ctx); err != nil {
		slog.Error("board error", "error", err)
		os.Exit(1)
	}
}
