package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jpalmerr/summitcheckin"
)

var demoNames = []string{
	"Ada", "Grace", "Linus", "Margaret", "Ken", "Barbara", "Dennis", "Frances",
	"Alan", "Radia", "Edsger", "Hedy", "Tim", "Katherine", "Donald", "Sophie",
}

// SimulateArrivals checks in a random attendee every 2-6 seconds until ctx
// is cancelled or limit attendees have arrived.
func SimulateArrivals(ctx context.Context, board *summitcheckin.Board, limit int) {
	teams := summitcheckin.KnownTeams()

	for i := 0; i < limit; i++ {
		delay := time.Duration(2+rand.Intn(5)) * time.Second
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		name := fmt.Sprintf("%s %d", demoNames[rand.Intn(len(demoNames))], i+1)
		team := teams[rand.Intn(len(teams))]
		if _, err := board.SubmitCheckIn(ctx, name, team); err != nil {
			slog.Warn("simulated check-in failed", "error", err)
		}
	}
}
