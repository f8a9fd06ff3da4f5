package perftests

import (
	"context"
	"fmt"
	"os"
	"testing"

	auction "auction-coordinator/internal/auctionService"
	"auction-coordinator/internal/broadcast"
	model "auction-coordinator/internal/models"
	"auction-coordinator/internal/repository"
	"auction-coordinator/utils"

	"code.cloudfoundry.org/clock"
)

func TestMain(m *testing.M) {
	// per-bid info logs would dominate the measurements
	if err := utils.ConfigureLogger("error", "json"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// roster builds numTeams anonymous teams
func roster(numTeams int) []model.Team {
	teams := make([]model.Team, 0, numTeams)
	for i := 1; i <= numTeams; i++ {
		teams = append(teams, model.Team{ID: i, Name: fmt.Sprintf("team_%d", i)})
	}
	return teams
}

// setupCoordinator wires a coordinator to a running hub with numViewers
// drained subscribers. The hub stops when the benchmark ends.
func setupCoordinator(b *testing.B, numTeams, numViewers int, minIncrement int64) (*auction.Coordinator, *broadcast.Hub) {
	b.Helper()

	teams, err := repository.NewTeamRegistry(roster(numTeams), 0)
	if err != nil {
		b.Fatalf("failed to build roster: %v", err)
	}

	hub := broadcast.NewHub(4096, 256)
	coord := auction.NewCoordinator(auction.Settings{
		Lot:    auction.Lot{ItemName: "Benchmark Lot", StartingBid: 100, MinIncrement: minIncrement},
		Badges: auction.DefaultBadgePolicy(5, 5000),
	}, teams, hub, repository.NewMemoryStore(), clock.NewClock())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Run(ctx)
	}()

	for i := 0; i < numViewers; i++ {
		_, events := hub.Subscribe()
		go func() {
			for range events {
			}
		}()
	}

	b.Cleanup(func() {
		cancel()
		<-done
	})
	return coord, hub
}
