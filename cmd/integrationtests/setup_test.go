package integrationtests

import (
	auction "auction-coordinator/internal/auctionService"
	"auction-coordinator/internal/broadcast"
	"auction-coordinator/internal/config"
	"auction-coordinator/internal/repository"
	"auction-coordinator/internal/server"
	"auction-coordinator/services/bidding/helpers"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var startTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// testApp bundles a fully wired coordinator, hub and router
type testApp struct {
	router *gin.Engine
	coord  *auction.Coordinator
	hub    *broadcast.Hub
	clock  *fakeclock.FakeClock
}

// SetupTestApp wires the default configuration the same way main does,
// with a fake clock and an in-memory store. mutate may adjust the config first.
func SetupTestApp(t *testing.T, mutate func(cfg *config.Config)) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.Empty(t, cfg.Validate())

	teams, err := repository.NewTeamRegistry(cfg.Roster(), cfg.Auction.MaxTeams)
	require.NoError(t, err)

	hub := broadcast.NewHub(cfg.Broadcast.QueueSize, cfg.Broadcast.SubscriberBuffer)
	clk := fakeclock.NewFakeClock(startTime)

	coord := auction.NewCoordinator(auction.Settings{
		Lot: auction.Lot{
			ItemName:        cfg.Auction.ItemName,
			ItemDescription: cfg.Auction.ItemDescription,
			StartingBid:     cfg.Auction.StartingBid,
			MinIncrement:    cfg.Auction.MinIncrement,
		},
		Duration:       cfg.Auction.Duration,
		MaxBidsPerTeam: cfg.Auction.MaxBidsPerTeam,
		Badges:         auction.DefaultBadgePolicy(cfg.Badges.ActiveBidderThreshold, cfg.Badges.BigSpenderThreshold),
	}, teams, hub, repository.NewMemoryStore(), clk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &testApp{
		router: server.SetupRouter(coord, hub, cfg.Server.CORSOrigin),
		coord:  coord,
		hub:    hub,
		clock:  clk,
	}
}

// bidRequest builds a POST /api/bids body
func bidRequest(teamID int, amount int64, teamName string) helpers.PlaceBidRequest {
	return helpers.PlaceBidRequest{TeamID: teamID, Amount: &amount, TeamName: teamName}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
