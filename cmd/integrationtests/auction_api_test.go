package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"auction-coordinator/internal/config"
	"auction-coordinator/services/bidding/helpers"

	"github.com/stretchr/testify/require"
)

// PlaceBidHandler Tests
func TestPlaceBid_Sequence(t *testing.T) {
	app := SetupTestApp(t, nil)

	steps := []struct {
		name       string
		request    any
		wantStatus int
		wantMsg    string
		wantHigh   float64
	}{
		{
			name:       "Opening_Bid",
			request:    bidRequest(1, 1100, "Team Alpha"),
			wantStatus: http.StatusCreated,
			wantMsg:    "bid accepted",
			wantHigh:   1100,
		},
		{
			name:       "Increment_Too_Small",
			request:    bidRequest(2, 1140, "Team Beta"),
			wantStatus: http.StatusConflict,
			wantMsg:    "minimum increment is 50",
		},
		{
			name:       "Not_Above_Current",
			request:    bidRequest(3, 1100, ""),
			wantStatus: http.StatusConflict,
			wantMsg:    "bid must exceed current highest bid of 1100",
		},
		{
			name:       "Exact_Increment",
			request:    bidRequest(2, 1150, "Team Beta"),
			wantStatus: http.StatusCreated,
			wantMsg:    "bid accepted",
			wantHigh:   1150,
		},
		{
			name:       "Unknown_Team",
			request:    bidRequest(99, 2000, ""),
			wantStatus: http.StatusNotFound,
			wantMsg:    "team not found",
		},
		{
			name:       "Invalid_JSON",
			request:    []byte("{team_id: 'missing quotes', amount: 100}"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid request payload",
		},
	}

	for _, tt := range steps {
		resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", tt.request)
		require.Equal(t, tt.wantStatus, w.Code, tt.name)
		require.Equal(t, tt.wantMsg, resp["message"], tt.name)

		if tt.wantStatus == http.StatusCreated {
			data := resp["data"].(map[string]any)
			require.Equal(t, tt.wantHigh, data["auction"].(map[string]any)["current_highest_bid"], tt.name)
			require.NotEmpty(t, data["bid"].(map[string]any)["id"], tt.name)
		}
	}

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/api/auction", nil)
	require.Equal(t, http.StatusOK, w.Code)
	auction := resp["data"].(map[string]any)
	require.Equal(t, 1150.0, auction["current_highest_bid"])
	require.Equal(t, "Team Beta", auction["highest_bidder"])
	require.Equal(t, 2.0, auction["total_bids"])
	require.Equal(t, true, auction["is_active"])

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/api/bid-history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := resp["data"].([]any)
	require.Len(t, history, 2)
	first := history[0].(map[string]any)
	last := history[1].(map[string]any)
	require.Equal(t, 1100.0, first["amount"])
	require.Equal(t, false, first["is_highest"])
	require.Equal(t, 1150.0, last["amount"])
	require.Equal(t, true, last["is_highest"])

	_, err := time.Parse(time.RFC3339, last["timestamp"].(string))
	require.NoError(t, err)

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/api/teams/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	team := resp["data"].(map[string]any)
	require.Equal(t, 1.0, team["total_bids"])
	require.Equal(t, 1150.0, team["highest_bid"])
}

func TestPlaceBid_TeamNameFallsBackToRoster(t *testing.T) {
	app := SetupTestApp(t, nil)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(3, 1200, ""))
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "Team Gamma", data["bid"].(map[string]any)["team_name"])
	require.Equal(t, "Team Gamma", data["auction"].(map[string]any)["highest_bidder"])
}

func TestPlaceBid_Badges(t *testing.T) {
	app := SetupTestApp(t, func(cfg *config.Config) {
		cfg.Badges.ActiveBidderThreshold = 2
	})

	bids := []helpers.PlaceBidRequest{
		bidRequest(4, 1100, ""),
		bidRequest(1, 1200, ""),
		bidRequest(4, 6000, ""),
	}
	for _, bid := range bids {
		_, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bid)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/api/teams/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	badges := resp["data"].(map[string]any)["badges"].([]any)
	require.ElementsMatch(t, []any{"Newcomer", "Active Bidder", "Big Spender"}, badges)
}

func TestPlaceBid_TeamBidLimit(t *testing.T) {
	app := SetupTestApp(t, func(cfg *config.Config) {
		cfg.Auction.MaxBidsPerTeam = 1
	})

	_, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(1, 1100, ""))
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(1, 1500, ""))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "team bid limit reached", resp["message"])
}

func TestPlaceBid_AfterEndTime(t *testing.T) {
	app := SetupTestApp(t, nil)

	_, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(1, 1100, ""))
	require.Equal(t, http.StatusCreated, w.Code)

	app.clock.Increment(2 * time.Hour)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(2, 5000, ""))
	require.Equal(t, http.StatusGone, w.Code)
	require.Equal(t, "auction has ended", resp["message"])

	resp, _ = ExecuteRequestAndParse(t, app.router, http.MethodGet, "/api/auction", nil)
	auction := resp["data"].(map[string]any)
	require.Equal(t, false, auction["is_active"])
	require.Equal(t, 1100.0, auction["current_highest_bid"])
}

// Administrative operations
func TestCloseAndResetAuction(t *testing.T) {
	app := SetupTestApp(t, nil)

	for _, bid := range []helpers.PlaceBidRequest{bidRequest(1, 1100, ""), bidRequest(2, 1200, "")} {
		_, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bid)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/close-auction", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, resp["data"].(map[string]any)["auction"].(map[string]any)["is_active"])

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(3, 2000, ""))
	require.Equal(t, http.StatusGone, w.Code)
	require.Equal(t, "auction has ended", resp["message"])

	app.clock.Increment(30 * time.Minute)

	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/reset-auction", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "auction reset successfully", resp["message"])

	data := resp["data"].(map[string]any)
	auction := data["auction"].(map[string]any)
	require.Equal(t, true, auction["is_active"])
	require.Equal(t, 1000.0, auction["current_highest_bid"])
	require.Nil(t, auction["highest_bidder"])
	require.Equal(t, 0.0, auction["total_bids"])
	require.Empty(t, data["history"].([]any))

	endTime, err := time.Parse(time.RFC3339, auction["end_time"].(string))
	require.NoError(t, err)
	require.True(t, endTime.Equal(startTime.Add(30*time.Minute+2*time.Hour)))

	for _, raw := range data["teams"].([]any) {
		team := raw.(map[string]any)
		require.Equal(t, 0.0, team["total_bids"])
		require.Equal(t, 0.0, team["highest_bid"])
		require.Len(t, team["badges"].([]any), 1)
	}

	_, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(3, 1050, ""))
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestHealthAndCORS(t *testing.T) {
	app := SetupTestApp(t, nil)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", resp["status"])
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	_, w = ExecuteRequestAndParse(t, app.router, http.MethodOptions, "/api/bids", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestPlaceBid_NonPositiveAmountFollowsRuleOrder(t *testing.T) {
	app := SetupTestApp(t, nil)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(1, 0, ""))
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "bid must exceed current highest bid of 1000", resp["message"])

	_, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/close-auction", nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, amount := range []int64{0, -10} {
		resp, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", bidRequest(1, amount, ""))
		require.Equal(t, http.StatusGone, w.Code, "amount %d", amount)
		require.Equal(t, "auction has ended", resp["message"])
	}

	// a missing amount is still a malformed request
	resp, w = ExecuteRequestAndParse(t, app.router, http.MethodPost, "/api/bids", map[string]any{"team_id": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid request payload", resp["message"])
}

func TestAuction_EndsWithoutBids(t *testing.T) {
	app := SetupTestApp(t, nil)

	app.clock.Increment(3 * time.Hour)

	resp, w := ExecuteRequestAndParse(t, app.router, http.MethodGet, "/api/auction", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, resp["data"].(map[string]any)["is_active"])
}
