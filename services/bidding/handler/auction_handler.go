package handler

import (
	"fmt"
	"net/http"

	"auction-coordinator/internal/biddingerrors"
	model "auction-coordinator/internal/models"
	"auction-coordinator/services/bidding/helpers"
	"auction-coordinator/utils"

	"github.com/gin-gonic/gin"
)

type CoordinatorInterface interface {
	SubmitBid(teamID int, amount int64, teamName string) (model.BroadcastPayload, error)
	SelectTeam(teamID int) (model.Team, bool)
	Reset() model.BroadcastPayload
	Close() model.BroadcastPayload
	Auction() model.Auction
	Teams() []model.Team
	History() []model.Bid
	Snapshot() model.BroadcastPayload
}

// EventFeed hands out per-viewer payload channels
type EventFeed interface {
	Subscribe() (string, <-chan model.BroadcastPayload)
	Unsubscribe(id string) bool
}

type AuctionHandler struct {
	service CoordinatorInterface
	feed    EventFeed
}

func NewAuctionHandler(service CoordinatorInterface, feed EventFeed) *AuctionHandler {
	return &AuctionHandler{service: service, feed: feed}
}

// GetAuctionHandler handles GET /api/auction
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auction := h.service.Auction()
	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// GetTeamsHandler handles GET /api/teams
func (h *AuctionHandler) GetTeamsHandler(c *gin.Context) {
	teams := h.service.Teams()
	if teams == nil {
		teams = []model.Team{}
	}
	utils.JSONResponse(c, http.StatusOK, teams, "teams retrieved successfully")
}

// SelectTeamHandler handles GET /api/teams/:team_id
func (h *AuctionHandler) SelectTeamHandler(c *gin.Context) {
	teamID, err := helpers.ParseTeamID(c.Param("team_id"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("SelectTeamHandler: bad team id", map[string]any{"team_id": c.Param("team_id")})
		return
	}

	team, ok := h.service.SelectTeam(teamID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("%w - team %d", biddingerrors.ErrUnknownTeam, teamID), "team not found")
		utils.Info("SelectTeamHandler: team not found", map[string]any{"team_id": teamID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, team, "team retrieved successfully")
}

// GetBidHistoryHandler handles GET /api/bid-history
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	history := h.service.History()
	if history == nil {
		history = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, history, "bid history retrieved successfully")
}

// PlaceBidHandler handles POST /api/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	amount := *req.Amount
	payload, err := h.service.SubmitBid(req.TeamID, amount, req.TeamName)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"team_id": req.TeamID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		Bid:     *payload.NewBid,
		Auction: payload.Auction,
		Version: payload.Version,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"bid_id":  payload.NewBid.ID,
		"team_id": req.TeamID,
		"amount":  amount,
		"version": payload.Version,
	})
}

// ResetAuctionHandler handles POST /api/reset-auction
func (h *AuctionHandler) ResetAuctionHandler(c *gin.Context) {
	payload := h.service.Reset()
	utils.JSONResponse(c, http.StatusOK, helpers.NewStateResponse(payload), "auction reset successfully")
	helpers.LogSuccess("ResetAuctionHandler", "auction reset", map[string]any{"version": payload.Version})
}

// CloseAuctionHandler handles POST /api/close-auction
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	payload := h.service.Close()
	utils.JSONResponse(c, http.StatusOK, helpers.NewStateResponse(payload), "auction closed")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed", map[string]any{"version": payload.Version})
}

// StreamEventsHandler handles GET /api/events.
// The viewer first receives the full current state, then every newer payload.
func (h *AuctionHandler) StreamEventsHandler(c *gin.Context) {
	id, events := h.feed.Subscribe()
	defer h.feed.Unsubscribe(id)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// subscribe before the snapshot so no transition falls in between
	initial := h.service.Snapshot()
	helpers.WritePayloadEvents(c, initial)
	c.Writer.Flush()
	last := initial.Version

	utils.Info("StreamEventsHandler: viewer connected", map[string]any{"subscriber_id": id, "version": last})
	defer utils.Info("StreamEventsHandler: viewer disconnected", map[string]any{"subscriber_id": id})

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-events:
			if !ok {
				return
			}
			if p.Version <= last {
				continue
			}
			last = p.Version
			helpers.WritePayloadEvents(c, p)
			c.Writer.Flush()
		}
	}
}
