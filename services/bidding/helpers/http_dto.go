package helpers

import model "auction-coordinator/internal/models"

// Request/Response DTOs
type PlaceBidRequest struct {
	TeamID   int    `json:"team_id" binding:"required,gt=0"`
	// nil when absent; zero and negative amounts are left to the bid rules
	Amount   *int64 `json:"amount" binding:"required"`
	TeamName string `json:"team_name" binding:"max=100"`
}

// BidResponse is returned to the proposer of an accepted bid
type BidResponse struct {
	Bid     model.Bid     `json:"bid"`
	Auction model.Auction `json:"auction"`
	Version uint64        `json:"version"`
}

// StateResponse is returned by administrative operations
type StateResponse struct {
	Version uint64        `json:"version"`
	Auction model.Auction `json:"auction"`
	Teams   []model.Team  `json:"teams"`
	History []model.Bid   `json:"history"`
}

// NewStateResponse strips the per-transition fields from a payload
func NewStateResponse(p model.BroadcastPayload) StateResponse {
	return StateResponse{
		Version: p.Version,
		Auction: p.Auction,
		Teams:   p.Teams,
		History: p.History,
	}
}
