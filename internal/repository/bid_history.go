package repository

import (
	model "auction-coordinator/internal/models"
)

// BidHistory is the append-only log of accepted bids.
// It is not safe for concurrent use; the coordinator serializes access.
type BidHistory struct {
	bids []model.Bid
}

// NewBidHistory creates an empty history log
func NewBidHistory() *BidHistory {
	return &BidHistory{bids: []model.Bid{}}
}

// Append adds bid to the end of the log
func (h *BidHistory) Append(bid model.Bid) {
	h.bids = append(h.bids, bid)
}

// DemoteLastHighest clears the IsHighest flag on the last entry, if any
func (h *BidHistory) DemoteLastHighest() {
	if n := len(h.bids); n > 0 {
		h.bids[n-1].IsHighest = false
	}
}

// Clear empties the log
func (h *BidHistory) Clear() {
	h.bids = []model.Bid{}
}

// Last returns the most recently appended bid
func (h *BidHistory) Last() (model.Bid, bool) {
	if len(h.bids) == 0 {
		return model.Bid{}, false
	}
	return h.bids[len(h.bids)-1], true
}

// Len returns the number of bids in the log
func (h *BidHistory) Len() int {
	return len(h.bids)
}

// Snapshot returns a copy of the log in append order
func (h *BidHistory) Snapshot() []model.Bid {
	return append([]model.Bid{}, h.bids...)
}

// Restore replaces the log with saved bids. Only the last entry keeps IsHighest.
func (h *BidHistory) Restore(saved []model.Bid) {
	h.bids = append([]model.Bid{}, saved...)
	for i := range h.bids {
		h.bids[i].IsHighest = i == len(h.bids)-1
	}
}
