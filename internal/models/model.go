package models

import (
	"slices"
	"time"
)

// Auction is the single shared auction record
type Auction struct {
	IsActive          bool      `json:"is_active" yaml:"is_active"`
	EndTime           time.Time `json:"end_time" yaml:"end_time"`
	CurrentHighestBid int64     `json:"current_highest_bid" yaml:"current_highest_bid"`
	HighestBidder     *string   `json:"highest_bidder" yaml:"highest_bidder"`
	TotalBids         int       `json:"total_bids" yaml:"total_bids"`
	ItemName          string    `json:"item_name" yaml:"item_name"`
	ItemDescription   string    `json:"item_description" yaml:"item_description"`
	StartingBid       int64     `json:"starting_bid" yaml:"starting_bid"`
	MinIncrement      int64     `json:"min_increment" yaml:"min_increment"`
}

// Clone returns a copy that shares no memory with a
func (a Auction) Clone() Auction {
	if a.HighestBidder != nil {
		name := *a.HighestBidder
		a.HighestBidder = &name
	}
	return a
}

// Team represents a bidding team on the fixed roster
type Team struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Members    []string `json:"members" yaml:"members"`
	TotalBids  int      `json:"total_bids" yaml:"total_bids"`
	HighestBid int64    `json:"highest_bid" yaml:"highest_bid"`
	Badges     []string `json:"badges" yaml:"badges"`
	Color      string   `json:"color" yaml:"color"`
	Logo       string   `json:"logo" yaml:"logo"`
}

// HasBadge reports whether the team already holds badge
func (t Team) HasBadge(badge string) bool {
	return slices.Contains(t.Badges, badge)
}

// AddBadge adds badge unless it is already held. It reports whether the set grew.
func (t *Team) AddBadge(badge string) bool {
	if t.HasBadge(badge) {
		return false
	}
	t.Badges = append(t.Badges, badge)
	return true
}

// Clone returns a deep copy of the team
func (t Team) Clone() Team {
	t.Members = append([]string{}, t.Members...)
	t.Badges = append([]string{}, t.Badges...)
	return t
}

// Bid is one accepted bid in the history log
type Bid struct {
	ID        string    `json:"id" yaml:"id"`
	TeamID    int       `json:"team_id" yaml:"team_id"`
	TeamName  string    `json:"team_name" yaml:"team_name"`
	Amount    int64     `json:"amount" yaml:"amount"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	IsHighest bool      `json:"is_highest" yaml:"is_highest"`
}

// Celebration is the side signal sent to viewers for a new highest bid
type Celebration struct {
	TeamName string `json:"team_name"`
	Amount   int64  `json:"amount"`
}

// PayloadKind names the transition that produced a payload
type PayloadKind string

const (
	PayloadSync   PayloadKind = "sync"
	PayloadBid    PayloadKind = "bid"
	PayloadReset  PayloadKind = "reset"
	PayloadClosed PayloadKind = "closed"
)

// BroadcastPayload is a point-in-time snapshot of the whole auction.
// Version increases by one with every state transition.
type BroadcastPayload struct {
	Version     uint64       `json:"version"`
	Kind        PayloadKind  `json:"kind"`
	Auction     Auction      `json:"auction"`
	Teams       []Team       `json:"teams"`
	NewBid      *Bid         `json:"new_bid,omitempty"`
	History     []Bid        `json:"history"`
	Celebration *Celebration `json:"celebration,omitempty"`
}
