package auction

import (
	"auction-coordinator/internal/biddingerrors"
	"auction-coordinator/internal/models"
	"auction-coordinator/internal/repository"
	"auction-coordinator/utils"
	"errors"
	"fmt"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

// Publisher receives every payload produced by a state transition
type Publisher interface {
	Publish(payload models.BroadcastPayload)
}

// Lot describes the item put up for auction on every reset
type Lot struct {
	ItemName        string
	ItemDescription string
	StartingBid     int64
	MinIncrement    int64
}

// Settings configures a Coordinator
type Settings struct {
	Lot Lot
	// Duration is added to the reset time to compute EndTime. Zero means no end time.
	Duration time.Duration
	// MaxBidsPerTeam caps accepted bids per team per auction. Zero disables the cap.
	MaxBidsPerTeam int
	Badges         BadgePolicy
}

// Coordinator owns the auction record, team registry and bid history.
// Every mutation runs under mu so validate-then-mutate is atomic.
type Coordinator struct {
	mu        sync.Mutex
	settings  Settings
	clock     clock.Clock
	publisher Publisher
	store     repository.StateStore

	auction models.Auction
	teams   *repository.TeamRegistry
	history *repository.BidHistory
	version uint64

	// closed to cancel the pending end-time timer
	stopExpiry chan struct{}
}

// NewCoordinator creates a coordinator holding a fresh auction for the given roster
func NewCoordinator(settings Settings, teams *repository.TeamRegistry, publisher Publisher, store repository.StateStore, clk clock.Clock) *Coordinator {
	c := &Coordinator{
		settings:  settings,
		clock:     clk,
		publisher: publisher,
		store:     store,
		teams:     teams,
		history:   repository.NewBidHistory(),
	}
	c.auction = c.freshAuction()
	c.armExpiry()
	return c
}

// Restore loads previously saved state from the store, if there is any
func (c *Coordinator) Restore() error {
	state, err := c.store.Load()
	if errors.Is(err, biddingerrors.ErrNoState) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("service: failed to restore auction state: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.auction = state.Auction.Clone()
	c.teams.Restore(state.Teams)
	c.history.Restore(state.History)

	fields := map[string]any{"bids": c.history.Len(), "is_active": c.auction.IsActive}
	if last, ok := c.history.Last(); ok {
		fields["last_bid_id"] = last.ID
	}
	utils.Info("auction state restored", fields)

	c.armExpiry()
	return nil
}

// SubmitBid validates and, if accepted, applies a bid from teamID.
// teamName is recorded verbatim on the auction and the bid; when empty the
// registry name is used.
func (c *Coordinator) SubmitBid(teamID int, amount int64, teamName string) (models.BroadcastPayload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.expireIfDue(now)

	if err := Evaluate(c.auction, amount).Err(); err != nil {
		utils.Debug("bid rejected", map[string]any{"team_id": teamID, "amount": amount, "error": err.Error()})
		return models.BroadcastPayload{}, fmt.Errorf("service: bid of %d by team %d rejected: %w", amount, teamID, err)
	}

	team, ok := c.teams.Lookup(teamID)
	if !ok {
		return models.BroadcastPayload{}, fmt.Errorf("service: %w - team %d is not on the roster", biddingerrors.ErrUnknownTeam, teamID)
	}
	if c.settings.MaxBidsPerTeam > 0 && team.TotalBids >= c.settings.MaxBidsPerTeam {
		return models.BroadcastPayload{}, fmt.Errorf("service: %w - team %d already placed %d bids", biddingerrors.ErrTeamBidLimit, teamID, team.TotalBids)
	}

	name := teamName
	if name == "" {
		name = team.Name
	}

	c.auction.CurrentHighestBid = amount
	c.auction.HighestBidder = &name
	c.auction.TotalBids++

	team.TotalBids++
	team.HighestBid = max(team.HighestBid, amount)
	if awarded := c.settings.Badges.Apply(team, amount); len(awarded) > 0 {
		utils.Info("badges awarded", map[string]any{"team_id": teamID, "badges": awarded})
	}

	bid := models.Bid{
		ID:        utils.GenerateID(),
		TeamID:    teamID,
		TeamName:  name,
		Amount:    amount,
		Timestamp: now.UTC(),
		IsHighest: true,
	}
	c.history.DemoteLastHighest()
	c.history.Append(bid)

	payload := c.commit(models.PayloadBid)
	payload.NewBid = &bid
	payload.Celebration = &models.Celebration{TeamName: name, Amount: amount}
	c.publisher.Publish(payload)

	return payload, nil
}

// Reset starts a fresh auction: new end time, lot defaults, zeroed team
// statistics with starter badges only, and an empty history.
func (c *Coordinator) Reset() models.BroadcastPayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.auction = c.freshAuction()
	c.teams.Reset()
	c.history.Clear()
	c.armExpiry()

	payload := c.commit(models.PayloadReset)
	c.publisher.Publish(payload)
	return payload
}

// Close ends the auction early. Closing an auction that already ended is a no-op.
func (c *Coordinator) Close() models.BroadcastPayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.auction.IsActive {
		return c.payload(models.PayloadClosed)
	}
	return c.closeLocked()
}

// SelectTeam returns a copy of the team with the given id
func (c *Coordinator) SelectTeam(teamID int) (models.Team, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireIfDue(c.clock.Now())
	return c.teams.Get(teamID)
}

// Auction returns a copy of the current auction record
func (c *Coordinator) Auction() models.Auction {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireIfDue(c.clock.Now())
	return c.auction.Clone()
}

// Teams returns a copy of every team on the roster
func (c *Coordinator) Teams() []models.Team {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireIfDue(c.clock.Now())
	return c.teams.Snapshot()
}

// History returns a copy of the accepted bids in order
func (c *Coordinator) History() []models.Bid {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireIfDue(c.clock.Now())
	return c.history.Snapshot()
}

// Snapshot returns the full current state, used to sync newly connected viewers
func (c *Coordinator) Snapshot() models.BroadcastPayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expireIfDue(c.clock.Now())
	return c.payload(models.PayloadSync)
}

func (c *Coordinator) expireIfDue(now time.Time) {
	if !c.auction.IsActive || c.auction.EndTime.IsZero() || now.Before(c.auction.EndTime) {
		return
	}
	utils.Info("auction end time reached", map[string]any{"end_time": c.auction.EndTime})
	c.closeLocked()
}

func (c *Coordinator) closeLocked() models.BroadcastPayload {
	c.disarmExpiry()
	c.auction.IsActive = false
	payload := c.commit(models.PayloadClosed)
	c.publisher.Publish(payload)
	return payload
}

// armExpiry schedules the close of the current auction at its end time,
// replacing any earlier schedule. Callers hold mu.
func (c *Coordinator) armExpiry() {
	c.disarmExpiry()
	if !c.auction.IsActive || c.auction.EndTime.IsZero() {
		return
	}

	now := c.clock.Now()
	if !now.Before(c.auction.EndTime) {
		c.expireIfDue(now)
		return
	}

	timer := c.clock.NewTimer(c.auction.EndTime.Sub(now))
	stop := make(chan struct{})
	c.stopExpiry = stop

	go func() {
		select {
		case <-timer.C():
			c.mu.Lock()
			defer c.mu.Unlock()
			// a reset may have moved the end time while we waited for the lock
			c.expireIfDue(c.clock.Now())
		case <-stop:
			timer.Stop()
		}
	}()
}

func (c *Coordinator) disarmExpiry() {
	if c.stopExpiry != nil {
		close(c.stopExpiry)
		c.stopExpiry = nil
	}
}

// commit bumps the version, persists the new state and returns its payload
func (c *Coordinator) commit(kind models.PayloadKind) models.BroadcastPayload {
	c.version++
	state := repository.State{
		Auction: c.auction.Clone(),
		Teams:   c.teams.Snapshot(),
		History: c.history.Snapshot(),
	}
	if err := c.store.Save(state); err != nil {
		utils.Warn("failed to persist auction state", map[string]any{
			"version": c.version,
			"error":   err.Error(),
		})
	}
	return c.payload(kind)
}

func (c *Coordinator) payload(kind models.PayloadKind) models.BroadcastPayload {
	return models.BroadcastPayload{
		Version: c.version,
		Kind:    kind,
		Auction: c.auction.Clone(),
		Teams:   c.teams.Snapshot(),
		History: c.history.Snapshot(),
	}
}

func (c *Coordinator) freshAuction() models.Auction {
	var end time.Time
	if c.settings.Duration > 0 {
		end = c.clock.Now().Add(c.settings.Duration).UTC()
	}
	lot := c.settings.Lot
	return models.Auction{
		IsActive:          true,
		EndTime:           end,
		CurrentHighestBid: lot.StartingBid,
		ItemName:          lot.ItemName,
		ItemDescription:   lot.ItemDescription,
		StartingBid:       lot.StartingBid,
		MinIncrement:      lot.MinIncrement,
	}
}
