package repository

import (
	"auction-coordinator/internal/biddingerrors"
	model "auction-coordinator/internal/models"
	"fmt"
)

// TeamRegistry holds the fixed roster of bidding teams.
// It is not safe for concurrent use; the coordinator serializes access.
type TeamRegistry struct {
	teams   []model.Team
	index   map[int]int      // key: team ID -> value: position in teams
	starter map[int][]string // key: team ID -> value: badges held at roster creation
}

// NewTeamRegistry builds a registry from the given roster. maxTeams <= 0 means unbounded.
func NewTeamRegistry(roster []model.Team, maxTeams int) (*TeamRegistry, error) {
	if maxTeams > 0 && len(roster) > maxTeams {
		return nil, fmt.Errorf("new team registry: %d teams, max %d: %w", len(roster), maxTeams, biddingerrors.ErrRosterFull)
	}

	r := &TeamRegistry{
		teams:   make([]model.Team, 0, len(roster)),
		index:   make(map[int]int, len(roster)),
		starter: make(map[int][]string, len(roster)),
	}
	for _, t := range roster {
		if _, exists := r.index[t.ID]; exists {
			return nil, fmt.Errorf("new team registry: team %d: %w", t.ID, biddingerrors.ErrDuplicateTeam)
		}
		team := t.Clone()
		team.TotalBids = 0
		team.HighestBid = 0
		r.index[team.ID] = len(r.teams)
		r.starter[team.ID] = append([]string{}, team.Badges...)
		r.teams = append(r.teams, team)
	}
	return r, nil
}

// Lookup returns the live team record for id. Callers must not retain the pointer
// beyond the operation that obtained it.
func (r *TeamRegistry) Lookup(id int) (*model.Team, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return &r.teams[i], true
}

// Get returns a copy of the team with the given id
func (r *TeamRegistry) Get(id int) (model.Team, bool) {
	t, ok := r.Lookup(id)
	if !ok {
		return model.Team{}, false
	}
	return t.Clone(), true
}

// Snapshot returns a deep copy of every team in roster order
func (r *TeamRegistry) Snapshot() []model.Team {
	out := make([]model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t.Clone())
	}
	return out
}

// Len returns the roster size
func (r *TeamRegistry) Len() int {
	return len(r.teams)
}

// Reset zeroes every team's counters and strips earned badges
func (r *TeamRegistry) Reset() {
	for i := range r.teams {
		t := &r.teams[i]
		t.TotalBids = 0
		t.HighestBid = 0
		t.Badges = append([]string{}, r.starter[t.ID]...)
	}
}

// Restore copies saved per-team statistics onto the roster.
// Saved teams that are no longer on the roster are ignored.
func (r *TeamRegistry) Restore(saved []model.Team) {
	for _, s := range saved {
		t, ok := r.Lookup(s.ID)
		if !ok {
			continue
		}
		t.TotalBids = s.TotalBids
		t.HighestBid = s.HighestBid
		t.Badges = append([]string{}, r.starter[t.ID]...)
		for _, b := range s.Badges {
			t.AddBadge(b)
		}
	}
}
