package auction

import "auction-coordinator/internal/models"

const (
	BadgeActiveBidder = "Active Bidder"
	BadgeBigSpender   = "Big Spender"
)

// BadgeRule awards Badge when Earned returns true for the team's updated stats
// and the amount of the bid just accepted.
type BadgeRule struct {
	Badge  string
	Earned func(team models.Team, amount int64) bool
}

// BadgePolicy is the ordered list of rules evaluated after every accepted bid.
// Badges only ever accumulate; removal happens on reset alone.
type BadgePolicy struct {
	Rules []BadgeRule
}

// DefaultBadgePolicy returns the Active Bidder and Big Spender rules
func DefaultBadgePolicy(activeBidderThreshold int, bigSpenderThreshold int64) BadgePolicy {
	return BadgePolicy{Rules: []BadgeRule{
		{
			Badge: BadgeActiveBidder,
			Earned: func(team models.Team, _ int64) bool {
				return team.TotalBids >= activeBidderThreshold
			},
		},
		{
			Badge: BadgeBigSpender,
			Earned: func(_ models.Team, amount int64) bool {
				return amount >= bigSpenderThreshold
			},
		},
	}}
}

// Apply evaluates every rule for team and returns the badges newly added
func (p BadgePolicy) Apply(team *models.Team, amount int64) []string {
	var awarded []string
	for _, rule := range p.Rules {
		if rule.Earned(*team, amount) && team.AddBadge(rule.Badge) {
			awarded = append(awarded, rule.Badge)
		}
	}
	return awarded
}
