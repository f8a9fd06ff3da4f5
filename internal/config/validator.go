package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is one invalid config key
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func ValidLogFormats() []string {
	return []string{"json", "text"}
}

// Validate returns every invalid value in c
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateAuction()...)
	errors = append(errors, c.validateBadges()...)
	errors = append(errors, c.validateBroadcast()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateTeams()...)

	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Value:   c.Server.Port,
			Message: "must be between 1 and 65535",
		})
	}
	if c.Server.ShutdownTimeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.shutdown_timeout",
			Value:   c.Server.ShutdownTimeout,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateAuction() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Auction.ItemName) == "" {
		errors = append(errors, ValidationError{
			Field:   "auction.item_name",
			Value:   c.Auction.ItemName,
			Message: "must not be empty",
		})
	}
	if c.Auction.StartingBid < 0 {
		errors = append(errors, ValidationError{
			Field:   "auction.starting_bid",
			Value:   c.Auction.StartingBid,
			Message: "must be non-negative",
		})
	}
	if c.Auction.MinIncrement < 1 {
		errors = append(errors, ValidationError{
			Field:   "auction.min_increment",
			Value:   c.Auction.MinIncrement,
			Message: "must be at least 1",
		})
	}
	if c.Auction.Duration < 0 {
		errors = append(errors, ValidationError{
			Field:   "auction.duration",
			Value:   c.Auction.Duration,
			Message: "must be non-negative (0 disables the end time)",
		})
	}
	if c.Auction.MaxTeams < 0 {
		errors = append(errors, ValidationError{
			Field:   "auction.max_teams",
			Value:   c.Auction.MaxTeams,
			Message: "must be non-negative",
		})
	}
	if c.Auction.MaxBidsPerTeam < 0 {
		errors = append(errors, ValidationError{
			Field:   "auction.max_bids_per_team",
			Value:   c.Auction.MaxBidsPerTeam,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateBadges() []ValidationError {
	var errors []ValidationError

	if c.Badges.ActiveBidderThreshold < 1 {
		errors = append(errors, ValidationError{
			Field:   "badges.active_bidder_threshold",
			Value:   c.Badges.ActiveBidderThreshold,
			Message: "must be at least 1",
		})
	}
	if c.Badges.BigSpenderThreshold < 1 {
		errors = append(errors, ValidationError{
			Field:   "badges.big_spender_threshold",
			Value:   c.Badges.BigSpenderThreshold,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateBroadcast() []ValidationError {
	var errors []ValidationError

	if c.Broadcast.QueueSize < 1 {
		errors = append(errors, ValidationError{
			Field:   "broadcast.queue_size",
			Value:   c.Broadcast.QueueSize,
			Message: "must be at least 1",
		})
	}
	if c.Broadcast.SubscriberBuffer < 1 {
		errors = append(errors, ValidationError{
			Field:   "broadcast.subscriber_buffer",
			Value:   c.Broadcast.SubscriberBuffer,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateTeams() []ValidationError {
	var errors []ValidationError

	if c.Auction.MaxTeams > 0 && len(c.Teams) > c.Auction.MaxTeams {
		errors = append(errors, ValidationError{
			Field:   "teams",
			Value:   len(c.Teams),
			Message: fmt.Sprintf("exceeds auction.max_teams of %d", c.Auction.MaxTeams),
		})
	}

	seen := make(map[int]bool, len(c.Teams))
	for i, t := range c.Teams {
		field := fmt.Sprintf("teams[%d]", i)
		if t.ID < 1 {
			errors = append(errors, ValidationError{
				Field:   field + ".id",
				Value:   t.ID,
				Message: "must be a positive integer",
			})
		}
		if seen[t.ID] {
			errors = append(errors, ValidationError{
				Field:   field + ".id",
				Value:   t.ID,
				Message: "duplicates another team",
			})
		}
		seen[t.ID] = true

		if strings.TrimSpace(t.Name) == "" {
			errors = append(errors, ValidationError{
				Field:   field + ".name",
				Value:   t.Name,
				Message: "must not be empty",
			})
		}
	}

	return errors
}
