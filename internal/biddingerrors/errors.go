package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrDuplicateTeam = errors.New("duplicate team id")
	ErrRosterFull    = errors.New("roster exceeds max teams")
	ErrNoState       = errors.New("no saved auction state")
)

// business logic errors
var (
	ErrInvalidBid        = errors.New("invalid bid")
	ErrInvalidTeamID     = errors.New("invalid team id")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrIncrementTooSmall = errors.New("bid increment too small")
	ErrUnknownTeam       = errors.New("unknown team")
	ErrTeamBidLimit      = errors.New("team bid limit reached")
)

// RejectReason identifies which validation rule turned a bid down
type RejectReason string

const (
	ReasonAuctionEnded      RejectReason = "auction_ended"
	ReasonBidTooLow         RejectReason = "bid_too_low"
	ReasonIncrementTooSmall RejectReason = "increment_too_small"
)

// RejectionError is returned when a proposed bid fails validation.
// Message is the text shown to the proposing client.
type RejectionError struct {
	Reason  RejectReason
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// Unwrap maps the reason onto its sentinel so errors.Is works
func (e *RejectionError) Unwrap() error {
	switch e.Reason {
	case ReasonAuctionEnded:
		return ErrAuctionEnded
	case ReasonBidTooLow:
		return ErrBidTooLow
	case ReasonIncrementTooSmall:
		return ErrIncrementTooSmall
	default:
		return ErrInvalidBid
	}
}
