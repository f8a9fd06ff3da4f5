package auction

import (
	"auction-coordinator/internal/biddingerrors"
	"auction-coordinator/internal/models"
	"fmt"
)

// Decision is the outcome of evaluating a proposed bid
type Decision struct {
	Accepted  bool
	Rejection *biddingerrors.RejectionError
}

// Err returns the rejection as an error, or nil when the bid was accepted
func (d Decision) Err() error {
	if d.Accepted {
		return nil
	}
	return d.Rejection
}

// Evaluate decides whether amount may be accepted against the auction record.
// Rules are checked in order and the first failure wins.
func Evaluate(auction models.Auction, amount int64) Decision {
	if !auction.IsActive {
		return reject(biddingerrors.ReasonAuctionEnded, "auction has ended")
	}
	if amount <= auction.CurrentHighestBid {
		return reject(biddingerrors.ReasonBidTooLow,
			fmt.Sprintf("bid must exceed current highest bid of %d", auction.CurrentHighestBid))
	}
	if amount < auction.CurrentHighestBid+auction.MinIncrement {
		return reject(biddingerrors.ReasonIncrementTooSmall,
			fmt.Sprintf("minimum increment is %d", auction.MinIncrement))
	}
	return Decision{Accepted: true}
}

func reject(reason biddingerrors.RejectReason, message string) Decision {
	return Decision{Rejection: &biddingerrors.RejectionError{Reason: reason, Message: message}}
}
