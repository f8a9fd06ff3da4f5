package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-coordinator/internal/biddingerrors"
	model "auction-coordinator/internal/models"
	"auction-coordinator/utils"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// Names of the server-sent events emitted for every payload
const (
	EventAuctionState = "auctionState"
	EventTeams        = "teams"
	EventNewBid       = "newBid"
	EventBidHistory   = "bidHistory"
	EventConfetti     = "triggerConfetti"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Validation rejections carry the message meant for the proposing client.
func MapErrorToHTTP(err error) (int, string) {
	var rejection *biddingerrors.RejectionError
	if errors.As(err, &rejection) {
		switch rejection.Reason {
		case biddingerrors.ReasonAuctionEnded:
			return http.StatusGone, rejection.Message
		default:
			return http.StatusConflict, rejection.Message
		}
	}

	switch {
	case errors.Is(err, biddingerrors.ErrUnknownTeam):
		return http.StatusNotFound, "team not found"
	case errors.Is(err, biddingerrors.ErrTeamBidLimit):
		return http.StatusTooManyRequests, "team bid limit reached"
	case errors.Is(err, biddingerrors.ErrInvalidTeamID):
		return http.StatusBadRequest, "invalid team id"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseTeamID reads a positive integer team id from a path parameter
func ParseTeamID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w - %q", biddingerrors.ErrInvalidTeamID, raw)
	}
	return id, nil
}

// WritePayloadEvents renders one payload as the ordered series of named
// server-sent events viewers listen for.
func WritePayloadEvents(c *gin.Context, p model.BroadcastPayload) {
	id := strconv.FormatUint(p.Version, 10)
	render := func(name string, data any) {
		c.Render(-1, sse.Event{Id: id, Event: name, Data: data})
	}

	render(EventAuctionState, p.Auction)
	render(EventTeams, p.Teams)
	if p.NewBid != nil {
		render(EventNewBid, p.NewBid)
	}
	render(EventBidHistory, p.History)
	if p.Celebration != nil {
		render(EventConfetti, p.Celebration)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
