package playable

import (
	"coinche-server/pkg/deck"
	"fmt"
)

// inbound actions
const (
	ActionInit         = "init"
	ActionRefreshState = "refreshState"
	ActionBid          = "bid"
	ActionCoinche      = "coinche"
	ActionSurCoinche   = "surcoinche"
	ActionPlayCard     = "playCard"
)

// outbound response keys
const (
	KeySnapshot    = "snapshot"
	KeyHand        = "hand"
	KeyCardCount   = "cardCount"
	KeyPlayerBid   = "playerBid"
	KeyCoinche     = "coinche"
	KeySurCoinche  = "surcoinche"
	KeyPlayedCard  = "playedCard"
	KeyTrickClosed = "trickClosed"
	KeyError       = "error"
	KeyStatus      = "status"
)

// Recipient receives outbound responses for one seat
// Send must not block; it returns false if the response was dropped
type Recipient interface {
	Send(msg interface{}) bool
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   KeyStatus,
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse returns an error response for the acting connection
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     KeyError,
		Value:   err.Error(),
		Data:    ErrorData{Message: err.Error()},
		Context: ctx,
	}
}

// ErrorData is the payload of an error response
type ErrorData struct {
	Message string `json:"message"`
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string `json:"action"`

	// Username is used by init
	Username string `json:"username,omitempty"`

	// Bid is used by bid; nil or empty means pass
	Bid *string `json:"bid,omitempty"`

	// Accept is used by surcoinche
	Accept bool `json:"accept,omitempty"`

	// Position or Card identify the card for playCard. Card wins if both are set
	Position *int      `json:"position,omitempty"`
	Card     *deck.Card `json:"card,omitempty"`

	// Context will be passed back on any outgoing message
	Context string `json:"context,omitempty"`
}

// Validate checks that the payload carries what its action needs
func (p *PayloadIn) Validate() error {
	switch p.Action {
	case ActionInit, ActionRefreshState, ActionBid, ActionCoinche, ActionSurCoinche:
		return nil
	case ActionPlayCard:
		if p.Card == nil && p.Position == nil {
			return fmt.Errorf("%s requires a card or a position", p.Action)
		}

		if p.Card != nil && !p.Card.IsValid() {
			return fmt.Errorf("invalid card: %d %s", p.Card.Rank, p.Card.Suit)
		}

		return nil
	case "":
		return fmt.Errorf("missing action")
	}

	return fmt.Errorf("unknown action: %s", p.Action)
}
