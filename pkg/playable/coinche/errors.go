package coinche

import (
	"errors"
)

// error kinds. Every error returned by a Match action unwraps to one of these
var (
	// ErrProtocol is an action sent out of protocol order (before or after init)
	ErrProtocol = errors.New("protocol error")

	// ErrTurnViolation is an action from a seat whose turn it is not
	ErrTurnViolation = errors.New("turn violation")

	// ErrIllegalAction is an action the rules do not allow at this point
	ErrIllegalAction = errors.New("illegal action")

	// ErrCapacity is a join attempt on a full match
	ErrCapacity = errors.New("capacity error")
)

// RuleError is a rejected action. It is safe to send the message to the client
type RuleError struct {
	Kind    error
	Message string
}

func (r *RuleError) Error() string {
	return r.Message
}

// Unwrap returns the error kind
func (r *RuleError) Unwrap() error {
	return r.Kind
}

func newRuleError(kind error, msg string) *RuleError {
	return &RuleError{Kind: kind, Message: msg}
}

// ErrNotInitialized happens when a connection acts before sending init
var ErrNotInitialized = newRuleError(ErrProtocol, "client not initialized")

// ErrAlreadyInitialized happens when a connection sends init twice
var ErrAlreadyInitialized = newRuleError(ErrProtocol, "already initialized")

// ErrUnknownAction happens when the action is not part of the protocol
var ErrUnknownAction = newRuleError(ErrProtocol, "unknown action")

// ErrMatchIsFull happens when a fifth player tries to join
var ErrMatchIsFull = newRuleError(ErrCapacity, "match is full")

// ErrIsNotPlayersTurn is returned when it's not the player's turn
var ErrIsNotPlayersTurn = newRuleError(ErrTurnViolation, "not your turn")

// ErrNotBiddingPhase happens when a bidding action is sent outside of bidding
var ErrNotBiddingPhase = newRuleError(ErrIllegalAction, "not in bidding phase")

// ErrNotRunningPhase happens when a card is played outside of a running round
var ErrNotRunningPhase = newRuleError(ErrIllegalAction, "round is not running")

// ErrBiddingIsCoinched happens when a bid is placed after a coinche
var ErrBiddingIsCoinched = newRuleError(ErrIllegalAction, "bidding is closed by a coinche")

// ErrBidTooLow happens when a bid does not beat the current highest bid
var ErrBidTooLow = newRuleError(ErrIllegalAction, "bid must be higher than the current bid")

// ErrNothingToCoinche happens when there is no opponent bid to coinche
var ErrNothingToCoinche = newRuleError(ErrIllegalAction, "no opponent bid to coinche")

// ErrAlreadyCoinched happens on a second coinche
var ErrAlreadyCoinched = newRuleError(ErrIllegalAction, "contract is already coinched")

// ErrNothingToSurCoinche happens when a player outside the bidding team answers a coinche
var ErrNothingToSurCoinche = newRuleError(ErrIllegalAction, "only the bidding team can surcoinche")

// ErrNotCoinched happens when surcoinche is answered without a pending coinche
var ErrNotCoinched = newRuleError(ErrIllegalAction, "contract is not coinched")

// ErrCardNotInPlayersHand happens when the player tries to play a card they don't have
var ErrCardNotInPlayersHand = newRuleError(ErrIllegalAction, "card is not in player's hand")

// ErrPlayOnSuit happens when a player has a card of the asked suit and plays another suit
var ErrPlayOnSuit = newRuleError(ErrIllegalAction, "player has a card of the asked suit")

// ErrPlayTrump happens when a player must cut the opponents' trick and plays a non-trump
var ErrPlayTrump = newRuleError(ErrIllegalAction, "player has a trump card")

// ErrPlayToWinOnTrump happens when the player doesn't play a higher trump while holding one
var ErrPlayToWinOnTrump = newRuleError(ErrIllegalAction, "player has a higher trump card")

func invalidBidError(bid string) *RuleError {
	return newRuleError(ErrIllegalAction, "invalid bid: "+bid)
}
