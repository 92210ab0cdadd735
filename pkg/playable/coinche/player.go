package coinche

import (
	"coinche-server/pkg/deck"
	"coinche-server/pkg/playable"
)

// Player is a seated player
// Players are owned by the Match; other code refers to them by seat
type Player struct {
	Username string
	Seat     int

	hand      deck.Hand
	recipient playable.Recipient
}

func newPlayer(username string, seat int, recipient playable.Recipient) *Player {
	return &Player{
		Username:  username,
		Seat:      seat,
		hand:      make(deck.Hand, 0, handSize),
		recipient: recipient,
	}
}

// Team returns the player's team
func (p *Player) Team() int {
	return Team(p.Seat)
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// findCard resolves a card by identity or by position in the hand
func (p *Player) findCard(card *deck.Card, position *int) (int, deck.Card, bool) {
	if card != nil {
		i := p.hand.IndexOf(*card)
		if i < 0 {
			return -1, deck.Card{}, false
		}

		return i, *card, true
	}

	if position != nil && *position >= 0 && *position < len(p.hand) {
		return *position, p.hand[*position], true
	}

	return -1, deck.Card{}, false
}
