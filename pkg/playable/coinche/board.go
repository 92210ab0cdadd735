package coinche

import (
	"coinche-server/pkg/deck"
)

// seats and tricks per round
const (
	seatCount       = 4
	handSize        = deck.Size / seatCount
	tricksPerRound  = handSize
	lastTrickBonus  = 10
	beloteBonus     = 20
	capotPoints     = int(Capot)
	failedBasePoint = 160
)

// Team returns the team of a seat. Seats 0 and 2 are team 0, seats 1 and 3 are team 1
func Team(seat int) int {
	return seat % 2
}

func nextSeat(seat int) int {
	return (seat + 1) % seatCount
}

// Board is the trick in progress
type Board struct {
	Leader int         `json:"leader"`
	Cards  []deck.Card `json:"cards"`
}

// Trick is a completed trick
type Trick struct {
	Leader int         `json:"leader"`
	Winner int         `json:"winner"`
	Cards  []deck.Card `json:"cards"`
}

// Turn returns the seat expected to play next
func (b *Board) Turn() int {
	return (b.Leader + len(b.Cards)) % seatCount
}

// IsComplete returns true once every seat played
func (b *Board) IsComplete() bool {
	return len(b.Cards) == seatCount
}

// seatAt returns the seat that played the i-th card
func (b *Board) seatAt(i int) int {
	return (b.Leader + i) % seatCount
}

// bestOfSuit returns the highest card of the suit on the board by trump order
func (b *Board) bestTrumpOfSuit(suit deck.Suit) (deck.Card, bool) {
	var best deck.Card
	found := false
	for _, c := range b.Cards {
		if c.Suit != suit {
			continue
		}

		if !found || c.BeatsAsTrump(best) {
			best = c
			found = true
		}
	}

	return best, found
}

// winningIndex returns the index of the card currently holding the trick
// The board must not be empty
func (b *Board) winningIndex(trump deck.Trump) int {
	if trumpSuit, ok := trump.Suit(); ok {
		best := -1
		for i, c := range b.Cards {
			if c.Suit == trumpSuit && (best < 0 || c.BeatsAsTrump(b.Cards[best])) {
				best = i
			}
		}

		if best >= 0 {
			return best
		}
	}

	asked := b.Cards[0].Suit
	best := 0
	for i, c := range b.Cards {
		if c.Suit != asked {
			continue
		}

		if trump == deck.AllTrump {
			if c.BeatsAsTrump(b.Cards[best]) {
				best = i
			}
		} else if c.PlainRank() > b.Cards[best].PlainRank() {
			best = i
		}
	}

	return best
}

// Winner returns the seat currently holding the trick
// The board must not be empty
func (b *Board) Winner(trump deck.Trump) int {
	return b.seatAt(b.winningIndex(trump))
}

// close archives the board and resets it with the winner leading
func (b *Board) close(trump deck.Trump) *Trick {
	winner := b.Winner(trump)
	trick := &Trick{
		Leader: b.Leader,
		Winner: winner,
		Cards:  b.Cards,
	}

	b.Leader = winner
	b.Cards = make([]deck.Card, 0, seatCount)

	return trick
}
