package coinche

import (
	"coinche-server/pkg/deck"
)

// canPlayCard returns nil if the seat may play the card on the board
// It does not check turn order or that the card is held
func canPlayCard(hand deck.Hand, card deck.Card, board *Board, trump deck.Trump, seat int) error {
	if len(board.Cards) == 0 {
		return nil
	}

	asked := board.Cards[0].Suit
	if hand.HasSuit(asked) {
		if card.Suit != asked {
			return ErrPlayOnSuit
		}

		if trump.IsTrump(asked) {
			return mustOvertrump(hand, card, board, asked)
		}

		return nil
	}

	trumpSuit, suited := trump.Suit()
	if !suited || !hand.HasSuit(trumpSuit) {
		return nil
	}

	// partner holds the trick
	if Team(board.Winner(trump)) == Team(seat) {
		return nil
	}

	if card.Suit != trumpSuit {
		return ErrPlayTrump
	}

	return mustOvertrump(hand, card, board, trumpSuit)
}

// mustOvertrump requires beating the best card of the trump suit on the board,
// unless every card of that suit in hand is lower
func mustOvertrump(hand deck.Hand, card deck.Card, board *Board, suit deck.Suit) error {
	best, ok := board.bestTrumpOfSuit(suit)
	if !ok || card.BeatsAsTrump(best) {
		return nil
	}

	if canOvertrump(hand, best) {
		return ErrPlayToWinOnTrump
	}

	return nil
}

func canOvertrump(hand deck.Hand, best deck.Card) bool {
	for _, c := range hand.OfSuit(best.Suit) {
		if c.BeatsAsTrump(best) {
			return true
		}
	}

	return false
}

// ValidMoves returns the cards of the hand that may be played on the board
func ValidMoves(hand deck.Hand, board *Board, trump deck.Trump, seat int) deck.Hand {
	moves := make(deck.Hand, 0, len(hand))
	for _, card := range hand {
		if canPlayCard(hand, card, board, trump, seat) == nil {
			moves = append(moves, card)
		}
	}

	return moves
}

// BeloteRebelote flags a play of the trump king or queen by the belote holder
type BeloteRebelote string

// belote flags
const (
	Belote   BeloteRebelote = "belote"
	Rebelote BeloteRebelote = "rebelote"
)

// beloteFor returns the flag for a card just played by seat, with the hand after the play
// holder is the current belote holder, or -1
func beloteFor(card deck.Card, handAfter deck.Hand, trump deck.Trump, seat, holder int) BeloteRebelote {
	trumpSuit, ok := trump.Suit()
	if !ok || card.Suit != trumpSuit {
		return ""
	}

	var partner int
	switch card.Rank {
	case deck.King:
		partner = deck.Queen
	case deck.Queen:
		partner = deck.King
	default:
		return ""
	}

	if holder < 0 {
		if handAfter.HasCard(deck.Card{Rank: partner, Suit: trumpSuit}) {
			return Belote
		}

		return ""
	}

	if holder == seat {
		return Rebelote
	}

	return ""
}
