package deck

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by suit, then rank. This is the display order
func (h Hand) Less(i, j int) bool {
	if h[i].Suit != h[j].Suit {
		return suitIndex(h[i].Suit) < suitIndex(h[j].Suit)
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func suitIndex(s Suit) int {
	for i, suit := range Suits {
		if suit == s {
			return i
		}
	}

	return len(Suits)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	return h.IndexOf(card) >= 0
}

// IndexOf returns the position of the card, or -1
func (h Hand) IndexOf(card Card) int {
	for i, c := range h {
		if c.Equal(card) {
			return i
		}
	}

	return -1
}

// HasSuit returns true if any card in the hand is of the suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}

	return false
}

// OfSuit returns the cards of the suit, in hand order
func (h Hand) OfSuit(suit Suit) Hand {
	cards := make(Hand, 0, len(h))
	for _, c := range h {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}

	return cards
}

// RemoveAt removes the card at position i
func (h *Hand) RemoveAt(i int) Card {
	card := (*h)[i]
	newHand := make(Hand, 0, len(*h)-1)
	newHand = append(newHand, (*h)[:i]...)
	newHand = append(newHand, (*h)[i+1:]...)
	*h = newHand

	return card
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
