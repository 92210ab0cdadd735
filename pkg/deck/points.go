package deck

// allTrumpScale brings an all-trump deck (4 x 62) back to the 152 points of the other contracts
const allTrumpScale = 152.0 / 248.0

var trumpPoints = map[int]float64{
	Jack:  20,
	Nine:  14,
	Ace:   11,
	Ten:   10,
	King:  4,
	Queen: 3,
}

var noTrumpPoints = map[int]float64{
	Ace:   19,
	Ten:   10,
	King:  4,
	Queen: 3,
	Jack:  2,
}

// side suits of a suited contract
// The ace counts 11 here, not 19 as under no-trump: 62 for the trump suit plus 3 x 30 keeps the deal at 152
var plainPoints = map[int]float64{
	Ace:   11,
	Ten:   10,
	King:  4,
	Queen: 3,
	Jack:  2,
}

// Points returns the value of the card under the trump choice
// The result is not rounded; only team totals are floored
func (c Card) Points(t Trump) float64 {
	switch t {
	case AllTrump:
		return trumpPoints[c.Rank] * allTrumpScale
	case NoTrump:
		return noTrumpPoints[c.Rank]
	}

	if t.IsTrump(c.Suit) {
		return trumpPoints[c.Rank]
	}

	return plainPoints[c.Rank]
}
