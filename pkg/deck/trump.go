package deck

import "fmt"

// Trump is the trump choice of a contract: a single suit, every suit, or no suit
type Trump string

// trump kinds that are not a single suit
const (
	AllTrump Trump = "allTrump"
	NoTrump  Trump = "noTrump"
)

// SuitTrump returns the trump for a single suit
func SuitTrump(s Suit) Trump {
	return Trump(s)
}

// IsTrump returns true if cards of the suit are trump under t
func (t Trump) IsTrump(s Suit) bool {
	switch t {
	case AllTrump:
		return true
	case NoTrump:
		return false
	}

	return Trump(s) == t
}

// Suit returns the trump suit of a suited contract
// The second value is false for all-trump and no-trump contracts
func (t Trump) Suit() (Suit, bool) {
	if t == AllTrump || t == NoTrump {
		return "", false
	}

	return Suit(t), true
}

// Char returns the single letter notation used in bids: s/h/d/c, T for all-trump, A for no-trump
func (t Trump) Char() string {
	switch t {
	case AllTrump:
		return "T"
	case NoTrump:
		return "A"
	}

	return Suit(t).Char()
}

// TrumpFromChar is the inverse of Trump.Char()
func TrumpFromChar(c string) (Trump, error) {
	switch c {
	case "T":
		return AllTrump, nil
	case "A":
		return NoTrump, nil
	}

	if suit, ok := SuitFromChar(c); ok {
		return SuitTrump(suit), nil
	}

	return "", fmt.Errorf("invalid trump: %q", c)
}
