package coinche

import (
	"coinche-server/pkg/deck"
	"encoding/json"
	"strconv"
	"strings"
)

// Score is the target of a bid
type Score int

// Capot is the bid to win every trick. Its threshold is also its value
const Capot Score = 250

// bid limits
const (
	MinScore  Score = 80
	MaxScore  Score = 180
	scoreStep       = 10
)

// IsValid returns true for 80, 90, ..., 180 and Capot
func (s Score) IsValid() bool {
	if s == Capot {
		return true
	}

	return s >= MinScore && s <= MaxScore && s%scoreStep == 0
}

// Threshold is the number of points the bidding team must reach
func (s Score) Threshold() int {
	return int(s)
}

func (s Score) String() string {
	if s == Capot {
		return "C"
	}

	return strconv.Itoa(int(s))
}

// Bid is a trump choice and a target score
type Bid struct {
	Trump deck.Trump
	Score Score
}

// ParseBid parses the bid notation <score><trump>, i.e., 90s, 120T, Ch
// T is all-trump and A is no-trump
func ParseBid(s string) (Bid, error) {
	if len(s) < 2 {
		return Bid{}, invalidBidError(s)
	}

	trump, err := deck.TrumpFromChar(s[len(s)-1:])
	if err != nil {
		return Bid{}, invalidBidError(s)
	}

	scoreStr := s[:len(s)-1]
	var score Score
	if strings.EqualFold(scoreStr, "C") || strings.EqualFold(scoreStr, "capot") {
		score = Capot
	} else {
		val, err := strconv.Atoi(scoreStr)
		if err != nil {
			return Bid{}, invalidBidError(s)
		}

		score = Score(val)
	}

	if !score.IsValid() {
		return Bid{}, invalidBidError(s)
	}

	return Bid{Trump: trump, Score: score}, nil
}

func (b Bid) String() string {
	return b.Score.String() + b.Trump.Char()
}

// Beats returns true if b is a higher bid than other
func (b Bid) Beats(other Bid) bool {
	return b.Score > other.Score
}

// MarshalJSON encodes the bid in its notation
func (b Bid) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes the bid notation
func (b *Bid) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	bid, err := ParseBid(s)
	if err != nil {
		return err
	}

	*b = bid
	return nil
}

// PlayerBid is one entry of the bidding. A nil Bid is a pass
type PlayerBid struct {
	Seat int  `json:"seat"`
	Bid  *Bid `json:"bid"`
}

// IsPass returns true if the player passed
func (p PlayerBid) IsPass() bool {
	return p.Bid == nil
}
