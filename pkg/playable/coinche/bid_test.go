package coinche

import (
	"coinche-server/pkg/deck"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBid(t *testing.T) {
	a := assert.New(t)

	bid, err := ParseBid("90s")
	a.NoError(err)
	a.Equal(Bid{Trump: deck.SuitTrump(deck.Spades), Score: 90}, bid)
	a.Equal("90s", bid.String())

	bid, err = ParseBid("120T")
	a.NoError(err)
	a.Equal(Bid{Trump: deck.AllTrump, Score: 120}, bid)

	bid, err = ParseBid("180A")
	a.NoError(err)
	a.Equal(Bid{Trump: deck.NoTrump, Score: 180}, bid)

	bid, err = ParseBid("Ch")
	a.NoError(err)
	a.Equal(Bid{Trump: deck.SuitTrump(deck.Hearts), Score: Capot}, bid)
	a.Equal("Ch", bid.String())
	a.Equal(250, bid.Score.Threshold())

	bid, err = ParseBid("capotd")
	a.NoError(err)
	a.Equal(Capot, bid.Score)

	for _, invalid := range []string{"", "9", "70s", "85s", "190s", "90x", "s90", "abcs"} {
		_, err := ParseBid(invalid)
		if a.Error(err, invalid) {
			a.True(errors.Is(err, ErrIllegalAction), invalid)
			a.Equal("invalid bid: "+invalid, err.Error())
		}
	}
}

func TestBid_Beats(t *testing.T) {
	a := assert.New(t)

	a.True(bidPtr("90s").Beats(*bidPtr("80h")))
	a.True(bidPtr("Cs").Beats(*bidPtr("180T")))
	a.False(bidPtr("90s").Beats(*bidPtr("90h")))
	a.False(bidPtr("80A").Beats(*bidPtr("100d")))
}

func TestBid_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(PlayerBid{Seat: 1, Bid: bidPtr("110c")})
	a.NoError(err)
	a.JSONEq(`{"seat":1,"bid":"110c"}`, string(b))

	b, err = json.Marshal(PlayerBid{Seat: 2})
	a.NoError(err)
	a.JSONEq(`{"seat":2,"bid":null}`, string(b))

	var pb PlayerBid
	a.NoError(json.Unmarshal([]byte(`{"seat":3,"bid":"CT"}`), &pb))
	a.Equal(3, pb.Seat)
	a.Equal(Capot, pb.Bid.Score)
	a.Equal(deck.AllTrump, pb.Bid.Trump)
	a.False(pb.IsPass())

	a.Error(json.Unmarshal([]byte(`{"seat":3,"bid":"75s"}`), &pb))
}

func TestEscalation_Multiplier(t *testing.T) {
	a := assert.New(t)

	e := NoEscalation()
	a.Equal(1, e.Multiplier())
	a.Equal(-1, e.Doubler)

	e = e.coinche(1)
	a.Equal(LevelCoinche, e.Level)
	a.Equal(2, e.Multiplier())
	a.Equal(1, e.Doubler)

	e = e.surcoinche(0)
	a.Equal(LevelSurcoinche, e.Level)
	a.Equal(4, e.Multiplier())
	a.Equal(1, e.Doubler)
	a.Equal(0, e.Redoubler)

	b, err := json.Marshal(e)
	a.NoError(err)
	a.JSONEq(`{"level":"surcoinche","doubler":1,"redoubler":0}`, string(b))
}

func TestLevel_UnmarshalText(t *testing.T) {
	a := assert.New(t)

	var e Escalation
	a.NoError(json.Unmarshal([]byte(`{"level":"coinche","doubler":3,"redoubler":-1}`), &e))
	a.Equal(NoEscalation().coinche(3), e)

	a.Error(json.Unmarshal([]byte(`{"level":"triple"}`), &e))
}
