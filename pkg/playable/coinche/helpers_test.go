package coinche

import (
	"coinche-server/internal/rng"
	"coinche-server/pkg/deck"
	"coinche-server/pkg/playable"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	responses []*playable.Response
	dropped   bool
}

func (r *recorder) Send(msg interface{}) bool {
	if r.dropped {
		return false
	}

	r.responses = append(r.responses, msg.(*playable.Response))
	return true
}

func (r *recorder) keys() []string {
	keys := make([]string, len(r.responses))
	for i, res := range r.responses {
		keys[i] = res.Key
	}

	return keys
}

func (r *recorder) last(key string) *playable.Response {
	for i := len(r.responses) - 1; i >= 0; i-- {
		if r.responses[i].Key == key {
			return r.responses[i]
		}
	}

	return nil
}

func (r *recorder) reset() {
	r.responses = nil
}

// newFullMatch returns a match with four seated players, already bidding
func newFullMatch(t *testing.T, seed int64) (*Match, []*recorder) {
	t.Helper()

	m := NewMatch(logrus.StandardLogger(), rng.New(seed))
	recorders := make([]*recorder, seatCount)
	for i := range recorders {
		recorders[i] = &recorder{}
		seat, err := m.Join(fmt.Sprintf("player-%d", i), recorders[i])
		assert.NoError(t, err)
		assert.Equal(t, i, seat)
	}

	assert.Equal(t, "bidding", m.Phase())
	return m, recorders
}

// setHands replaces every hand. Each entry is in CardsToString notation
func setHands(m *Match, hands ...string) {
	for i, h := range hands {
		m.players[i].hand = deck.Hand(deck.CardsFromString(h))
	}
}

// startRunning skips the bidding and starts a round for the contract
func startRunning(m *Match, bid string, bidder int, escalation Escalation) *runningPhase {
	b, err := ParseBid(bid)
	if err != nil {
		panic(err)
	}

	rp := newRunningPhase(contract{bid: b, team: Team(bidder), escalation: escalation}, nextSeat(m.dealer))
	m.phase = rp
	return rp
}

func bidPtr(s string) *Bid {
	b, err := ParseBid(s)
	if err != nil {
		panic(err)
	}

	return &b
}

func cardPtr(s string) *deck.Card {
	c := deck.CardFromString(s)
	return &c
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
