package coinche

import (
	"coinche-server/pkg/deck"
)

// phase is one of *lobbyPhase, *biddingPhase or *runningPhase
type phase interface {
	name() string
}

type lobbyPhase struct{}

func (*lobbyPhase) name() string {
	return "lobby"
}

type biddingPhase struct {
	bids       []PlayerBid
	escalation Escalation
	// decliner is the first bidding team member to decline a surcoinche, or -1
	decliner int
}

func newBiddingPhase() *biddingPhase {
	return &biddingPhase{
		bids:       make([]PlayerBid, 0, seatCount),
		escalation: NoEscalation(),
		decliner:   -1,
	}
}

func (*biddingPhase) name() string {
	return "bidding"
}

// turn returns the seat expected to bid next
func (b *biddingPhase) turn(dealer int) int {
	if n := len(b.bids); n > 0 {
		return nextSeat(b.bids[n-1].Seat)
	}

	return nextSeat(dealer)
}

// lastBid returns the most recent non-pass entry
func (b *biddingPhase) lastBid() (PlayerBid, bool) {
	for i := len(b.bids) - 1; i >= 0; i-- {
		if !b.bids[i].IsPass() {
			return b.bids[i], true
		}
	}

	return PlayerBid{}, false
}

// closed returns the entry that ends the bidding when three passes follow it
func (b *biddingPhase) closed() (PlayerBid, bool) {
	n := len(b.bids)
	if n < seatCount {
		return PlayerBid{}, false
	}

	for _, pb := range b.bids[n-3:] {
		if !pb.IsPass() {
			return PlayerBid{}, false
		}
	}

	return b.bids[n-4], true
}

type runningPhase struct {
	contract contract
	board    Board
	tricks   []*Trick
	// beloteSeat is the belote holder, or -1
	beloteSeat int
}

func newRunningPhase(c contract, leader int) *runningPhase {
	return &runningPhase{
		contract: c,
		board: Board{
			Leader: leader,
			Cards:  make([]deck.Card, 0, seatCount),
		},
		tricks:     make([]*Trick, 0, tricksPerRound),
		beloteSeat: -1,
	}
}

func (*runningPhase) name() string {
	return "running"
}
