package coinche

import (
	"coinche-server/pkg/deck"
	"coinche-server/pkg/playable"
)

// MatchView is the public state of the match
// Views are copies; they are safe to encode on another goroutine
type MatchView struct {
	Players []PlayerView   `json:"players"`
	Points  [2]int         `json:"points"`
	Rounds  []*RoundPoints `json:"rounds"`
	Dealer  int            `json:"dealer"`
	Phase   string         `json:"phase"`
	Bidding *BiddingView   `json:"bidding,omitempty"`
	Running *RunningView   `json:"running,omitempty"`
}

// PlayerView is the public view of a seat
type PlayerView struct {
	Username  string `json:"username"`
	Seat      int    `json:"seat"`
	Team      int    `json:"team"`
	CardCount int    `json:"cardCount"`
}

// BiddingView is the public state of the bidding phase
type BiddingView struct {
	Bids       []PlayerBid `json:"bids"`
	Escalation Escalation  `json:"escalation"`
	// Turn is -1 while the bidding team must answer a coinche
	Turn int `json:"turn"`
}

// RunningView is the public state of the running phase
type RunningView struct {
	Contract   Bid        `json:"contract"`
	Team       int        `json:"team"`
	Escalation Escalation `json:"escalation"`
	Board      Board      `json:"board"`
	Tricks     []*Trick   `json:"tricks"`
	BeloteSeat int        `json:"beloteSeat"`
	Turn       int        `json:"turn"`
}

// SnapshotData is sent with playable.KeySnapshot
type SnapshotData struct {
	Seat  int        `json:"seat"`
	Match *MatchView `json:"match"`
}

// HandData is sent with playable.KeyHand, to the hand's owner only
type HandData struct {
	Seat  int       `json:"seat"`
	Cards deck.Hand `json:"cards"`
}

// CardCountData is sent with playable.KeyCardCount
type CardCountData struct {
	Seat  int `json:"seat"`
	Count int `json:"count"`
}

// SeatData is sent with playable.KeyCoinche
type SeatData struct {
	Seat int `json:"seat"`
}

// SurCoincheData is sent with playable.KeySurCoinche
type SurCoincheData struct {
	Seat   int  `json:"seat"`
	Accept bool `json:"accept"`
}

// PlayedCardData is sent with playable.KeyPlayedCard
type PlayedCardData struct {
	Seat           int            `json:"seat"`
	Position       int            `json:"position"`
	Card           deck.Card      `json:"card"`
	BeloteRebelote BeloteRebelote `json:"beloteRebelote,omitempty"`
}

// TrickClosedData is sent with playable.KeyTrickClosed
type TrickClosedData struct {
	Winner int `json:"winner"`
}

// View returns a copy of the public state
func (m *Match) View() *MatchView {
	players := make([]PlayerView, len(m.players))
	for i, p := range m.players {
		players[i] = PlayerView{
			Username:  p.Username,
			Seat:      p.Seat,
			Team:      p.Team(),
			CardCount: len(p.hand),
		}
	}

	view := &MatchView{
		Players: players,
		Points:  m.points,
		Rounds:  m.Rounds(),
		Dealer:  m.dealer,
		Phase:   m.phase.name(),
	}

	switch p := m.phase.(type) {
	case *biddingPhase:
		turn := p.turn(m.dealer)
		if p.escalation.Level != LevelNone {
			turn = -1
		}

		view.Bidding = &BiddingView{
			Bids:       append([]PlayerBid{}, p.bids...),
			Escalation: p.escalation,
			Turn:       turn,
		}
	case *runningPhase:
		view.Running = &RunningView{
			Contract:   p.contract.bid,
			Team:       p.contract.team,
			Escalation: p.contract.escalation,
			Board: Board{
				Leader: p.board.Leader,
				Cards:  append([]deck.Card{}, p.board.Cards...),
			},
			Tricks:     append([]*Trick{}, p.tricks...),
			BeloteSeat: p.beloteSeat,
			Turn:       p.board.Turn(),
		}
	}

	return view
}

func (m *Match) send(p *Player, res *playable.Response) {
	if p.recipient == nil {
		return
	}

	if !p.recipient.Send(res) {
		m.logger.WithField("seat", p.Seat).WithField("key", res.Key).Warn("could not deliver response")
	}
}

func (m *Match) broadcast(key string, data interface{}) {
	res := &playable.Response{Key: key, Data: data}
	for _, p := range m.players {
		m.send(p, res)
	}
}

func (m *Match) sendSnapshot(p *Player) {
	m.send(p, &playable.Response{
		Key:  playable.KeySnapshot,
		Data: &SnapshotData{Seat: p.Seat, Match: m.View()},
	})
}

func (m *Match) sendSnapshotAll() {
	for _, p := range m.players {
		m.sendSnapshot(p)
	}
}

// sendRefresh sends the snapshot, every other seat's card count and the player's own hand
func (m *Match) sendRefresh(p *Player) {
	m.sendSnapshot(p)

	for _, other := range m.players {
		if other == p {
			continue
		}

		m.send(p, &playable.Response{
			Key:  playable.KeyCardCount,
			Data: CardCountData{Seat: other.Seat, Count: len(other.hand)},
		})
	}

	m.send(p, &playable.Response{
		Key:  playable.KeyHand,
		Data: HandData{Seat: p.Seat, Cards: p.hand.Clone()},
	})
}

func (m *Match) sendRefreshAll() {
	for _, p := range m.players {
		m.sendRefresh(p)
	}
}
