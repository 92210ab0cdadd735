package coinche

import (
	"coinche-server/internal/rng"
	"coinche-server/internal/util"
	"coinche-server/pkg/deck"
	"coinche-server/pkg/playable"
	"sort"

	"github.com/sirupsen/logrus"
)

// the first round is dealt by seat 3 so seat 0 bids first
const initialDealer = 2

// Match is the one shared game: seats, cumulative score, round history and the current phase
//
// A Match is not safe for concurrent use. room.Dealer owns it and calls it from a single goroutine
type Match struct {
	players []*Player
	points  [2]int
	rounds  []*RoundPoints
	dealer  int
	phase   phase

	gen    rng.Generator
	logger logrus.FieldLogger
}

// NewMatch returns an empty match in the lobby
func NewMatch(logger logrus.FieldLogger, gen rng.Generator) *Match {
	return &Match{
		players: make([]*Player, 0, seatCount),
		rounds:  make([]*RoundPoints, 0),
		dealer:  initialDealer,
		phase:   &lobbyPhase{},
		gen:     gen,
		logger:  logger,
	}
}

// Dispatch performs one inbound action
// seat is -1 for a connection that has not sent init. The returned seat is the connection's seat afterwards
func (m *Match) Dispatch(seat int, recipient playable.Recipient, msg *playable.PayloadIn) (int, error) {
	if seat < 0 || seat >= len(m.players) {
		if msg.Action != playable.ActionInit {
			return seat, ErrNotInitialized
		}

		return m.Join(msg.Username, recipient)
	}

	var err error
	switch msg.Action {
	case playable.ActionInit:
		err = ErrAlreadyInitialized
	case playable.ActionRefreshState:
		m.Refresh(seat)
	case playable.ActionBid:
		if _, err := m.biddingTurn(seat); err != nil {
			return seat, err
		}

		var bid *Bid
		if msg.Bid != nil && *msg.Bid != "" {
			b, parseErr := ParseBid(*msg.Bid)
			if parseErr != nil {
				return seat, parseErr
			}

			bid = &b
		}

		err = m.PlaceBid(seat, bid)
	case playable.ActionCoinche:
		err = m.Coinche(seat)
	case playable.ActionSurCoinche:
		err = m.SurCoinche(seat, msg.Accept)
	case playable.ActionPlayCard:
		err = m.PlayCard(seat, msg.Card, msg.Position)
	default:
		err = ErrUnknownAction
	}

	return seat, err
}

// Join seats a player, or reconnects the player with the same username
func (m *Match) Join(username string, recipient playable.Recipient) (int, error) {
	if username == "" {
		username = util.GetRandomName()
		for m.playerByName(username) != nil {
			username = util.GetRandomName()
		}
	}

	log := m.logger.WithField("username", username)

	if p := m.playerByName(username); p != nil {
		p.recipient = recipient
		log.WithField("seat", p.Seat).Info("player reconnected")
		m.sendRefresh(p)
		return p.Seat, nil
	}

	if len(m.players) >= seatCount {
		return -1, ErrMatchIsFull
	}

	p := newPlayer(username, len(m.players), recipient)
	m.players = append(m.players, p)
	log.WithField("seat", p.Seat).Info("player joined")

	if !m.tryBidding() {
		m.sendRefresh(p)
		for _, other := range m.players {
			if other != p {
				m.sendSnapshot(other)
			}
		}
	}

	return p.Seat, nil
}

// Detach forgets the recipient of the seat if it is still the given one
// The seat stays reserved for a reconnect with the same username
func (m *Match) Detach(seat int, recipient playable.Recipient) {
	if seat < 0 || seat >= len(m.players) {
		return
	}

	if p := m.players[seat]; p.recipient == recipient {
		p.recipient = nil
		m.logger.WithField("seat", seat).Info("player disconnected")
	}
}

// Refresh re-sends the full view to the seat
func (m *Match) Refresh(seat int) {
	m.sendRefresh(m.players[seat])
}

// biddingTurn returns the bidding phase if the seat may bid now
func (m *Match) biddingTurn(seat int) (*biddingPhase, error) {
	bp, ok := m.phase.(*biddingPhase)
	if !ok {
		return nil, ErrNotBiddingPhase
	}

	if bp.escalation.Level != LevelNone {
		return nil, ErrBiddingIsCoinched
	}

	if bp.turn(m.dealer) != seat {
		return nil, ErrIsNotPlayersTurn
	}

	return bp, nil
}

// PlaceBid records a bid, or a pass if bid is nil
func (m *Match) PlaceBid(seat int, bid *Bid) error {
	bp, err := m.biddingTurn(seat)
	if err != nil {
		return err
	}

	if bid != nil {
		if last, found := bp.lastBid(); found && !bid.Beats(*last.Bid) {
			return ErrBidTooLow
		}
	}

	pb := PlayerBid{Seat: seat, Bid: bid}
	bp.bids = append(bp.bids, pb)

	log := m.logger.WithField("seat", seat)
	if bid == nil {
		log.Debug("player passed")
	} else {
		log.WithField("bid", bid.String()).Debug("player bid")
	}

	m.broadcast(playable.KeyPlayerBid, pb)

	if closing, closed := bp.closed(); closed {
		m.resolveBidding(bp, closing)
	}

	return nil
}

// Coinche doubles the most recent bid of the other team
func (m *Match) Coinche(seat int) error {
	bp, ok := m.phase.(*biddingPhase)
	if !ok {
		return ErrNotBiddingPhase
	}

	if bp.escalation.Level != LevelNone {
		return ErrAlreadyCoinched
	}

	last, found := bp.lastBid()
	if !found || Team(last.Seat) == Team(seat) {
		return ErrNothingToCoinche
	}

	bp.escalation = bp.escalation.coinche(seat)
	m.logger.WithField("seat", seat).WithField("bid", last.Bid.String()).Debug("coinche")
	m.broadcast(playable.KeyCoinche, SeatData{Seat: seat})

	return nil
}

// SurCoinche answers a coinche for the bidding team
// Accepting redoubles and closes the bidding. Two different team members declining closes it at coinche
func (m *Match) SurCoinche(seat int, accept bool) error {
	bp, ok := m.phase.(*biddingPhase)
	if !ok {
		return ErrNotBiddingPhase
	}

	if bp.escalation.Level != LevelCoinche {
		return ErrNotCoinched
	}

	last, _ := bp.lastBid()
	if Team(last.Seat) != Team(seat) {
		return ErrNothingToSurCoinche
	}

	log := m.logger.WithField("seat", seat).WithField("accept", accept)
	log.Debug("surcoinche answer")

	if accept {
		bp.escalation = bp.escalation.surcoinche(seat)
		m.broadcast(playable.KeySurCoinche, SurCoincheData{Seat: seat, Accept: true})
		m.resolveBidding(bp, last)
		return nil
	}

	m.broadcast(playable.KeySurCoinche, SurCoincheData{Seat: seat, Accept: false})
	if bp.decliner >= 0 && bp.decliner != seat {
		m.resolveBidding(bp, last)
		return nil
	}

	bp.decliner = seat
	return nil
}

// PlayCard plays a card identified by value or by position in the hand
func (m *Match) PlayCard(seat int, card *deck.Card, position *int) error {
	rp, ok := m.phase.(*runningPhase)
	if !ok {
		return ErrNotRunningPhase
	}

	if rp.board.Turn() != seat {
		return ErrIsNotPlayersTurn
	}

	player := m.players[seat]
	pos, played, found := player.findCard(card, position)
	if !found {
		return ErrCardNotInPlayersHand
	}

	trump := rp.contract.bid.Trump
	if err := canPlayCard(player.hand, played, &rp.board, trump, seat); err != nil {
		return err
	}

	player.hand.RemoveAt(pos)
	rp.board.Cards = append(rp.board.Cards, played)

	flag := beloteFor(played, player.hand, trump, seat, rp.beloteSeat)
	if flag == Belote {
		rp.beloteSeat = seat
	}

	m.logger.WithFields(logrus.Fields{
		"seat":   seat,
		"card":   played.String(),
		"belote": flag,
	}).Debug("card played")

	m.broadcast(playable.KeyPlayedCard, PlayedCardData{
		Seat:           seat,
		Position:       pos,
		Card:           played,
		BeloteRebelote: flag,
	})

	if rp.board.IsComplete() {
		trick := rp.board.close(trump)
		rp.tricks = append(rp.tricks, trick)
		m.broadcast(playable.KeyTrickClosed, TrickClosedData{Winner: trick.Winner})
	}

	if len(rp.tricks) == tricksPerRound {
		m.endRound(rp)
	}

	return nil
}

// tryBidding deals a new round if the lobby is full
func (m *Match) tryBidding() bool {
	if _, ok := m.phase.(*lobbyPhase); !ok || len(m.players) != seatCount {
		return false
	}

	d := deck.New()
	d.Shuffle(m.gen)
	hash := d.HashCode()

	hands := make([]deck.Hand, len(m.players))
	for i := range m.players {
		cards, err := d.DrawN(handSize)
		if err != nil {
			m.logger.WithError(err).Error("could not deal")
			return false
		}

		hand := deck.Hand(cards)
		sort.Sort(hand)
		hands[i] = hand
	}

	m.dealer = nextSeat(m.dealer)
	for i, p := range m.players {
		p.hand = hands[i]
	}

	m.phase = newBiddingPhase()
	m.logger.WithField("dealer", m.dealer).WithField("deck", hash).Info("new deal")
	m.sendRefreshAll()

	return true
}

// resolveBidding starts the round for the contract, or deals again if everyone passed
func (m *Match) resolveBidding(bp *biddingPhase, pb PlayerBid) {
	if pb.IsPass() {
		m.logger.Info("everyone passed")
		m.phase = &lobbyPhase{}
		m.tryBidding()
		return
	}

	c := contract{
		bid:        *pb.Bid,
		team:       Team(pb.Seat),
		escalation: bp.escalation,
	}

	m.phase = newRunningPhase(c, nextSeat(m.dealer))
	m.logger.WithFields(logrus.Fields{
		"bid":        c.bid.String(),
		"team":       c.team,
		"escalation": c.escalation.Level.String(),
	}).Info("bidding closed")
	m.sendSnapshotAll()
}

// endRound records the settlement and deals the next round
func (m *Match) endRound(rp *runningPhase) {
	points := settle(rp.contract, rp.tricks, rp.beloteSeat)
	m.rounds = append(m.rounds, points)
	for team := range m.points {
		m.points[team] += points.Awarded[team]
	}

	m.logger.WithFields(logrus.Fields{
		"bid":     points.Bid.String(),
		"made":    points.Made,
		"raw":     points.Raw,
		"awarded": points.Awarded,
		"total":   m.points,
	}).Info("round settled")

	m.phase = &lobbyPhase{}
	if !m.tryBidding() {
		m.sendRefreshAll()
	}
}

func (m *Match) playerByName(username string) *Player {
	for _, p := range m.players {
		if p.Username == username {
			return p
		}
	}

	return nil
}

// Players returns the seated players in seat order
func (m *Match) Players() []*Player {
	return append([]*Player{}, m.players...)
}

// Points returns the cumulative score per team
func (m *Match) Points() [2]int {
	return m.points
}

// Rounds returns the settled rounds, oldest first
func (m *Match) Rounds() []*RoundPoints {
	return append([]*RoundPoints{}, m.rounds...)
}

// Dealer returns the dealer seat
func (m *Match) Dealer() int {
	return m.dealer
}

// Phase returns lobby, bidding or running
func (m *Match) Phase() string {
	return m.phase.name()
}
