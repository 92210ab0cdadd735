package room

import (
	"coinche-server/pkg/playable"
	"coinche-server/pkg/playable/coinche"
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrShiftEnded is returned once the run loop has stopped
var ErrShiftEnded = errors.New("the dealer's shift has ended")

// Dealer owns the match and applies every action from a single run loop
type Dealer struct {
	match   *coinche.Match
	clients map[*Client]bool
	lock    sync.RWMutex
	logger  logrus.FieldLogger

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
func NewDealer(logger logrus.FieldLogger, match *coinche.Match) *Dealer {
	return &Dealer{
		match:         match,
		clients:       make(map[*Client]bool),
		logger:        logger,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift stops the run loop
func (d *Dealer) EndShift() {
	close(d.close)
}

// AddClient adds a client. It takes a seat once it sends init
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.logger.WithField("client", client.String()).Debug("client connected")
}

// RemoveClient removes a client. The seat stays reserved for a reconnect
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	log := d.logger.WithField("client", client.String())
	if client.CloseError != nil {
		log = log.WithError(client.CloseError)
	}

	log.Debug("client disconnected")
	d.exec(func() {
		d.match.Detach(client.seat, client)
	})

	return nClients == 0
}

// exec queues fn on the run loop. It is dropped once the shift has ended
func (d *Dealer) exec(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	case <-d.close:
	}
}

// kickStale closes every other connection still holding the seat
func (d *Dealer) kickStale(c *Client) {
	for _, other := range d.Clients() {
		if other == c || other.seat != c.seat {
			continue
		}

		d.logger.WithField("client", other.String()).WithField("seat", other.seat).Info("seat taken by a new connection")
		other.seat = -1
		other.Kick("seat taken by a new connection")
	}
}

// ReceivedMessage is called when a client sends a message to the server
// The reply is either playable.OK or an error response, sent after any notifications
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.exec(func() {
		log := d.logger.WithFields(logrus.Fields{
			"client": c.String(),
			"action": msg.Action,
		})

		if err := msg.Validate(); err != nil {
			log.WithError(err).Debug("invalid message")
			c.Send(playable.ErrorResponse(msg.Context, err))
			return
		}

		joined := c.seat < 0
		seat, err := d.match.Dispatch(c.seat, c, msg)
		c.seat = seat
		if err != nil {
			log.WithError(err).WithField("seat", seat).Debug("action rejected")
			c.Send(playable.ErrorResponse(msg.Context, err))
			return
		}

		if joined {
			d.kickStale(c)
		}

		c.Send(playable.OK(msg.Context))
	})
}

// View returns the public state of the match
func (d *Dealer) View(ctx context.Context) (*coinche.MatchView, error) {
	result := make(chan *coinche.MatchView, 1)
	select {
	case d.execInRunLoop <- func() { result <- d.match.View() }:
	case <-d.close:
		return nil, ErrShiftEnded
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case view := <-result:
		return view, nil
	case <-d.close:
		return nil, ErrShiftEnded
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
