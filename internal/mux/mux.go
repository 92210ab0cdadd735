package mux

import (
	"coinche-server/internal/config"
	"coinche-server/pkg/room"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config.Config
	version string
	dealer  *room.Dealer
}

// NewMux returns a new HTTP mux
// The dealer must already be running
func NewMux(version string, dealer *room.Dealer, cfg config.Config) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		dealer:  dealer,
		config:  cfg,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/state").Handler(this.getState())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getMatchWS())

	return this
}
