package mux

import (
	"context"
	"net/http"
	"time"
)

const stateTimeout = time.Second * 5

// getState returns the public view of the match
func (m *Mux) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), stateTimeout)
		defer cancel()

		view, err := m.dealer.View(ctx)
		if err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}
