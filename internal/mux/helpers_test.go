package mux

import (
	"coinche-server/internal/config"
	"coinche-server/internal/rng"
	"coinche-server/pkg/playable/coinche"
	"coinche-server/pkg/room"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) (*httptest.Server, *room.Dealer) {
	t.Helper()

	dealer := room.NewDealer(logrus.StandardLogger(), coinche.NewMatch(logrus.StandardLogger(), rng.New(1)))
	dealer.StartShift()

	ts := httptest.NewServer(NewMux("v1.2.3", dealer, config.DefaultConfig()))
	t.Cleanup(func() {
		ts.Close()
		dealer.EndShift()
	})

	return ts, dealer
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}
