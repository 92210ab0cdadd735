package mux

import (
	"coinche-server/pkg/playable"
	"coinche-server/pkg/playable/coinche"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

// readUntil reads responses until one has the key
func readUntil(t *testing.T, conn *websocket.Conn, key string) map[string]interface{} {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 2))
	for {
		var res map[string]interface{}
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatalf("waiting for %s: %v", key, err)
		}

		if res["key"] == key {
			return res
		}
	}
}

func TestMatchWS(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer(t)

	conn := dial(t, ts)

	a.NoError(conn.WriteJSON(playable.PayloadIn{Action: playable.ActionBid, Context: "early"}))
	res := readUntil(t, conn, playable.KeyError)
	a.Equal("early", res["context"])
	a.Equal(coinche.ErrNotInitialized.Error(), res["value"])

	a.NoError(conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	readUntil(t, conn, playable.KeyError)

	a.NoError(conn.WriteJSON(playable.PayloadIn{Action: playable.ActionInit, Username: "alice", Context: "join"}))
	snap := readUntil(t, conn, playable.KeySnapshot)
	data := snap["data"].(map[string]interface{})
	a.Equal(float64(0), data["seat"])
	res = readUntil(t, conn, playable.KeyStatus)
	a.Equal("join", res["context"])
}

func TestMatchWS_FullTable(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer(t)

	conns := make([]*websocket.Conn, 4)
	for i := range conns {
		conns[i] = dial(t, ts)
		a.NoError(conns[i].WriteJSON(playable.PayloadIn{Action: playable.ActionInit, Username: fmt.Sprintf("p%d", i)}))
		if i < 3 {
			readUntil(t, conns[i], playable.KeyStatus)
			continue
		}

		// the fourth join deals; the hand comes before the reply
		hand := readUntil(t, conns[i], playable.KeyHand)
		cards := hand["data"].(map[string]interface{})["cards"].([]interface{})
		a.Len(cards, 8)
		readUntil(t, conns[i], playable.KeyStatus)
	}

	var state coinche.MatchView
	assertGet(t, ts, "/state", &state, 200)
	a.Equal("bidding", state.Phase)
	a.Len(state.Players, 4)
	a.Equal(3, state.Dealer)

	a.NoError(conns[1].WriteJSON(playable.PayloadIn{Action: playable.ActionBid, Bid: strPtr("80s")}))
	res := readUntil(t, conns[1], playable.KeyError)
	a.Equal(coinche.ErrIsNotPlayersTurn.Error(), res["value"])

	a.NoError(conns[0].WriteJSON(playable.PayloadIn{Action: playable.ActionBid, Bid: strPtr("80s")}))
	bid := readUntil(t, conns[2], playable.KeyPlayerBid)
	a.Equal("80s", bid["data"].(map[string]interface{})["bid"])
}

func strPtr(s string) *string {
	return &s
}
