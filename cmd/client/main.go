package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var url = flag.String("url", "ws://localhost:5000/ws", "the websocket URL of the server")
var name = flag.String("name", "", "join as this username right away")

func main() {
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect")
	}
	defer conn.Close()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	done := make(chan bool)
	go func() {
		defer close(done)
		readLoop(conn, interactive)
	}()

	if *name != "" {
		if err := conn.WriteJSON(initPayload(*name)); err != nil {
			logrus.WithError(err).Fatal("could not send init")
		}
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}

		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "quit" || (err != nil && line == "") {
			break
		}

		if line == "" {
			continue
		}

		msg, parseErr := parseCommand(line)
		if parseErr != nil {
			_, _ = fmt.Fprintln(os.Stderr, parseErr)
			continue
		}

		if err := conn.WriteJSON(msg); err != nil {
			logrus.WithError(err).Error("could not send message")
			break
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	<-done
}

func readLoop(conn *websocket.Conn, interactive bool) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure) {
				logrus.WithError(err).Error("connection lost")
			}

			return
		}

		fmt.Println(formatResponse(data, interactive))
	}
}

// formatResponse indents responses for a terminal and leaves them on one line otherwise
func formatResponse(data []byte, interactive bool) string {
	if !interactive {
		return string(data)
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(data)
	}

	return string(b)
}
