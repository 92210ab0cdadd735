package main

import (
	"coinche-server/pkg/deck"
	"coinche-server/pkg/playable"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const usage = "commands: init <name>, refresh, bid <90s|120T|Ch>, pass, coinche, surcoinche yes|no, play <14s|position>, quit"

var errUsage = errors.New(usage)

func initPayload(name string) *playable.PayloadIn {
	return &playable.PayloadIn{Action: playable.ActionInit, Username: name}
}

// parseCommand turns a line typed by the user into a payload
func parseCommand(line string) (*playable.PayloadIn, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errUsage
	}

	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "init":
		return initPayload(strings.Join(args, " ")), nil
	case "refresh":
		return &playable.PayloadIn{Action: playable.ActionRefreshState}, nil
	case "bid":
		if len(args) != 1 {
			return nil, errUsage
		}

		return &playable.PayloadIn{Action: playable.ActionBid, Bid: &args[0]}, nil
	case "pass":
		return &playable.PayloadIn{Action: playable.ActionBid}, nil
	case "coinche":
		return &playable.PayloadIn{Action: playable.ActionCoinche}, nil
	case "surcoinche":
		accept := true
		if len(args) == 1 {
			switch strings.ToLower(args[0]) {
			case "yes", "y":
			case "no", "n":
				accept = false
			default:
				return nil, errUsage
			}
		}

		return &playable.PayloadIn{Action: playable.ActionSurCoinche, Accept: accept}, nil
	case "play":
		if len(args) != 1 {
			return nil, errUsage
		}

		if pos, err := strconv.Atoi(args[0]); err == nil {
			return &playable.PayloadIn{Action: playable.ActionPlayCard, Position: &pos}, nil
		}

		card, err := deck.ParseCard(args[0])
		if err != nil {
			return nil, err
		}

		return &playable.PayloadIn{Action: playable.ActionPlayCard, Card: &card}, nil
	}

	return nil, fmt.Errorf("unknown command: %s\n%s", fields[0], usage)
}
