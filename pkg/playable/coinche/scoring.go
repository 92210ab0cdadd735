package coinche

import (
	"math"
)

// RoundPoints is the settlement of one round. It is never modified once recorded
type RoundPoints struct {
	Bid        Bid        `json:"bid"`
	Team       int        `json:"team"`
	Escalation Escalation `json:"escalation"`
	// Raw is what each team scored in play, bonuses included
	Raw [2]int `json:"raw"`
	// Awarded is what each team adds to the match score
	Awarded    [2]int  `json:"awarded"`
	Capot      [2]bool `json:"capot"`
	BeloteTeam *int    `json:"beloteTeam"`
	Made       bool    `json:"made"`
}

// contract is what a round is played for
type contract struct {
	bid        Bid
	team       int
	escalation Escalation
}

// settle scores a completed round
func settle(c contract, tricks []*Trick, beloteSeat int) *RoundPoints {
	var sums [2]float64
	var won [2]int
	for _, trick := range tricks {
		team := Team(trick.Winner)
		won[team]++
		for _, card := range trick.Cards {
			sums[team] += card.Points(c.bid.Trump)
		}
	}

	var raw [2]int
	var capot [2]bool
	for team := range raw {
		raw[team] = int(math.Floor(sums[team]))
		capot[team] = won[team] == len(tricks)
	}

	if n := len(tricks); n > 0 {
		raw[Team(tricks[n-1].Winner)] += lastTrickBonus
	}

	var beloteTeam *int
	if beloteSeat >= 0 {
		team := Team(beloteSeat)
		raw[team] += beloteBonus
		beloteTeam = &team
	}

	awarded, made := award(c, raw, capot)

	return &RoundPoints{
		Bid:        c.bid,
		Team:       c.team,
		Escalation: c.escalation,
		Raw:        raw,
		Awarded:    awarded,
		Capot:      capot,
		BeloteTeam: beloteTeam,
		Made:       made,
	}
}

// award applies the contract to the raw points
func award(c contract, raw [2]int, capot [2]bool) (awarded [2]int, made bool) {
	threshold := c.bid.Score.Threshold()
	if c.bid.Score == Capot {
		made = capot[c.team]
	} else {
		points := raw[c.team]
		if capot[c.team] {
			points = capotPoints
		}

		made = points >= threshold
	}

	multiplier := c.escalation.Multiplier()
	if made {
		awarded[c.team] = (threshold + raw[c.team]) * multiplier
	} else {
		awarded[1-c.team] = failedBasePoint + threshold*multiplier
	}

	return awarded, made
}
