package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
)

// Suits lists every suit in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Char returns the single letter notation of the suit
func (s Suit) Char() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	}

	return ""
}

// SuitFromChar is the inverse of Suit.Char()
func SuitFromChar(c string) (Suit, bool) {
	switch strings.ToLower(c) {
	case "s":
		return Spades, true
	case "h":
		return Hearts, true
	case "d":
		return Diamonds, true
	case "c":
		return Clubs, true
	}

	return "", false
}

// ranks. The deck only holds 7 through ace
const (
	Seven = 7
	Eight = 8
	Nine  = 9
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
// Cards are values: two cards are the same card if they compare equal
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// IsValid returns true if the card exists in a 32 card deck
func (c Card) IsValid() bool {
	_, ok := SuitFromChar(c.Suit.Char())
	return ok && c.Rank >= Seven && c.Rank <= Ace
}

// trumpOrder ranks cards of a trump suit: 7, 8, 10, Q, K, A, 9, J
var trumpOrder = map[int]int{
	Seven: 0,
	Eight: 1,
	Ten:   2,
	Queen: 3,
	King:  4,
	Ace:   5,
	Nine:  6,
	Jack:  7,
}

// TrumpRank returns the strength of the card when its suit is trump
func (c Card) TrumpRank() int {
	return trumpOrder[c.Rank]
}

// PlainRank returns the strength of the card when its suit is not trump
func (c Card) PlainRank() int {
	return c.Rank
}

// BeatsAsTrump returns true if c ranks above other in the trump order
func (c Card) BeatsAsTrump(other Card) bool {
	return c.TrumpRank() > other.TrumpRank()
}

var cardRx = regexp.MustCompile(`(?i)^([7-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 7 and <= 14 and suit in [cdhs]
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// ParseCard is the non-panicking version of CardFromString
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("could not parse card: %s", s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("could not parse card `%s`: %v", s, err)
	}

	suit, _ := SuitFromChar(match[2])
	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	return fmt.Sprintf("%d%s", card.Rank, card.Suit.Char())
}

// CardsToString will convert a slice of cards to a string in the format of 7c,8h,14s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
