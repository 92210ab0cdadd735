package coinche

import "fmt"

// Level is how far the contract has been escalated
type Level int

// escalation levels, in order
const (
	LevelNone Level = iota
	LevelCoinche
	LevelSurcoinche
)

func (l Level) String() string {
	switch l {
	case LevelCoinche:
		return "coinche"
	case LevelSurcoinche:
		return "surcoinche"
	}

	return "none"
}

// MarshalText encodes the level by name
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes the level name
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*l = LevelNone
	case "coinche":
		*l = LevelCoinche
	case "surcoinche":
		*l = LevelSurcoinche
	default:
		return fmt.Errorf("unknown escalation level: %q", text)
	}

	return nil
}

// Escalation is the double/redouble state of a contract
// Doubler and Redoubler are -1 until set
type Escalation struct {
	Level     Level `json:"level"`
	Doubler   int   `json:"doubler"`
	Redoubler int   `json:"redoubler"`
}

// NoEscalation returns an escalation at LevelNone
func NoEscalation() Escalation {
	return Escalation{Level: LevelNone, Doubler: -1, Redoubler: -1}
}

// Multiplier returns 1, 2 or 4
func (e Escalation) Multiplier() int {
	switch e.Level {
	case LevelCoinche:
		return 2
	case LevelSurcoinche:
		return 4
	}

	return 1
}

// coinche returns the escalation after a coinche by seat
func (e Escalation) coinche(seat int) Escalation {
	return Escalation{Level: LevelCoinche, Doubler: seat, Redoubler: -1}
}

// surcoinche returns the escalation after a surcoinche by seat
func (e Escalation) surcoinche(seat int) Escalation {
	return Escalation{Level: LevelSurcoinche, Doubler: e.Doubler, Redoubler: seat}
}
