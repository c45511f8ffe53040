package models

const (
	// StartingLife is each player's life total at game start.
	StartingLife = 20
	// StartingMana is each player's mana and max mana at game start.
	StartingMana = 1
	// MaxMana caps max-mana growth across turns.
	MaxMana = 10
	// OpeningHandSize is the number of cards drawn before the first turn.
	OpeningHandSize = 5
)

// Player is one side of a duel. Deck is ordered and drawn from the front;
// Field holds creatures in play.
type Player struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Life     int     `json:"life"`
	Mana     int     `json:"mana"`
	MaxMana  int     `json:"maxMana"`
	Deck     []*Card `json:"deck"`
	Hand     []*Card `json:"hand"`
	Field    []*Card `json:"field"`
	IsTurn   bool    `json:"isTurn"`
}
